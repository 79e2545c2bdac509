// Package unit identifies units of concurrent execution.
//
// Go deliberately hides goroutine identity, so the runner assigns each
// dispatched job a random identifier and carries it in the job's context.
package unit
