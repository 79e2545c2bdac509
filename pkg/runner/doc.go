// Package runner dispatches batches of jobs concurrently.
//
// A [Builder] collects jobs, repeating each one a number of times, and
// [Builder.Build] shuffles them into a [Batch]. [Batch.Execute] starts one
// goroutine per job and returns immediately with an [Execution], which callers
// use to wait for every job to finish instead of sleeping for a guessed
// duration.
package runner
