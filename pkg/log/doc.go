// Package log builds [log/slog] handlers from level and format names.
//
// Text and logfmt output is rendered by [github.com/charmbracelet/log]; JSON
// output uses the standard library handler.
package log
