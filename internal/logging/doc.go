// Package logging provides slog-based logging for the dotconf CLI.
//
// Text output goes through a TTY-aware handler that colorizes levels and
// attribute keys when the destination is a terminal, falling back to plain
// text for pipes and files. A JSON handler is available for machine
// consumption, and [ForTest] routes log output through testing.T.
package logging
