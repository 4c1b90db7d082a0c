// Package logging wires log/slog for the CLI.
//
// It builds console or JSON handlers from configuration, exposes typed
// attribute helpers so call sites stay terse, and standardizes the structured
// field keys used across scanning, planning, and apply stages.
package logging
