// Package ui renders remotes' terminal output with Lip Gloss styles.
//
// Colors are ANSI codes so they follow the user's terminal theme. Output
// falls back to plain text when stdout isn't a terminal or --no-color is
// given (see ConfigureColor).
package ui
