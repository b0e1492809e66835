// Package util provides small helpers shared by the CLI and transport code.
package util

import (
	"strings"

	"github.com/alessio/shellescape"
)

// ShellQuote quotes s for a POSIX shell. Strings made only of safe
// characters are returned unchanged.
func ShellQuote(s string) string {
	return shellescape.Quote(s)
}

// ShellQuotePreserveTilde quotes a path but leaves a leading ~/ unquoted so
// the remote shell still expands it to the user's home directory.
func ShellQuotePreserveTilde(path string) string {
	switch {
	case path == "~":
		return path
	case strings.HasPrefix(path, "~/"):
		return "~/" + ShellQuote(path[2:])
	default:
		return ShellQuote(path)
	}
}

// ShellJoin renders argv as one line a local shell would split back into
// the same arguments.
func ShellJoin(argv []string) string {
	return shellescape.QuoteCommand(argv)
}
