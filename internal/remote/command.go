// Package remote turns resolved host settings into the ssh invocation used
// to run topgrade on each remote machine. It only builds argument vectors;
// running them is up to the caller.
package remote

import (
	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/util"
)

const (
	// SSHBinary is the local ssh client.
	SSHBinary = "ssh"
	// DefaultTopgrade is run when no topgrade_path resolves.
	DefaultTopgrade = "topgrade"
	// PrefixEnv tells the remote topgrade which host its output belongs to.
	PrefixEnv = "TOPGRADE_PREFIX"
)

// Command returns the argv for running topgrade on h:
//
//	ssh <ssh_arguments...> -t <destination> env TOPGRADE_PREFIX=<destination> <topgrade_path>
//
// Global ssh arguments were already merged ahead of per-host ones during
// resolution. The remote part is quoted for the remote shell where needed.
func Command(h config.ResolvedHost) []string {
	argv := make([]string, 0, len(h.SSHArguments)+6)
	argv = append(argv, SSHBinary)
	argv = append(argv, h.SSHArguments...)
	argv = append(argv, "-t", h.Destination,
		"env", PrefixEnv+"="+util.ShellQuote(h.Destination),
		topgradePath(h))
	return argv
}

func topgradePath(h config.ResolvedHost) string {
	if h.TopgradePath == nil || *h.TopgradePath == "" {
		return DefaultTopgrade
	}
	return util.ShellQuotePreserveTilde(*h.TopgradePath)
}

// Commands builds the argv for every host, in order.
func Commands(hosts []config.ResolvedHost) [][]string {
	out := make([][]string, len(hosts))
	for i, h := range hosts {
		out[i] = Command(h)
	}
	return out
}

// Format renders argv as a single copy-pasteable local shell line.
func Format(argv []string) string {
	return util.ShellJoin(argv)
}
