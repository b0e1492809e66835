// Package cli implements the remotes command-line interface.
//
// Commands are thin: they locate and load topgrade.toml through the config
// package, resolve the remote hosts, and render the result as a table,
// YAML or a JSON envelope.
//
//	remotes hosts              - List resolved remote hosts
//	remotes command [dest...]  - Print the ssh command for each host
//	remotes migrate            - Convert deprecated remote keys to [remote]
//	remotes version            - Build information
//
// Global flags (--config, --json, --no-color) live on the root command.
// The filesystem and ssh config location are package variables so tests
// can point them at fixtures.
package cli
