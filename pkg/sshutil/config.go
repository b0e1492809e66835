// Package sshutil reads ~/.ssh/config so destinations can be shown with
// the host they actually point at.
package sshutil

import (
	"bytes"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kevinburke/ssh_config"
)

// SSHHostEntry represents a parsed host entry from SSH config.
type SSHHostEntry struct {
	Alias    string // The Host pattern (alias)
	Hostname string // The HostName value (actual host to connect to)
	User     string
	Port     string
}

// Description returns a user-friendly description of the host.
func (h SSHHostEntry) Description() string {
	parts := []string{}

	if h.Hostname != "" && h.Hostname != h.Alias {
		parts = append(parts, h.Hostname)
	}
	if h.User != "" {
		parts = append(parts, "user: "+h.User)
	}
	if h.Port != "" && h.Port != "22" {
		parts = append(parts, "port: "+h.Port)
	}

	if len(parts) == 0 {
		return h.Alias
	}
	return strings.Join(parts, ", ")
}

// DefaultConfigPath is ~/.ssh/config.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".ssh", "config")
}

// ParseSSHConfigFile returns the concrete (non-wildcard) host aliases in the
// given SSH config, sorted by alias. A missing file yields no hosts.
func ParseSSHConfigFile(configPath string) ([]SSHHostEntry, error) {
	content, err := readUntilMatch(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var hosts []SSHHostEntry
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()
			if strings.ContainsAny(alias, "*?!") || seen[alias] {
				continue
			}
			seen[alias] = true

			entry := SSHHostEntry{Alias: alias}
			entry.Hostname, _ = cfg.Get(alias, "HostName")
			entry.User, _ = cfg.Get(alias, "User")
			entry.Port, _ = cfg.Get(alias, "Port")
			hosts = append(hosts, entry)
		}
	}

	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].Alias < hosts[j].Alias
	})

	return hosts, nil
}

// Aliases indexes SSH config entries by alias.
type Aliases map[string]SSHHostEntry

// LoadAliases parses configPath into an alias index.
func LoadAliases(configPath string) (Aliases, error) {
	hosts, err := ParseSSHConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	aliases := make(Aliases, len(hosts))
	for _, h := range hosts {
		aliases[h.Alias] = h
	}
	return aliases, nil
}

// Lookup finds the SSH config entry a destination refers to. Destinations
// may be "alias", "user@alias" or "ssh://[user@]alias[:port]".
func (a Aliases) Lookup(destination string) (SSHHostEntry, bool) {
	entry, ok := a[HostPart(destination)]
	return entry, ok
}

// HostPart strips the user, scheme and port from an ssh destination.
func HostPart(destination string) string {
	if strings.HasPrefix(destination, "ssh://") {
		if u, err := url.Parse(destination); err == nil {
			return u.Hostname()
		}
	}
	if i := strings.LastIndex(destination, "@"); i >= 0 {
		return destination[i+1:]
	}
	return destination
}

// readUntilMatch returns the config up to the first Match block, which
// ssh_config can't parse.
func readUntilMatch(configPath string) ([]byte, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "match ") {
			lines = lines[:i]
			break
		}
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}
