package config

// Common holds the options that can be set globally under [remote] or
// per host under [[remote.hosts]]. A nil field is unset and inherits from
// the next scope up.
type Common struct {
	// SSHArguments are passed to ssh ahead of the destination.
	SSHArguments *[]string `toml:"ssh_arguments" mapstructure:"ssh_arguments"`

	// TopgradePath is where topgrade lives on the remote machine.
	// When unset the remote shell's PATH is used.
	TopgradePath *string `toml:"topgrade_path" mapstructure:"topgrade_path"`
}

// Host is a single [[remote.hosts]] entry.
type Host struct {
	// Destination is handed to ssh as-is: [user@]hostname, an ssh_config
	// alias, or ssh://[user@]hostname[:port].
	Destination string `toml:"destination" mapstructure:"destination"`

	Common `mapstructure:",squash"`
}

// Remote is the [remote] table: global defaults plus the ordered host list.
type Remote struct {
	Common `mapstructure:",squash"`

	Hosts []Host `toml:"hosts" mapstructure:"hosts"`
}

// Deprecated is the flat, top-level layout used before [remote] existed.
// Every destination shares the same arguments and path.
type Deprecated struct {
	RemoteTopgrades    []string `toml:"remote_topgrades" mapstructure:"remote_topgrades"`
	SSHArguments       *string  `toml:"ssh_arguments" mapstructure:"ssh_arguments"`
	RemoteTopgradePath *string  `toml:"remote_topgrade_path" mapstructure:"remote_topgrade_path"`
}

// Document is the remote-related view of a parsed config file. Either
// block may be nil when the file doesn't mention it.
type Document struct {
	Remote     *Remote
	Deprecated *Deprecated
}

// ResolvedHost is the effective, ready-to-use settings for one destination.
type ResolvedHost struct {
	Destination string `json:"destination" yaml:"destination"`

	// SSHArguments is never nil.
	SSHArguments []string `json:"ssh_arguments" yaml:"ssh_arguments"`

	// TopgradePath is nil when the remote PATH should be used.
	TopgradePath *string `json:"topgrade_path,omitempty" yaml:"topgrade_path,omitempty"`
}
