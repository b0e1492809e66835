package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/samber/lo"
)

// Migrate converts the deprecated flat layout into an equivalent [remote]
// table. Shared settings become global defaults and each destination gets
// its own host entry without overrides.
func Migrate(dep Deprecated) Remote {
	var remote Remote
	if dep.SSHArguments != nil {
		args := SplitLegacyArguments(*dep.SSHArguments)
		remote.SSHArguments = &args
	}
	if dep.RemoteTopgradePath != nil {
		remote.TopgradePath = lo.ToPtr(*dep.RemoteTopgradePath)
	}
	remote.Hosts = lo.Map(dep.RemoteTopgrades, func(dest string, _ int) Host {
		return Host{Destination: dest}
	})
	return remote
}

type tomlFile struct {
	Remote tomlRemote `toml:"remote"`
}

type tomlRemote struct {
	SSHArguments *[]string  `toml:"ssh_arguments,omitempty"`
	TopgradePath *string    `toml:"topgrade_path,omitempty"`
	Hosts        []tomlHost `toml:"hosts"`
}

type tomlHost struct {
	Destination  string    `toml:"destination"`
	SSHArguments *[]string `toml:"ssh_arguments,omitempty"`
	TopgradePath *string   `toml:"topgrade_path,omitempty"`
}

// TOML renders r as a [remote] table with [[remote.hosts]] entries.
func (r Remote) TOML() ([]byte, error) {
	file := tomlFile{Remote: tomlRemote{
		SSHArguments: r.SSHArguments,
		TopgradePath: r.TopgradePath,
		Hosts: lo.Map(r.Hosts, func(h Host, _ int) tomlHost {
			return tomlHost{
				Destination:  h.Destination,
				SSHArguments: h.SSHArguments,
				TopgradePath: h.TopgradePath,
			}
		}),
	}}

	out, err := toml.Marshal(file)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't render the [remote] table",
			"This is unexpected - please report it.")
	}
	return out, nil
}
