package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/rileyhilliard/remotes/internal/logger"
	"github.com/spf13/afero"
)

const (
	// ConfigFileName is the config file topgrade reads.
	ConfigFileName = "topgrade.toml"
	// ConfigDirName is the optional directory under the config home.
	ConfigDirName = "topgrade"
)

// Loader finds and reads topgrade config files.
type Loader struct {
	fs  afero.Fs
	log logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used while loading. The default writes to
// stderr and only shows debug output when REMOTES_DEBUG is set.
func WithLogger(l logger.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.log = l
	}
}

// NewLoader returns a Loader reading from fs.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *Loader {
	l := &Loader{fs: fs, log: logger.NewEnvLogger("[config]")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config or REMOTES_CONFIG, ~ expanded)
// 2. $XDG_CONFIG_HOME/topgrade.toml, then $XDG_CONFIG_HOME/topgrade/topgrade.toml
// 3. ~/.config/topgrade.toml, then ~/.config/topgrade/topgrade.toml
//
// Returns the path to the config file, or empty string if not found.
func (l *Loader) Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		ok, err := afero.Exists(l.fs, explicit)
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		if !ok {
			return "", errors.New(errors.ErrConfigNotFound,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	for _, candidate := range searchPaths() {
		if ok, _ := afero.Exists(l.fs, candidate); ok {
			return candidate, nil
		}
	}
	return "", nil
}

func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, xdg)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}

	var paths []string
	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, ConfigFileName),
			filepath.Join(dir, ConfigDirName, ConfigFileName))
	}
	return paths
}

// Load reads the TOML config at path and extracts its remote settings.
// Keys are matched case-sensitively, as TOML defines them.
func (l *Loader) Load(path string) (Document, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Document{}, errors.WrapWithCode(err, errors.ErrConfigNotFound,
				"Config file not found",
				"Create "+ConfigFileName+" or point at one with --config")
		}
		return Document{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check file permissions on "+path)
	}

	var raw map[string]any
	if err := toml.Unmarshal(content, &raw); err != nil {
		return Document{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the TOML syntax in "+path)
	}

	doc, err := Decode(raw)
	if err != nil {
		return Document{}, err
	}
	l.log.Debug("loaded %s (remote hosts: %s layout)", path, doc.Classify())
	return doc, nil
}

// LoadHosts finds, loads and resolves the config in one go. A missing config
// file is not an error; it just means there are no remote hosts.
func (l *Loader) LoadHosts(explicit string) (string, []ResolvedHost, error) {
	path, err := l.Find(explicit)
	if err != nil {
		return "", nil, err
	}
	if path == "" {
		l.log.Debug("no config file found, no remote hosts")
		return "", []ResolvedHost{}, nil
	}

	doc, err := l.Load(path)
	if err != nil {
		return path, nil, err
	}

	hosts, err := Resolve(doc)
	if err != nil {
		return path, nil, err
	}
	return path, hosts, nil
}
