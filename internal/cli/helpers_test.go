package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const defaultConfigPath = "/xdg/topgrade.toml"

const currentTOML = `
[remote]
ssh_arguments = ["-o", "ConnectTimeout=2"]
topgrade_path = "~/.cargo/bin/topgrade"

[[remote.hosts]]
destination = "ssh://foo@bar:8080"
topgrade_path = "topgrade"

[[remote.hosts]]
destination = "pi@raspberry"

[[remote.hosts]]
destination = "baz"

[git]
max_concurrency = 5
`

const legacyTOML = `
assume_yes = true
remote_topgrades = ["toothless", "pi", "parnas"]
ssh_arguments = "-o ConnectTimeout=2"

[git]
repos = ["~/src/*/"]
`

const bothTOML = `
remote_topgrades = ["toothless"]

[[remote.hosts]]
destination = "toothless"
`

// setupCLI isolates the command tree from the real filesystem. A non-empty
// config is written where the default search finds it; sshConfig, if any,
// becomes the ~/.ssh/config used for alias annotations.
func setupCLI(t *testing.T, config, sshConfig string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	sshPath := filepath.Join(t.TempDir(), "ssh_config")
	if sshConfig != "" {
		require.NoError(t, os.WriteFile(sshPath, []byte(sshConfig), 0600))
	}

	prevFs, prevSSH := appFs, sshConfigPath
	appFs = fs
	sshConfigPath = func() string { return sshPath }
	t.Cleanup(func() {
		appFs = prevFs
		sshConfigPath = prevSSH
	})

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")
	t.Setenv("REMOTES_CONFIG", "")

	if config != "" {
		require.NoError(t, afero.WriteFile(fs, defaultConfigPath, []byte(config), 0644))
	}
	return fs
}

// runCLI executes a fresh command tree and returns everything it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeMem(fs afero.Fs, path, content string) error {
	return afero.WriteFile(fs, path, []byte(content), 0644)
}
