package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/rileyhilliard/remotes/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCmd_AllHosts(t *testing.T) {
	setupCLI(t, currentTOML, "")

	out, err := runCLI(t, "command")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ssh -o ConnectTimeout=2 -t ssh://foo@bar:8080 env "))
	assert.True(t, strings.HasSuffix(lines[0], " topgrade"))
	assert.True(t, strings.HasPrefix(lines[1], "ssh -o ConnectTimeout=2 -t pi@raspberry env "))
	assert.True(t, strings.HasSuffix(lines[2], " '~/.cargo/bin/topgrade'"))
}

func TestCommandCmd_SelectDestination(t *testing.T) {
	setupCLI(t, legacyTOML, "")

	out, err := runCLI(t, "command", "pi")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "-t pi env")
}

func TestCommandCmd_JSON(t *testing.T) {
	setupCLI(t, legacyTOML, "")

	out, err := runCLI(t, "command", "--json", "parnas", "toothless")
	require.NoError(t, err)

	var env struct {
		Success bool          `json:"success"`
		Data    []HostCommand `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.True(t, env.Success)

	// Config order, not argument order
	require.Len(t, env.Data, 2)
	assert.Equal(t, "toothless", env.Data[0].Destination)
	assert.Equal(t, "parnas", env.Data[1].Destination)
	assert.Equal(t,
		[]string{"ssh", "-o", "ConnectTimeout=2", "-t", "parnas", "env", "TOPGRADE_PREFIX=parnas", "topgrade"},
		env.Data[1].Argv)
}

func TestCommandCmd_UnknownDestination(t *testing.T) {
	setupCLI(t, currentTOML, "")

	_, err := runCLI(t, "command", "pi@rasberry")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))

	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "No remote host with destination 'pi@rasberry'", e.Message)
	assert.Equal(t, "Did you mean: pi@raspberry?", e.Suggestion)
}

func TestSelectHosts(t *testing.T) {
	hosts := []config.ResolvedHost{
		{Destination: "pi", SSHArguments: []string{}},
		{Destination: "toothless", SSHArguments: []string{}},
		{Destination: "pi", SSHArguments: []string{"-4"}},
	}

	t.Run("no filter selects all", func(t *testing.T) {
		got, err := selectHosts(hosts, nil)
		require.NoError(t, err)
		assert.Equal(t, hosts, got)
	})

	t.Run("duplicates all selected in order", func(t *testing.T) {
		got, err := selectHosts(hosts, []string{"pi"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Empty(t, got[0].SSHArguments)
		assert.Equal(t, []string{"-4"}, got[1].SSHArguments)
	})

	t.Run("unknown destination without close match", func(t *testing.T) {
		_, err := selectHosts(hosts, []string{"toothless", "far-away-host"})
		require.Error(t, err)
		e, ok := errors.As(err)
		require.True(t, ok)
		assert.Contains(t, e.Suggestion, "remotes hosts")
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := selectHosts([]config.ResolvedHost{}, []string{"pi"})
		assert.True(t, errors.IsCode(err, errors.ErrExec))
	})
}

func TestHostCommand_MatchesTransport(t *testing.T) {
	h := config.ResolvedHost{Destination: "pi", SSHArguments: []string{"-4"}}
	hc := HostCommand{Destination: h.Destination, Argv: remote.Command(h)}
	assert.Equal(t, "ssh", hc.Argv[0])
	assert.Equal(t, "-4", hc.Argv[1])
}
