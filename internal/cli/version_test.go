package cli

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(origVersion, origCommit, origDate) })
	SetVersionInfo(v, c, d)
}

func TestVersionCmd(t *testing.T) {
	setupCLI(t, "", "")
	withVersion(t, "1.2.3", "abc1234", "2026-01-08T12:00:00Z")

	out, err := runCLI(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "remotes v1.2.3", lines[0])
	assert.Equal(t, "commit: abc1234", lines[1])
	assert.Equal(t, "built: 2026-01-08T12:00:00Z", lines[2])
	assert.Equal(t, "go: "+runtime.Version(), lines[3])
	assert.Equal(t, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH, lines[4])
}

func TestVersionCmd_Short(t *testing.T) {
	setupCLI(t, "", "")
	withVersion(t, "1.2.3", "abc1234", "unknown")

	out, err := runCLI(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.0.0", "v1.0.0"},
		{"v1.0.0", "v1.0.0"},
		{"0.4.2-rc1", "v0.4.2-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}
