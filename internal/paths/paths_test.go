package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFilePathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	got, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg-config", "cdp", "config.yaml"), got)
}

func TestConfigFilePathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := ConfigFilePath()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(got, filepath.Join(".config", "cdp", "config.yaml")), got)
}

func TestLogFilePath(t *testing.T) {
	got, err := LogFilePath()
	require.NoError(t, err)
	require.Equal(t, "cdp.log", filepath.Base(got))
	require.Contains(t, got, "cdp")
}
