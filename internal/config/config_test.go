package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_url: https://market.example.com\ntimeout: 10s\noutput: json\n",
	), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://market.example.com", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://from-file.example.com\n"), 0o600))
	t.Setenv("BASKETEER_API_URL", "https://from-env.example.com")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://from-env.example.com", cfg.APIURL)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("BASKETEER_API_URL", "https://from-env.example.com")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api_url", DefaultAPIURL, "")
	require.NoError(t, flags.Parse([]string{"--api_url", "https://from-flag.example.com"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "https://from-flag.example.com", cfg.APIURL)
}

func TestMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestInvalidTimeoutRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: -5s\n"), 0o600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}
