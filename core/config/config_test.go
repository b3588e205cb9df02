package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "https://api.twitter.com/1.1/users/lookup.json", cfg.Lookup.Endpoint)
		assert.Equal(t, 100, cfg.Lookup.BatchSize)
		assert.Equal(t, 1.0, cfg.Lookup.RequestsPerSecond)
		assert.Equal(t, 30, cfg.Lookup.TimeoutSeconds)
		assert.False(t, cfg.Lookup.FoldNames)
		assert.Equal(t, "file", cfg.Records.Driver)
		assert.Equal(t, "data", cfg.Records.Dir)
		assert.Equal(t, ".csv", cfg.Records.Extension)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Empty(t, cfg.ConsumerKey)
	})

	t.Run("TopLevelCredentials", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.toml", `
ck = "consumer-key"
cs = "consumer-secret"
tk = "access-token"
ts = "access-secret"

[lookup]
batch_size = 50
fold_names = true

[records]
dir = "lists"
`)

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "consumer-key", cfg.ConsumerKey)
		assert.Equal(t, "consumer-secret", cfg.ConsumerSecret)
		assert.Equal(t, "access-token", cfg.AccessToken)
		assert.Equal(t, "access-secret", cfg.AccessSecret)
		assert.Equal(t, 50, cfg.Lookup.BatchSize)
		assert.True(t, cfg.Lookup.FoldNames)
		assert.Equal(t, "lists", cfg.Records.Dir)
		assert.Equal(t, ".csv", cfg.Records.Extension)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.toml", "ck = \"from-file\"\n")
		t.Setenv("ACCOUNT_LIST_CK", "from-env")
		t.Setenv("ACCOUNT_LIST_LOG_LEVEL", "debug")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.ConsumerKey)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.toml", "ck = \"unterminated\n")

		cfg, err := LoadConfig(dir)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		cfg.ConsumerKey = "a"
		cfg.ConsumerSecret = "b"
		cfg.AccessToken = "c"
		cfg.AccessSecret = "d"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"MissingSecret", func(c *Config) { c.AccessSecret = "" }, "ts"},
		{"ZeroBatch", func(c *Config) { c.Lookup.BatchSize = 0 }, "batch_size"},
		{"NegativeRate", func(c *Config) { c.Lookup.RequestsPerSecond = -1 }, "requests_per_second"},
		{"UnknownDriver", func(c *Config) { c.Records.Driver = "ftp" }, "ftp"},
		{"BucketDriver", func(c *Config) { c.Records.Driver = "bucket" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
