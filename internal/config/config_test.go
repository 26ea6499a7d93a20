package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Port: "8080"},
		Library: LibraryConfig{
			MusicPath:       "music",
			DescriptionPath: "descriptions",
			CoverPath:       "covers",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Environments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Port(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = "not-a-number"
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = "3000"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_LibraryPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Library.MusicPath = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Library.DescriptionPath = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Library.CoverPath = ""
	assert.Error(t, cfg.Validate())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("SOUNDBOX_TEST_KEY", "from-env")

	// Flag wins over env.
	assert.Equal(t, "from-flag", getConfigValue("from-flag", "SOUNDBOX_TEST_KEY", "fallback"))
	// Env wins over default.
	assert.Equal(t, "from-env", getConfigValue("", "SOUNDBOX_TEST_KEY", "fallback"))
	// Default when nothing else is set.
	assert.Equal(t, "fallback", getConfigValue("", "SOUNDBOX_TEST_UNSET", "fallback"))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("", "SOUNDBOX_TEST_UNSET_DURATION", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	_, err = parseDurationValue("bogus", "SOUNDBOX_TEST_UNSET_DURATION", "15s")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "# comment\n\nSOUNDBOX_ENVFILE_A=hello\nSOUNDBOX_ENVFILE_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o644))

	t.Setenv("SOUNDBOX_ENVFILE_A", "already-set")

	require.NoError(t, loadEnvFile(envPath))

	// Existing environment variables are not overridden.
	assert.Equal(t, "already-set", os.Getenv("SOUNDBOX_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("SOUNDBOX_ENVFILE_B"))

	t.Cleanup(func() { _ = os.Unsetenv("SOUNDBOX_ENVFILE_B") })
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.Error(t, loadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadEnvFile_BadLine(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("no equals sign here\n"), 0o644))

	assert.Error(t, loadEnvFile(envPath))
}
