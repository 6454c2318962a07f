package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, LoadConfig(viper.New(), "", cfg))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, LogFormatTextValue, cfg.Log.Format)
	assert.Equal(t, DefaultOutputSeparator, cfg.Output.Separator)
	assert.False(t, cfg.Output.Preview)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cqbase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\noutput:\n  preview: true\n  separator: \"\\t\"\n"), 0o644))
	t.Setenv("CQBASE_LOG_FORMAT", "json")

	cfg := NewConfig()
	require.NoError(t, LoadConfig(viper.New(), path, cfg))
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "\t", cfg.Output.Separator)
	assert.True(t, cfg.Output.Preview)

	assert.Error(t, LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"), NewConfig()))
}

func TestSetLogLevel(t *testing.T) {
	defer func() {
		require.NoError(t, SetLogLevel("info", LogFormatTextValue))
	}()

	require.NoError(t, SetLogLevel("debug", LogFormatJsonValue))
	assert.NotZero(t, LogLevelSetting&DEBUG_INFO)
	assert.NotZero(t, LogLevelSetting&PLAN_BUILD)

	require.NoError(t, SetLogLevel("warn", LogFormatTextValue))
	assert.Zero(t, LogLevelSetting&INFO)
	assert.NotZero(t, LogLevelSetting&WARN)

	assert.Error(t, SetLogLevel("loud", LogFormatTextValue))
	assert.Error(t, SetLogLevel("info", "xml"))
}
