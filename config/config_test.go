package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitality/config"
	"github.com/katalvlaran/vitality/core"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Config{Parallelism: -1, LogLevel: "warn", LogFormat: "text"}, cfg)
	assert.Nil(t, cfg.WeightFunc())
}

func TestNew_FileEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitality.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: 3\nweight: length\nlog_format: json\n"), 0o600))

	t.Setenv("VITALITY_PARALLELISM", "5")
	t.Setenv("VITALITY_LOG_LEVEL", "debug")

	v, err := config.New(path)
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Parallelism, "env beats file")
	assert.Equal(t, "length", cfg.Weight)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)

	e := &core.Edge{Weight: 2, Attrs: map[string]float64{"length": 9}}
	assert.Equal(t, 9.0, cfg.WeightFunc()(e))

	cfg.Weight = config.WeightEdge
	assert.Equal(t, 2.0, cfg.WeightFunc()(e))
}

func TestNew_MissingFiles(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "explicit file must exist")

	t.Chdir(t.TempDir())
	_, err = config.New("")
	require.NoError(t, err, "default file is optional")
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("log_level", "loud")
	_, err := config.Load(v)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	v = viper.New()
	v.Set("log_format", "xml")
	_, err = config.Load(v)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{LogLevel: "info", LogFormat: "json"}
	log := cfg.Logger(&buf)
	log.Debug("hidden")
	log.Info("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
