package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamroute/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, 0, c.Search.Parallel)
	assert.True(t, c.Search.Validate)
	assert.Equal(t, "text", c.Output.Format)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hamroute.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  level: debug
  format: json
search:
  parallel: 2
  validate: false
output:
  format: yaml
`), 0o600))

	c, err := config.Load(file, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 2, c.Search.Parallel)
	assert.False(t, c.Search.Validate)
	assert.Equal(t, "yaml", c.Output.Format)

	t.Setenv("HAMROUTE_SEARCH_PARALLEL", "4")
	c, err = config.Load(file, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Search.Parallel)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("parallel", 0, "")
	require.NoError(t, fs.Parse([]string{"--parallel=8"}))
	c, err = config.Load(file, fs, map[string]string{config.KeySearchParallel: "parallel"})
	require.NoError(t, err)
	assert.Equal(t, 8, c.Search.Parallel)
}

func TestLoad_UnchangedFlagKeepsLowerSource(t *testing.T) {
	t.Setenv("HAMROUTE_OUTPUT_FORMAT", "json")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	require.NoError(t, fs.Parse(nil))

	c, err := config.Load("", fs, map[string]string{config.KeyOutputFormat: "format"})
	require.NoError(t, err)
	assert.Equal(t, "json", c.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil)
	assert.Error(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, err = config.Load("", fs, map[string]string{config.KeyOutputFormat: "nope"})
	assert.Error(t, err)

	_, err = config.Load("", fs, map[string]string{
		config.KeyOutputFormat: "no-such-format",
		config.KeyLogLevel:     "no-such-level",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"no-such-level"`)

	t.Setenv("HAMROUTE_OUTPUT_FORMAT", "xml")
	_, err = config.Load("", nil, nil)
	assert.ErrorIs(t, err, config.ErrBadValue)
}

func TestValidate(t *testing.T) {
	base := config.Config{
		Log:    config.LogConfig{Level: "info", Format: "json"},
		Output: config.OutputConfig{Format: "text"},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Log.Level = "loud"
	assert.ErrorIs(t, bad.Validate(), config.ErrBadValue)

	bad = base
	bad.Log.Format = "xml"
	assert.ErrorIs(t, bad.Validate(), config.ErrBadValue)

	bad = base
	bad.Search.Parallel = -1
	assert.ErrorIs(t, bad.Validate(), config.ErrBadValue)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.Config{Log: config.LogConfig{Level: "warn", Format: "json"}}
	l := c.Logger(&buf)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
