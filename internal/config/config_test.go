package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/playback"
)

// isolate runs the test in an empty directory with no algotrace variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{EnvSpeed, EnvAddr, EnvMaxSteps} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, playback.DefaultSpeed, cfg.Playback.Speed.Duration)
}

func TestPathUsesXDG(t *testing.T) {
	dir := isolate(t)
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "algotrace", "config.toml"), p)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "algotrace", "config.toml"), `
[playback]
speed = "250ms"

[server]
addr = ":9000"

[trace]
max_steps = 500
`)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Speed.Duration)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 500, cfg.Trace.MaxSteps)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Duration, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[server]\naddr = \":9000\"\n")
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvSpeed, "1s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Playback.Speed.Duration)
}

func TestDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "ALGOTRACE_MAX_STEPS=42\n")
	os.Unsetenv(EnvMaxSteps)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Trace.MaxSteps)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
		code errors.Code
	}{
		{name: "bad toml", file: "[playback\n", code: errors.ErrCodeInvalidFormat},
		{name: "bad duration", file: "[playback]\nspeed = \"soon\"\n", code: errors.ErrCodeInvalidFormat},
		{name: "speed too fast", file: "[playback]\nspeed = \"1ms\"\n", code: errors.ErrCodeOutOfRange},
		{name: "env speed", env: map[string]string{EnvSpeed: "fast"}, code: errors.ErrCodeInvalidInput},
		{name: "env steps", env: map[string]string{EnvMaxSteps: "many"}, code: errors.ErrCodeInvalidNumber},
		{name: "zero steps", env: map[string]string{EnvMaxSteps: "0"}, code: errors.ErrCodeOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.toml")
			if tt.file != "" {
				writeFile(t, path, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	isolate(t)
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	assert.Contains(t, buf.String(), `speed = "500ms"`)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, buf.String())
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
