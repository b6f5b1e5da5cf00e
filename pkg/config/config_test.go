package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test", nil)
	require.NoError(t, err)

	assert.Equal(t, kinematic.StandardGravity, cfg.Gravity)
	assert.Equal(t, "", cfg.Body)
	assert.Equal(t, kinematic.DefaultSteps, cfg.Steps)
	assert.Equal(t, RendererWindow, cfg.Renderer)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Port)

	e, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, kinematic.StandardGravity, e.Gravity())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load("test", []string{"--gravity", "3.71", "--steps=20", "--renderer", "terminal", "--log-level", "debug", "--port", "9090"})
	require.NoError(t, err)

	assert.Equal(t, 3.71, cfg.Gravity)
	assert.Equal(t, 20, cfg.Steps)
	assert.Equal(t, RendererTerminal, cfg.Renderer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OBLIQUE_BODY", "moon")
	t.Setenv("OBLIQUE_LOG_LEVEL", "warn")

	cfg, err := Load("test", nil)
	require.NoError(t, err)
	assert.Equal(t, "moon", cfg.Body)
	assert.Equal(t, "warn", cfg.LogLevel)

	e, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, 1.62, e.Gravity())
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("OBLIQUE_STEPS", "10")

	cfg, err := Load("test", []string{"--steps", "50"})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Steps)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oblique.yaml")
	require.NoError(t, os.WriteFile(path, []byte("body: mars\nsteps: 40\nrenderer: none\n"), 0o600))

	cfg, err := Load("test", []string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "mars", cfg.Body)
	assert.Equal(t, 40, cfg.Steps)
	assert.Equal(t, RendererNone, cfg.Renderer)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero gravity", args: []string{"--gravity", "0"}},
		{name: "negative gravity", args: []string{"--gravity", "-9.81"}},
		{name: "unknown body", args: []string{"--body", "vulcan"}},
		{name: "zero steps", args: []string{"--steps", "0"}},
		{name: "unknown renderer", args: []string{"--renderer", "svg"}},
		{name: "unknown log level", args: []string{"--log-level", "loud"}},
		{name: "bad port", args: []string{"--port", "70000"}},
		{name: "tls cert without key", args: []string{"--tls-cert-file", "cert.pem"}},
		{name: "unknown flag", args: []string{"--wind", "3"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/oblique.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("test", tt.args)
			assert.Error(t, err)
		})
	}
}
