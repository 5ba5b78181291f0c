package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "glint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "window:\n  title: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, "#804040ff", cfg.ClearColour)
	assert.Equal(t, "#ff8033ff", cfg.PulseColour)
	assert.Equal(t, float32(1), cfg.Animation.Speed)
	assert.Nil(t, cfg.Pipeline)
	assert.Nil(t, cfg.Api)
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse(writeConfig(t, `
window:
  width: 640
  height: 480
  title: shaders
  resizable: true
  vsync: 0
clear_colour: "#80404080"
pulse_colour: "#00ff00ff"
pipeline:
  fragment: shaders/custom.frag
  watch: true
animation:
  speed: 2.5
api:
  bind: 127.0.0.1:8080
  enable_profiler: true
`))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.True(t, cfg.Window.Resizable)
	require.NotNil(t, cfg.Window.VSync)
	assert.Equal(t, 0, *cfg.Window.VSync)
	assert.Equal(t, float32(2.5), cfg.Animation.Speed)
	require.NotNil(t, cfg.Api)
	assert.Equal(t, "127.0.0.1:8080", cfg.Api.Bind)
	assert.True(t, cfg.Pipeline.Watch)
}

func TestCfgPathResolvesRelativeToConfig(t *testing.T) {
	path := writeConfig(t, "pipeline:\n  fragment: shaders/custom.frag\n")
	cfg, err := Parse(path)
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(path), "shaders", "custom.frag")
	assert.Equal(t, want, string(cfg.Pipeline.Fragment))
}

func TestCfgPathKeepsAbsolute(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "pipeline:\n  vertex: /opt/shaders/a.vert\n"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/shaders/a.vert", string(cfg.Pipeline.Vertex))
}

func TestValidateRejectsBadColour(t *testing.T) {
	_, err := Parse(writeConfig(t, "clear_colour: \"#zzzzzzzz\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear_colour")

	_, err = Parse(writeConfig(t, "pulse_colour: \"#ff00\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pulse_colour")
}

func TestValidateRejectsBadWindow(t *testing.T) {
	_, err := Parse(writeConfig(t, "window:\n  width: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
}

func TestValidateRejectsWatchWithoutFiles(t *testing.T) {
	_, err := Parse(writeConfig(t, "pipeline:\n  watch: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch")
}

func TestValidateRejectsApiWithoutBind(t *testing.T) {
	_, err := Parse(writeConfig(t, "api:\n  enable_profiler: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind")
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
