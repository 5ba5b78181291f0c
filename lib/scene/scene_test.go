package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		PulseColour: "#ff8033ff",
		Animation:   config.AnimationCfg{Speed: 2},
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(testConfig())

	assert.True(t, s.AnimationEnabled(), "animation defaults to enabled")
	assert.Equal(t, float32(2), s.Speed())
	assert.Equal(t, "#ff8033ff", s.PulseColour().Hex())
	assert.False(t, s.ShutdownRequested())
}

func TestAnimationDisabledByConfig(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.Animation.Enabled = &disabled

	s := New(cfg)
	assert.False(t, s.AnimationEnabled())
	assert.True(t, s.ToggleAnimation())
}

func TestSetPulseColour(t *testing.T) {
	s := New(testConfig())
	s.SetPulseColour(utils.ColourParse("#00ff00ff"))
	assert.Equal(t, "#00ff00ff", s.PulseColour().Hex())
}

func TestReloadRequestsFold(t *testing.T) {
	s := New(testConfig())

	s.RequestReload()
	s.RequestReload()
	s.RequestReload()

	select {
	case <-s.Reloads():
	default:
		require.Fail(t, "expected a pending reload signal")
	}

	select {
	case <-s.Reloads():
		require.Fail(t, "repeated requests must fold into one signal")
	default:
	}
}

func TestShutdown(t *testing.T) {
	s := New(testConfig())
	s.RequestShutdown()
	assert.True(t, s.ShutdownRequested())
}
