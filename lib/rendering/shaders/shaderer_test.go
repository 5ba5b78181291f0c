package shaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/utils"
)

func testShaderData() *ShaderData {
	return &ShaderData{
		GLSLVersion:    410,
		FallbackColour: utils.Colour{R: 1, G: 0.5, B: 0.2, A: 1},
	}
}

func TestShadererTemplates(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"triangle.vert", "triangle.frag"}, s.TemplateNames())
}

func TestVertexShaderSource(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("triangle.vert", testShaderData())
	require.NoError(t, err)

	assert.Contains(t, src, "#version 410 core")
	assert.Contains(t, src, "layout(location = 0) in vec3 position;")
	assert.Contains(t, src, "gl_Position = vec4(position, 1.0);")
}

func TestFragmentShaderSource(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("triangle.frag", testShaderData())
	require.NoError(t, err)

	assert.Contains(t, src, "#version 410 core")
	assert.Contains(t, src, "uniform vec4 pulseColour")
	assert.Contains(t, src, "vec4(1.0000, 0.5000, 0.2000, 1.0000)")
	assert.Contains(t, src, "fragColour = pulseColour;")
}

func TestShaderSourcesAreIndependent(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	a, err := s.GetShaderSource("triangle.frag", testShaderData())
	require.NoError(t, err)
	b, err := s.GetShaderSource("triangle.frag", &ShaderData{GLSLVersion: 330})
	require.NoError(t, err)

	assert.Contains(t, a, "#version 410 core")
	assert.Contains(t, b, "#version 330 core")
}

func TestGetShaderSourceUnknownTemplate(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource("nope.frag", testShaderData())
	assert.Error(t, err)
}

func TestPipelineSourcesEmbedded(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	vertex, fragment, err := s.PipelineSources(nil, testShaderData())
	require.NoError(t, err)
	assert.Contains(t, vertex, "gl_Position")
	assert.Contains(t, fragment, "pulseColour")
}

func TestPipelineSourcesFileOverride(t *testing.T) {
	dir := t.TempDir()
	fragPath := filepath.Join(dir, "custom.frag")
	custom := "#version 410 core\nout vec4 fragColour;\nvoid main() { fragColour = vec4(1.0); }\n"
	require.NoError(t, os.WriteFile(fragPath, []byte(custom), 0o644))

	s, err := NewShaderer()
	require.NoError(t, err)

	cfg := &config.PipelineCfg{Fragment: config.CfgPath(fragPath)}
	vertex, fragment, err := s.PipelineSources(cfg, testShaderData())
	require.NoError(t, err)

	assert.Contains(t, vertex, "gl_Position", "missing override falls back to the embedded stage")
	assert.Equal(t, custom, fragment)
}

func TestPipelineSourcesMissingFile(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	cfg := &config.PipelineCfg{Vertex: config.CfgPath(filepath.Join(t.TempDir(), "nope.vert"))}
	_, _, err = s.PipelineSources(cfg, testShaderData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex")
}
