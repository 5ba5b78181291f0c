package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/utils"
)

//go:embed *.frag *.vert
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion    int
	FallbackColour utils.Colour
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// PipelineSources returns the vertex and fragment sources for the
// configured pipeline. A stage without a configured file uses the
// embedded template for that stage, so shader sources stay a concern
// of the caller's config rather than of the builder.
func (s *Shaderer) PipelineSources(cfg *config.PipelineCfg, data *ShaderData) (string, string, error) {
	vertex, err := s.stageSource("triangle.vert", stagePath(cfg, StageVertex), data)
	if err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragment, err := s.stageSource("triangle.frag", stagePath(cfg, StageFragment), data)
	if err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}

	return vertex, fragment, nil
}

func (s *Shaderer) stageSource(templateName string, path string, data *ShaderData) (string, error) {
	if path == "" {
		return s.GetShaderSource(templateName, data)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(b), nil
}

func stagePath(cfg *config.PipelineCfg, stage Stage) string {
	if cfg == nil {
		return ""
	}
	if stage == StageVertex {
		return string(cfg.Vertex)
	}
	return string(cfg.Fragment)
}
