package rendering

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/glintproject/glint/lib/rendering/shaders"
	"github.com/glintproject/glint/lib/utils"
)

const f32 = 4

// Triangle in clip space, matching the classic hello-triangle layout.
var triangleVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0},
	{0.5, -0.5, 0},
	{0, 0.5, 0},
}

// GLVars owns the GL state of the viewer: the vertex buffers, the active
// program and the pulse-colour uniform location. All methods must run on
// the render thread.
type GLVars struct {
	Program     *shaders.Program
	ClearColour utils.Colour

	// GL IDs
	VAO          uint32
	VBO          uint32
	PulseUniform int32

	numVertices int32
}

func NewGLVars(program *shaders.Program, clearColour utils.Colour) *GLVars {
	g := &GLVars{}

	g.Program = program
	g.ClearColour = clearColour

	return g
}

func (g *GLVars) Start() {
	g.allocate()
	gl.ClearColor(g.ClearColour.R, g.ClearColour.G, g.ClearColour.B, g.ClearColour.A)
	g.Program.Use()
}

func (g *GLVars) allocate() {
	// Configure the vertex data
	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	verts := flatten(triangleVertices)
	g.numVertices = int32(len(triangleVertices))

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*f32, gl.Ptr(verts), gl.STATIC_DRAW)

	// position is pinned to location 0 by the layout qualifier, so the
	// attribute setup survives program swaps
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*f32, 0)

	g.PulseUniform = g.Program.UniformLocation("pulseColour")
}

func (g *GLVars) StartFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(g.VAO)
	g.Program.Use()
}

func (g *GLVars) SetPulseColour(c utils.Colour) {
	if g.PulseUniform < 0 {
		// the active fragment shader has no pulse uniform; nothing to push
		return
	}
	v := c.Vec4()
	gl.Uniform4fv(g.PulseUniform, 1, &v[0])
}

func (g *GLVars) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, g.numVertices)
}

// SwapProgram replaces the active program with a freshly linked one and
// releases the old one. Used by shader hot-reload.
func (g *GLVars) SwapProgram(program *shaders.Program) {
	old := g.Program
	g.Program = program
	g.Program.Use()
	g.PulseUniform = g.Program.UniformLocation("pulseColour")
	if g.PulseUniform < 0 {
		slog.Warn("active shader has no pulseColour uniform", "module", "rendering")
	}
	old.Delete()
}

func (g *GLVars) Shutdown() {
	if g.VBO != 0 {
		gl.DeleteBuffers(1, &g.VBO)
		g.VBO = 0
	}
	if g.VAO != 0 {
		gl.DeleteVertexArrays(1, &g.VAO)
		g.VAO = 0
	}
	g.Program.Delete()
}

func flatten(vecs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vecs)*3)
	for _, v := range vecs {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}
