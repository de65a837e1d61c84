package rendering

import (
	"image/color"

	"github.com/fosdem/spritekit/lib/metrics"
	"github.com/fosdem/spritekit/lib/rendering/quad"
	"github.com/fosdem/spritekit/lib/sprite"
	"github.com/fosdem/spritekit/lib/text"
	"github.com/fosdem/spritekit/lib/utils"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Renderer holds the GL objects needed to draw sprites and text into the
// current context. All methods must be called from the thread that owns the
// context.
type Renderer struct {
	Width  int
	Height int

	Program uint32

	Projection mgl32.Mat4

	texts *textCache

	// GL IDs
	VAO               uint32
	VBO               uint32
	ProjectionUniform int32
	RectUniform       int32
	ColourUniform     int32
	TexturedUniform   int32
	TexUniform        int32
}

func NewRenderer(width, height int, program uint32) *Renderer {
	r := &Renderer{}
	r.Width = width
	r.Height = height
	r.Program = program
	r.texts = newTextCache(maxCachedTexts)
	return r
}

// Start allocates the quad buffers and uploads the projection.
func (r *Renderer) Start() {
	r.allocate()
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.Resize(r.Width, r.Height)
}

// Resize sets up the orthographic projection for a window of the given
// size, with the origin at the top-left corner.
func (r *Renderer) Resize(width, height int) {
	r.Width = width
	r.Height = height
	r.Projection = quad.Projection(width, height)
	gl.UseProgram(r.Program)
	gl.UniformMatrix4fv(r.ProjectionUniform, 1, false, &r.Projection[0])
}

func (r *Renderer) allocate() {
	gl.UseProgram(r.Program)

	gl.GenVertexArrays(1, &r.VAO)
	gl.BindVertexArray(r.VAO)

	gl.GenBuffers(1, &r.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad.Vertices)*f32, gl.Ptr(quad.Vertices), gl.STATIC_DRAW)

	stride := int32(2 * f32)
	vertAttrib := uint32(gl.GetAttribLocation(r.Program, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointerWithOffset(vertAttrib, 2, gl.FLOAT, false, stride, 0)

	r.ProjectionUniform = gl.GetUniformLocation(r.Program, gl.Str("projection\x00"))
	r.RectUniform = gl.GetUniformLocation(r.Program, gl.Str("rect\x00"))
	r.ColourUniform = gl.GetUniformLocation(r.Program, gl.Str("colour\x00"))
	r.TexturedUniform = gl.GetUniformLocation(r.Program, gl.Str("textured\x00"))

	r.TexUniform = gl.GetUniformLocation(r.Program, gl.Str("tex\x00"))
	gl.Uniform1i(r.TexUniform, 0)
}

// StartFrame binds the program and the quad for a new frame.
func (r *Renderer) StartFrame() {
	gl.UseProgram(r.Program)
	gl.BindVertexArray(r.VAO)
	metrics.FramesRendered.Inc()
}

// DrawSprite draws s as a filled quad.
func (r *Renderer) DrawSprite(s *sprite.Sprite) {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return
	}
	rect := quad.QuadRect(s.X, s.Y, float32(s.Width), float32(s.Height))
	r.drawQuad(rect, s.Colour, false)
	metrics.SpritesDrawn.Inc()
}

// DrawText draws str with its baseline starting at (x, y). scale multiplies
// the 7x13 glyph size; values <= 0 are treated as 1.
func (r *Renderer) DrawText(str string, x, y, scale float32, c color.RGBA) {
	t := r.texts.get(str)
	if t == nil {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	rect := quad.TextRect(x, y, t.width, t.height, text.Ascent(), scale)
	r.drawQuad(rect, c, true)
}

func (r *Renderer) drawQuad(rect mgl32.Vec4, c color.RGBA, textured bool) {
	cr, cg, cb, ca := utils.ColourFloats(c)
	gl.Uniform4f(r.RectUniform, rect[0], rect[1], rect[2], rect[3])
	gl.Uniform4f(r.ColourUniform, cr, cg, cb, ca)
	if textured {
		gl.Uniform1i(r.TexturedUniform, 1)
	} else {
		gl.Uniform1i(r.TexturedUniform, 0)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, quad.NumVertices)
}

// Delete releases every GL object owned by the renderer.
func (r *Renderer) Delete() {
	r.texts.clear()
	gl.DeleteBuffers(1, &r.VBO)
	gl.DeleteVertexArrays(1, &r.VAO)
	gl.DeleteProgram(r.Program)
}
