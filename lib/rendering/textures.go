package rendering

import (
	"github.com/fosdem/spritekit/lib/text"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// The score and game over lines change rarely, so rasterised strings are
// kept as textures until the cache fills up.
const maxCachedTexts = 64

type textTexture struct {
	id     uint32
	width  int
	height int
}

type textCache struct {
	max     int
	entries map[string]*textTexture
}

func newTextCache(size int) *textCache {
	return &textCache{max: size, entries: make(map[string]*textTexture)}
}

func (c *textCache) get(str string) *textTexture {
	if t, ok := c.entries[str]; ok {
		return t
	}
	img := text.Render(str)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	if len(c.entries) >= c.max {
		c.clear()
	}

	t := &textTexture{width: w, height: h}
	t.id = SetupRGBATexture(w, h, img.Pix)
	c.entries[str] = t
	return t
}

func (c *textCache) clear() {
	for k, t := range c.entries {
		gl.DeleteTextures(1, &t.id)
		delete(c.entries, k)
	}
}

// SetupRGBATexture uploads tightly packed RGBA pixels into a new texture.
func SetupRGBATexture(width int, height int, pix []uint8) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// nearest keeps the bitmap glyphs crisp when scaled
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(&pix[0]),
	)
	return id
}
