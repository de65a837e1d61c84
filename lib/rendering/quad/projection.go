// Package quad holds the geometry shared by every quad the renderer draws.
package quad

import "github.com/go-gl/mathgl/mgl32"

// Projection maps window pixels onto clip space with the origin at the
// top-left corner and y growing downwards.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// QuadRect returns the rect uniform (x, y, w, h) for a quad whose
// top-left corner is at (x, y).
func QuadRect(x, y, w, h float32) mgl32.Vec4 {
	return mgl32.Vec4{x, y, w, h}
}

// TextRect places a rasterised line of text so that its baseline starts at
// (x, y). ascent is the distance from the top of the image to the baseline.
func TextRect(x, y float32, width, height, ascent int, scale float32) mgl32.Vec4 {
	if scale <= 0 {
		scale = 1
	}
	return mgl32.Vec4{
		x,
		y - float32(ascent)*scale,
		float32(width) * scale,
		float32(height) * scale,
	}
}

// Vertices is a unit square as two triangles, two floats per vertex.
var Vertices = []float32{
	0, 0,
	1, 0,
	1, 1,

	0, 0,
	1, 1,
	0, 1,
}

const NumVertices = 6
