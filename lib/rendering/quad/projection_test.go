package quad

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectionTopLeftOrigin(t *testing.T) {
	p := Projection(800, 600)

	topLeft := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1, topLeft.X(), 1e-6)
	assert.InDelta(t, 1, topLeft.Y(), 1e-6)

	bottomRight := p.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	assert.InDelta(t, 1, bottomRight.X(), 1e-6)
	assert.InDelta(t, -1, bottomRight.Y(), 1e-6)

	centre := p.Mul4x1(mgl32.Vec4{400, 300, 0, 1})
	assert.InDelta(t, 0, centre.X(), 1e-6)
	assert.InDelta(t, 0, centre.Y(), 1e-6)
}

func TestQuadRect(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{10, 20, 30, 40}, QuadRect(10, 20, 30, 40))
}

func TestTextRect(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{5, 9, 14, 13}, TextRect(5, 20, 14, 13, 11, 1))
	assert.Equal(t, mgl32.Vec4{5, -2, 28, 26}, TextRect(5, 20, 14, 13, 11, 2))
	assert.Equal(t, TextRect(5, 20, 14, 13, 11, 1), TextRect(5, 20, 14, 13, 11, 0), "non-positive scale means 1")
}

func TestVerticesCoverUnitSquare(t *testing.T) {
	assert.Len(t, Vertices, NumVertices*2)
	for _, v := range Vertices {
		assert.True(t, v == 0 || v == 1)
	}
}
