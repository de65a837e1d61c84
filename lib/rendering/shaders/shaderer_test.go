package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateNames(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sprite.vert", "sprite.frag"}, s.TemplateNames())
}

func TestVertexShader(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("sprite.vert", DefaultShaderData())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(src, "#version 410 core\n"))
	assert.Contains(t, src, "uniform mat4 projection;")
	assert.Contains(t, src, "uniform vec4 rect;")
}

func TestFragmentShaderDiscard(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	data := DefaultShaderData()
	src, err := s.GetShaderSource("sprite.frag", data)
	require.NoError(t, err)
	assert.Contains(t, src, "discard;")

	data.DiscardTransparent = false
	src, err = s.GetShaderSource("sprite.frag", data)
	require.NoError(t, err)
	assert.NotContains(t, src, "discard;")
}

func TestUnknownTemplate(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	_, err = s.GetShaderSource("composite.frag", DefaultShaderData())
	assert.Error(t, err)
}
