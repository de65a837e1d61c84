package rendering

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/spritekit/lib/rendering/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	vertexShaderName   = "sprite.vert"
	fragmentShaderName = "sprite.frag"
)

// BuildGLProgram renders the sprite shaders for shaderData and links them
// into a program in the current context.
func BuildGLProgram(shaderData *shaders.ShaderData) (uint32, error) {
	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	sources := make(map[string]string, 2)
	for _, name := range []string{vertexShaderName, fragmentShaderName} {
		src, err := shaderer.GetShaderSource(name, shaderData)
		if err != nil {
			return 0, fmt.Errorf("could not get %s: %w", name, err)
		}
		if shaderData.DebugDir != "" {
			writeFileDebug(filepath.Join(shaderData.DebugDir, name), src)
		}
		sources[name] = src
	}

	vert, err := compileShader(vertexShaderName, sources[vertexShaderName], gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentShaderName, sources[fragmentShaderName], gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	return linkProgram(vert, frag)
}

func linkProgram(shaderIDs ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, id := range shaderIDs {
		gl.AttachShader(program, id)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", msg)
	}
	return program, nil
}

func compileShader(name string, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s: %s", name, msg)
	}
	return shader, nil
}

// infoLog reads a GL info log of the given length through fill.
func infoLog(length int32, fill func(buf *uint8)) string {
	buf := strings.Repeat("\x00", int(length+1))
	fill(gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func writeFileDebug(filename string, content string) {
	err := os.WriteFile(filename, []byte(content), 0o644)
	if err != nil {
		slog.Warn(fmt.Sprintf("could not write debug file %s: %s", filename, err), slog.String("module", "rendering"))
	}
}
