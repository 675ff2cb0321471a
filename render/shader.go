package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

const vertexShaderSource = `
#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aInstancePos;

uniform mat4 uView;
uniform mat4 uProjection;
uniform vec3 uCubeScale;

void main() {
    vec3 world = aPos * uCubeScale + aInstancePos;
    gl_Position = uProjection * uView * vec4(world, 1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 460 core
out vec4 FragColor;
uniform vec3 uColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
` + "\x00"

// compileShader compiles a single GLSL shader stage.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("render: compiling shader: %s", log)
	}
	return shader, nil
}

// newCubeProgram links the fixed vertex/fragment pair used to draw
// instanced cubes.
func newCubeProgram() (uint32, error) {
	vertex, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("render: linking program: %s", log)
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program, nil
}
