package display

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The quad covers the unit square; mvp maps it onto the viewport and uv
// doubles as the texture coordinate.
const (
	quadVertexShader = `
		#version 410
		in vec2 vp;
		uniform mat4 mvp;
		out vec2 uv;
		void main() {
			uv = vp;
			gl_Position = mvp * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	quadFragmentShader = `
		#version 410
		in vec2 uv;
		uniform sampler2D frame;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(frame, uv);
		}
	` + "\x00"
)

var quadVertices = []float32{
	0, 0,
	1, 0,
	0, 1,
	1, 1,
}

// glObject is a shader or program name with its parameter and log queries.
type glObject struct {
	name   uint32
	param  func(name, pname uint32, v *int32)
	getLog func(name uint32, size int32, length *int32, log *uint8)
}

func shaderObject(name uint32) glObject {
	return glObject{name: name, param: gl.GetShaderiv, getLog: gl.GetShaderInfoLog}
}

func programObject(name uint32) glObject {
	return glObject{name: name, param: gl.GetProgramiv, getLog: gl.GetProgramInfoLog}
}

// check returns the object's info log if status reads GL_FALSE.
func (o glObject) check(status uint32) (string, bool) {
	var ok int32
	o.param(o.name, status, &ok)
	if ok != gl.FALSE {
		return "", true
	}
	var n int32
	o.param(o.name, gl.INFO_LOG_LENGTH, &n)
	buf := make([]byte, n+1)
	o.getLog(o.name, n, nil, &buf[0])
	return string(bytes.TrimRight(buf, "\x00")), false
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	if info, ok := programObject(program).check(gl.LINK_STATUS); !ok {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", info)
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	if info, ok := shaderObject(shader).check(gl.COMPILE_STATUS); !ok {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader %#x: %s", kind, info)
	}
	return shader, nil
}
