package graphics

import (
	"fmt"
	"log"
	"strings"

	"glsample/internal/transform"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute and output locations shared by every program in the sample.
const (
	PositionLocation = 0
	ColorLocation    = 1
	FragmentOutput   = 0
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := ReadSource(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}

	fragmentSource, err := ReadSource(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	return NewShaderFromSource(vertexSource, fragmentSource)
}

// NewShaderFromSource compiles and links a program from in-memory sources.
func NewShaderFromSource(vertexSource, fragmentSource string) (*Shader, error) {
	program, err := compileProgram(terminate(vertexSource), terminate(fragmentSource))
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Dispose deletes the program.
func (s *Shader) Dispose() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetMatrix uploads a transform as a mat4 uniform.
func (s *Shader) SetMatrix(name string, m transform.Matrix) {
	gl.UniformMatrix4fv(s.location(name), 1, false, m.Ptr())
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex shader")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment shader")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindAttribLocation(program, PositionLocation, gl.Str("position\x00"))
	gl.BindAttribLocation(program, ColorLocation, gl.Str("color\x00"))
	gl.BindFragDataLocation(program, FragmentOutput, gl.Str("fragment\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	msg := programLog(program)
	if status == gl.FALSE {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", msg)
	}
	if msg != "" {
		log.Printf("link log: %s", msg)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	msg := shaderLog(shader)
	if status == gl.FALSE {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s: %s", stage, msg)
	}
	if msg != "" {
		log.Printf("%s compile log: %s", stage, msg)
	}
	return shader, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(buf))
	return infoLog(buf)
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(buf))
	return infoLog(buf)
}
