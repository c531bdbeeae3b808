package opengl

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shaders holds the built-in GLSL sources.
//
//go:embed shaders
var Shaders embed.FS

// Program is a linked shader program with its active uniform locations
// resolved once at link time.
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// LoadProgram reads a vertex and fragment shader from fsys and links them.
func LoadProgram(fsys fs.FS, vertPath, fragPath string) (*Program, error) {
	vert, err := fs.ReadFile(fsys, vertPath)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}
	frag, err := fs.ReadFile(fsys, fragPath)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}
	name := strings.TrimSuffix(vertPath, ".vert")
	p, err := NewProgram(name, string(vert), string(frag))
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return p, nil
}

// NewProgram compiles and links GLSL sources.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	id, err := newProgram(vertSrc+"\x00", fragSrc+"\x00")
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, Name: name, uniforms: activeUniforms(id)}, nil
}

// activeUniforms builds the name → location table of a linked program.
// Array uniforms are stored under their base name.
func activeUniforms(prog uint32) map[string]int32 {
	var count, maxLen int32
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)

	table := make(map[string]int32, count)
	buf := make([]uint8, maxLen+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(prog, uint32(i), maxLen+1, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
		table[strings.TrimSuffix(name, "[0]")] = loc
	}
	return table
}

// Uniforms lists the names of the active uniforms.
func (p *Program) Uniforms() []string {
	names := make([]string, 0, len(p.uniforms))
	for n := range p.uniforms {
		names = append(names, n)
	}
	return names
}

// Has reports whether name is an active uniform.
func (p *Program) Has(name string) bool {
	_, ok := p.uniforms[name]
	return ok
}

func (p *Program) Use() { gl.UseProgram(p.ID) }

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := p.uniforms[name]; ok {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc, ok := p.uniforms[name]; ok {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := p.uniforms[name]; ok {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.uniforms[name]; ok {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.uniforms[name]; ok {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) Destroy() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
