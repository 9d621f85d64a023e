// Package opengl provides an OpenGL 4.1 core Device for the glprog package.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glprog"
)

// Device implements glprog.Device on the current OpenGL context.
type Device struct {
	vao uint32
}

var _ glprog.Device = (*Device)(nil)

// NewDevice creates a device on the current context. gl.Init must have been
// called. A vertex array object is created and bound because core profiles
// reject attribute pointers without one.
func NewDevice() *Device {
	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d
}

// Delete releases the device's vertex array object.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// CreateShader creates a shader object for stage, or returns 0 for an unknown stage.
func (d *Device) CreateShader(stage glprog.Stage) glprog.Shader {
	xtype, ok := shaderType(stage)
	if !ok {
		return 0
	}
	return glprog.Shader(gl.CreateShader(xtype))
}

// ShaderSource uploads NUL-terminated source text to s.
func (d *Device) ShaderSource(s glprog.Shader, text string) {
	csource, free := gl.Strs(cString(text))
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

// CompileShader compiles s.
func (d *Device) CompileShader(s glprog.Shader) {
	gl.CompileShader(uint32(s))
}

// ShaderCompiled reports the compile status of s.
func (d *Device) ShaderCompiled(s glprog.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the compiler log of s.
func (d *Device) ShaderInfoLog(s glprog.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &log[0])
	return trimLog(log)
}

// DeleteShader deletes s, or flags it for deletion while attached.
func (d *Device) DeleteShader(s glprog.Shader) {
	gl.DeleteShader(uint32(s))
}

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() glprog.Program {
	return glprog.Program(gl.CreateProgram())
}

// AttachShader attaches s to p.
func (d *Device) AttachShader(p glprog.Program, s glprog.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

// LinkProgram links p.
func (d *Device) LinkProgram(p glprog.Program) {
	gl.LinkProgram(uint32(p))
}

// ProgramLinked reports the link status of p.
func (d *Device) ProgramLinked(p glprog.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the linker log of p.
func (d *Device) ProgramInfoLog(p glprog.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &log[0])
	return trimLog(log)
}

// DeleteProgram deletes p.
func (d *Device) DeleteProgram(p glprog.Program) {
	gl.DeleteProgram(uint32(p))
}

// UseProgram makes p the current program.
func (d *Device) UseProgram(p glprog.Program) {
	gl.UseProgram(uint32(p))
}

// CreateBuffer generates a buffer object.
func (d *Device) CreateBuffer() glprog.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return glprog.Buffer(vbo)
}

// BindArrayBuffer binds b to the array buffer target.
func (d *Device) BindArrayBuffer(b glprog.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

// BufferStaticData uploads data to the bound array buffer with static draw usage.
func (d *Device) BufferStaticData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, floatBytes(len(data)), gl.Ptr(data), gl.STATIC_DRAW)
}

// DeleteBuffer deletes b.
func (d *Device) DeleteBuffer(b glprog.Buffer) {
	vbo := uint32(b)
	gl.DeleteBuffers(1, &vbo)
}

// AttribLocation returns the location of the named attribute in p, or -1.
func (d *Device) AttribLocation(p glprog.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(cString(name)))
}

// VertexAttribPointer configures a float attribute against the bound array buffer.
func (d *Device) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

// EnableVertexAttrib enables the attribute array at index.
func (d *Device) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// shaderType maps a glprog stage to the GL shader type enum.
func shaderType(stage glprog.Stage) (uint32, bool) {
	switch stage {
	case glprog.StageVertex:
		return gl.VERTEX_SHADER, true
	case glprog.StageFragment:
		return gl.FRAGMENT_SHADER, true
	default:
		return 0, false
	}
}

// floatBytes returns the size in bytes of n float32 values.
func floatBytes(n int) int {
	return n * int(unsafe.Sizeof(float32(0)))
}

// cString returns s NUL-terminated, as go-gl expects.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// trimLog strips the NUL terminator and trailing whitespace GL drivers leave
// in info logs.
func trimLog(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimRight(string(b), " \r\n\t")
}
