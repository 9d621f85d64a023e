package glprog_test

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/go-theft-auto/glprog"
)

// badToken marks a shader source the fake compiler rejects.
const badToken = "@@"

type attribPointer struct {
	index  uint32
	size   int32
	stride int32
	offset uintptr
}

// fakeDevice is an in-memory glprog.Device that records every object it
// creates and deletes.
type fakeDevice struct {
	next uint32

	failShaderCreate  bool
	failProgramCreate bool
	failBufferCreate  bool
	failLink          bool

	sources  map[glprog.Shader]string
	compiled map[glprog.Shader]bool
	attached map[glprog.Program][]glprog.Shader
	attribs  map[string]int32

	shadersCreated  []glprog.Shader
	shadersDeleted  []glprog.Shader
	programsCreated []glprog.Program
	programsDeleted []glprog.Program
	buffersCreated  []glprog.Buffer
	buffersDeleted  []glprog.Buffer

	current   glprog.Program
	bound     glprog.Buffer
	uploaded  []float32
	pointers  []attribPointer
	enabled   []uint32
	callOrder []string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		sources:  make(map[glprog.Shader]string),
		compiled: make(map[glprog.Shader]bool),
		attached: make(map[glprog.Program][]glprog.Shader),
		attribs:  map[string]int32{"position": 0, "color": 1},
	}
}

func (f *fakeDevice) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeDevice) CreateShader(stage glprog.Stage) glprog.Shader {
	if f.failShaderCreate {
		return 0
	}
	s := glprog.Shader(f.id())
	f.shadersCreated = append(f.shadersCreated, s)
	return s
}

func (f *fakeDevice) ShaderSource(s glprog.Shader, text string) { f.sources[s] = text }

func (f *fakeDevice) CompileShader(s glprog.Shader) {
	f.compiled[s] = !strings.Contains(f.sources[s], badToken)
}

func (f *fakeDevice) ShaderCompiled(s glprog.Shader) bool { return f.compiled[s] }

func (f *fakeDevice) ShaderInfoLog(s glprog.Shader) string {
	if f.compiled[s] {
		return ""
	}
	return "0:1(1): error: syntax error, unexpected '@'"
}

func (f *fakeDevice) DeleteShader(s glprog.Shader) {
	f.shadersDeleted = append(f.shadersDeleted, s)
}

func (f *fakeDevice) CreateProgram() glprog.Program {
	if f.failProgramCreate {
		return 0
	}
	p := glprog.Program(f.id())
	f.programsCreated = append(f.programsCreated, p)
	return p
}

func (f *fakeDevice) AttachShader(p glprog.Program, s glprog.Shader) {
	f.attached[p] = append(f.attached[p], s)
}

func (f *fakeDevice) LinkProgram(p glprog.Program) {}

func (f *fakeDevice) ProgramLinked(p glprog.Program) bool {
	return !f.failLink && len(f.attached[p]) == 2
}

func (f *fakeDevice) ProgramInfoLog(p glprog.Program) string {
	if f.ProgramLinked(p) {
		return ""
	}
	return "error: vColor not written by vertex shader"
}

func (f *fakeDevice) DeleteProgram(p glprog.Program) {
	f.programsDeleted = append(f.programsDeleted, p)
}

func (f *fakeDevice) UseProgram(p glprog.Program) { f.current = p }

func (f *fakeDevice) CreateBuffer() glprog.Buffer {
	if f.failBufferCreate {
		return 0
	}
	b := glprog.Buffer(f.id())
	f.buffersCreated = append(f.buffersCreated, b)
	return b
}

func (f *fakeDevice) BindArrayBuffer(b glprog.Buffer) {
	f.bound = b
	f.callOrder = append(f.callOrder, "bind")
}

func (f *fakeDevice) BufferStaticData(data []float32) {
	f.uploaded = append([]float32(nil), data...)
	f.callOrder = append(f.callOrder, "upload")
}

func (f *fakeDevice) DeleteBuffer(b glprog.Buffer) {
	f.buffersDeleted = append(f.buffersDeleted, b)
}

func (f *fakeDevice) AttribLocation(p glprog.Program, name string) int32 {
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeDevice) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	f.pointers = append(f.pointers, attribPointer{index, size, stride, offset})
	f.callOrder = append(f.callOrder, "pointer")
}

func (f *fakeDevice) EnableVertexAttrib(index uint32) {
	f.enabled = append(f.enabled, index)
}

// newTestContext returns a context on a fresh fake device whose log output
// is collected in the returned buffer.
func newTestContext(opts ...glprog.Option) (*glprog.Context, *fakeDevice, *bytes.Buffer) {
	dev := newFakeDevice()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts = append([]glprog.Option{glprog.WithLogger(logger)}, opts...)
	return glprog.NewContext(dev, opts...), dev, &buf
}

const validVertex = `
#version 410 core
in vec3 position;
in vec3 color;
out vec3 vColor;
void main() { gl_Position = vec4(position, 1.0); vColor = color; }
`

const validFragment = `
#version 410 core
in vec3 vColor;
out vec4 FragColor;
void main() { FragColor = vec4(vColor, 1.0); }
`

const brokenSource = `
#version 410 core
void main() { @@ }
`
