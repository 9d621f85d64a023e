package glprog

// Device is the graphics context the helpers drive. Each method maps to a
// single graphics API call. Implementations are not safe for concurrent use
// and must be called from the thread that owns the context.
//
// Create* methods return zero when the object could not be created.
type Device interface {
	CreateShader(stage Stage) Shader
	ShaderSource(s Shader, text string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	CreateBuffer() Buffer
	BindArrayBuffer(b Buffer)
	BufferStaticData(data []float32)
	DeleteBuffer(b Buffer)

	// AttribLocation returns -1 when the program has no active attribute
	// with that name.
	AttribLocation(p Program, name string) int32
	// VertexAttribPointer configures a float attribute against the bound
	// array buffer. Stride and offset are in bytes.
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttrib(index uint32)
}
