package glprog

// Stage identifies one phase of the shader pipeline.
type Stage uint8

const (
	StageVertex Stage = iota + 1
	StageFragment
)

// String returns the lower-case stage name used in log lines and errors.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Source is the text of one shader stage.
type Source struct {
	Stage Stage
	Text  string
}

// VertexSource returns a Source for the vertex stage.
func VertexSource(text string) Source { return Source{Stage: StageVertex, Text: text} }

// FragmentSource returns a Source for the fragment stage.
func FragmentSource(text string) Source { return Source{Stage: StageFragment, Text: text} }

// Shader is a compiled shader object owned by the Device. Zero is invalid.
type Shader uint32

// Program is a linked program object owned by the Device. Zero is invalid.
type Program uint32

// Buffer is a GPU buffer object owned by the Device. Zero is invalid.
type Buffer uint32
