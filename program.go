package glprog

import (
	"fmt"
	"log/slog"
)

// CompileShader creates a shader object for stage, uploads text and compiles
// it. On failure the compiler diagnostic is logged, the shader object is
// deleted and a *CompileError is returned.
func (c *Context) CompileShader(stage Stage, text string) (Shader, error) {
	s := c.dev.CreateShader(stage)
	if s == 0 {
		c.log().Error("unable to create shader", slog.String("stage", stage.String()))
		return 0, fmt.Errorf("%s shader: %w", stage, ErrObjectCreation)
	}

	c.dev.ShaderSource(s, text)
	c.dev.CompileShader(s)

	if !c.dev.ShaderCompiled(s) {
		info := c.dev.ShaderInfoLog(s)
		c.log().Error("failed to compile shader",
			slog.String("stage", stage.String()),
			slog.String("log", info))
		c.dev.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: info}
	}

	return s, nil
}

// BuildProgram compiles both stages and links them into a program.
//
// A stage that fails to compile stops the build before any program object
// is created. If linking fails the program and both shaders are deleted and
// a *LinkError is returned. On success the shader objects are flagged for
// deletion and are freed together with the program.
func (c *Context) BuildProgram(vertexSource, fragmentSource string) (Program, error) {
	vs, err := c.CompileShader(StageVertex, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := c.CompileShader(StageFragment, fragmentSource)
	if err != nil {
		c.dev.DeleteShader(vs)
		return 0, err
	}

	p := c.dev.CreateProgram()
	if p == 0 {
		c.log().Error("unable to create program")
		c.dev.DeleteShader(vs)
		c.dev.DeleteShader(fs)
		return 0, fmt.Errorf("program: %w", ErrObjectCreation)
	}

	c.dev.AttachShader(p, vs)
	c.dev.AttachShader(p, fs)
	c.dev.LinkProgram(p)

	if !c.dev.ProgramLinked(p) {
		info := c.dev.ProgramInfoLog(p)
		c.log().Error("failed to link program", slog.String("log", info))
		c.dev.DeleteProgram(p)
		c.dev.DeleteShader(vs)
		c.dev.DeleteShader(fs)
		return 0, &LinkError{Log: info}
	}

	// Attached shaders are only flagged here; the device frees them with p.
	c.dev.DeleteShader(vs)
	c.dev.DeleteShader(fs)

	c.log().Debug("program linked",
		slog.Uint64("program", uint64(p)),
		slog.Uint64("vertex", uint64(vs)),
		slog.Uint64("fragment", uint64(fs)))

	return p, nil
}

// BuildProgramFrom is BuildProgram for a pair of Sources. The sources may be
// given in either order but must cover both stages.
func (c *Context) BuildProgramFrom(a, b Source) (Program, error) {
	if a.Stage == StageFragment && b.Stage == StageVertex {
		a, b = b, a
	}
	if a.Stage != StageVertex || b.Stage != StageFragment {
		return 0, fmt.Errorf("build program: need one vertex and one fragment source, got %s and %s", a.Stage, b.Stage)
	}
	return c.BuildProgram(a.Text, b.Text)
}

// Activate builds a program from the two sources and makes it current.
// It reports whether the program is now active. Failures are logged once, by
// BuildProgram. On failure the previously active program, if any, stays
// current. On success a previously active program owned by c is deleted.
func (c *Context) Activate(vertexSource, fragmentSource string) bool {
	p, err := c.BuildProgram(vertexSource, fragmentSource)
	if err != nil {
		c.log().Debug("activate failed", slog.Any("err", err))
		return false
	}

	c.dev.UseProgram(p)
	prev := c.program
	c.program = p
	if prev != 0 {
		c.dev.DeleteProgram(prev)
	}

	return true
}
