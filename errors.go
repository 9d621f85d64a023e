package glprog

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectCreation is returned when the device fails to create a
	// shader, program or buffer object.
	ErrObjectCreation = errors.New("glprog: object creation failed")
	// ErrCompile is wrapped by every *CompileError.
	ErrCompile = errors.New("glprog: shader compilation failed")
	// ErrLink is wrapped by every *LinkError.
	ErrLink = errors.New("glprog: program linking failed")
	// ErrNoProgram is returned when vertices are bound before a program is active.
	ErrNoProgram = errors.New("glprog: no active program")
	// ErrAttributeNotFound is returned in strict mode when a layout
	// attribute is not active in the program.
	ErrAttributeNotFound = errors.New("glprog: attribute not found")
	// ErrInvalidLayout is returned for a VertexLayout that cannot be bound.
	ErrInvalidLayout = errors.New("glprog: invalid vertex layout")
)

// CompileError carries the compiler diagnostic for one stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the linker diagnostic.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
