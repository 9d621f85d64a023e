package glprog

import "log/slog"

// Context wraps a Device and owns the state the device treats as global:
// the active program and the vertex buffer bound against it.
type Context struct {
	dev    Device
	logger *slog.Logger

	strictAttributes bool

	program Program
	vbo     Buffer
}

// NewContext creates a context driving dev.
func NewContext(dev Device, opts ...Option) *Context {
	c := &Context{dev: dev}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Device returns the underlying device.
func (c *Context) Device() Device {
	return c.dev
}

// Program returns the active program, or zero if none has been activated.
func (c *Context) Program() Program {
	return c.program
}

// Release deletes the vertex buffer and active program owned by the context.
// It is safe to call more than once.
func (c *Context) Release() {
	if c.vbo != 0 {
		c.dev.DeleteBuffer(c.vbo)
		c.vbo = 0
	}
	if c.program != 0 {
		c.dev.UseProgram(0)
		c.dev.DeleteProgram(c.program)
		c.program = 0
	}
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
