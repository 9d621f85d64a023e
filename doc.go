/*
Package glprog compiles and links GPU shader programs and binds an
interleaved position+color vertex layout against them.

# Overview

A Context wraps a Device, the graphics context the helpers drive, and keeps
the active program and vertex buffer as fields instead of leaving them as
global state on the device. The OpenGL 4.1 implementation of Device lives in
the backend/opengl package.

Every failure is logged once and returned as an error (or false, for
Activate). Nothing panics and nothing is retried: fix the source and call
again.

# Quick Start

	win, _ := opengl.NewWindow(opengl.DefaultWindowConfig())
	defer win.Destroy()

	dev := opengl.NewDevice()
	defer dev.Delete()

	ctx := glprog.NewContext(dev)
	defer ctx.Release()

	if !ctx.Activate(vertexSrc, fragmentSrc) {
	    return errors.New("shader setup failed")
	}

	// x, y, z, r, g, b per vertex.
	if err := ctx.BindInterleavedVertices(vertices); err != nil {
	    return err
	}

# Errors

Compile and link failures are *CompileError and *LinkError, which wrap
ErrCompile and ErrLink for use with errors.Is. Object creation failures wrap
ErrObjectCreation.

# Logging

glprog is silent by default. Use SetLogger to route diagnostics to a
log/slog logger for every context, or WithLogger for a single one.
*/
package glprog
