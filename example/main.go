// Example draws a single colored triangle using glprog.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example opens a GLFW window, activates a position+color shader program,
// binds three interleaved vertices and draws them until the window closes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glprog"
	"github.com/go-theft-auto/glprog/backend/opengl"
)

const vertexShaderSource = `
#version 410 core
in vec3 position;
in vec3 color;

out vec3 vColor;

void main() {
    gl_Position = vec4(position, 1.0);
    vColor = color;
}
`

const fragmentShaderSource = `
#version 410 core
in vec3 vColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`

// x, y, z, r, g, b
var triangle = []float32{
	0.0, 0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	glprog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg := opengl.DefaultWindowConfig()
	cfg.Title = "glprog example"
	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev := opengl.NewDevice()
	defer dev.Delete()

	ctx := glprog.NewContext(dev)
	defer ctx.Release()

	if !ctx.Activate(vertexShaderSource, fragmentShaderSource) {
		return errors.New("failed to initialize shaders")
	}
	if err := ctx.BindInterleavedVertices(triangle); err != nil {
		return fmt.Errorf("bind vertices: %w", err)
	}

	vertexCount := int32(len(triangle)) / glprog.PositionColor.Stride

	for !win.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, vertexCount)

		win.SwapBuffers()
	}

	return nil
}
