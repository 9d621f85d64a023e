package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window NewWindow opens.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// DefaultWindowConfig returns an 800x600 vsynced window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "glprog",
		VSync:  true,
	}
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	*glfw.Window
}

// NewWindow initializes GLFW, opens a window, makes its context current and
// loads the GL function pointers. GLFW must run on the main thread, so the
// caller should have locked it with runtime.LockOSThread.
//
// Escape closes the window.
func NewWindow(cfg WindowConfig) (*Window, error) {
	cfg = cfg.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w.SetKeyCallback(keyCallback)
	w.SetFramebufferSizeCallback(framebufferSizeCallback)

	return &Window{Window: w}, nil
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

func (c WindowConfig) withDefaults() WindowConfig {
	def := DefaultWindowConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	return c
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
