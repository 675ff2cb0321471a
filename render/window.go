package render

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw requires its event loop to run on the OS thread that created
	// the window, per Leterax-go-voxels/internal/openglhelper/window.go
	// and Carmen-Shannon-oxy-go's equivalent convention.
	runtime.LockOSThread()
}

// Window wraps a GLFW window with an OpenGL 4.6 core-profile context.
type Window struct {
	glfw   *glfw.Window
	width  int
	height int
}

// NewWindow creates a GLFW window with an OpenGL context, sized and
// titled per cfg.
func NewWindow(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("render: initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("render: creating window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: initializing opengl: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Window{glfw: win, width: cfg.WindowWidth, height: cfg.WindowHeight}, nil
}

// Clear clears the color and depth buffers to color.
func (w *Window) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.glfw.SwapBuffers() }

// PollEvents processes pending window/input events.
func (w *Window) PollEvents() { glfw.PollEvents() }

// ShouldClose reports whether the user requested the window close.
func (w *Window) ShouldClose() bool { return w.glfw.ShouldClose() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() { glfw.Terminate() }

// Size returns the current window size in screen coordinates.
func (w *Window) Size() (int, int) { return w.glfw.GetSize() }

// Handle exposes the underlying *glfw.Window for callback registration.
func (w *Window) Handle() *glfw.Window { return w.glfw }
