package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"carve/voxelmodel"
)

var unitCubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Renderer owns the GLFW window, the orbit camera, and the GPU
// resources for instanced cube rendering. It only ever reads from the
// *voxelmodel.Model given to it (spec.md §9 "cyclic references" -
// this is an explicit read-only borrow, never outliving the model).
type Renderer struct {
	cfg    Config
	window *Window
	camera *Camera
	model  *voxelmodel.Model

	program      uint32
	vao          uint32
	instanceVBO  uint32
	instanceN    int32

	showHelp  bool
	wireframe bool

	dragging     bool
	lastX, lastY float64
}

// NewRenderer builds a renderer bound to model, taking window, camera
// speed, color and help-text settings from cfg.
func NewRenderer(cfg Config, model *voxelmodel.Model) (*Renderer, error) {
	window, err := NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	center := mgl32.Vec3{
		(model.Bounds[0] + model.Bounds[1]) / 2,
		(model.Bounds[4] + model.Bounds[5]) / 2, // world Z maps to screen Y, spec.md §6
		(model.Bounds[2] + model.Bounds[3]) / 2, // world Y maps to screen Z, spec.md §6
	}
	radius := (model.Bounds[1] - model.Bounds[0]) +
		(model.Bounds[3] - model.Bounds[2]) +
		(model.Bounds[5] - model.Bounds[4])
	if radius <= 0 {
		radius = 1
	}

	camera := NewCamera(cfg, center, radius)

	program, err := newCubeProgram()
	if err != nil {
		window.Close()
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		window: window,
		camera: camera,
		model:  model,
		program: program,
	}

	r.initBuffers()
	r.uploadInstances()
	r.installCallbacks()

	return r, nil
}

func (r *Renderer) initBuffers() {
	var cubeVBO uint32
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitCubeVertices)*4, gl.Ptr(unitCubeVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribDivisor(1, 1)
}

// uploadInstances packs Model.Cubes into screen-space positions,
// swapping Y/Z per spec.md §6, and uploads them as the per-instance
// vertex attribute.
func (r *Renderer) uploadInstances() {
	data := make([]float32, 0, len(r.model.Cubes)*3)
	for _, c := range r.model.Cubes {
		data = append(data, c.X, c.Z, c.Y)
	}
	r.instanceN = int32(len(r.model.Cubes))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
}

func (r *Renderer) installCallbacks() {
	h := r.window.Handle()
	h.SetKeyCallback(r.keyCallback)
	h.SetMouseButtonCallback(r.mouseButtonCallback)
	h.SetCursorPosCallback(r.cursorPosCallback)
	h.SetScrollCallback(r.scrollCallback)
	h.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		r.camera.Resize(w, h)
	})
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		r.window.glfw.SetShouldClose(true)
	case glfw.KeyH:
		r.showHelp = !r.showHelp
	case glfw.KeyX:
		r.wireframe = !r.wireframe
	case glfw.KeyR:
		radius := (r.model.Bounds[1] - r.model.Bounds[0]) +
			(r.model.Bounds[3] - r.model.Bounds[2]) +
			(r.model.Bounds[5] - r.model.Bounds[4])
		r.camera.Reset(radius)
	}
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	r.dragging = action == glfw.Press
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	dx, dy := float32(xpos-r.lastX), float32(ypos-r.lastY)
	r.lastX, r.lastY = xpos, ypos
	if r.dragging {
		r.camera.Orbit(dx, -dy)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoff float64) {
	r.camera.Zoom(float32(yoff))
}

// Run blocks in the render loop until the window is closed.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.window.Clear(r.cfg.BackgroundColor)

		if r.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		r.draw()

		if r.showHelp {
			fmt.Println(r.cfg.HelpText)
			r.showHelp = false // printed once per toggle, not every frame
		}

		r.window.SwapBuffers()
		r.window.PollEvents()
	}
	r.Close()
}

func (r *Renderer) draw() {
	gl.UseProgram(r.program)

	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix()
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.program, gl.Str("uView\x00")), 1, false, &view[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.program, gl.Str("uProjection\x00")), 1, false, &proj[0])
	gl.Uniform3f(gl.GetUniformLocation(r.program, gl.Str("uColor\x00")),
		r.cfg.CubeColor[0], r.cfg.CubeColor[1], r.cfg.CubeColor[2])
	gl.Uniform3f(gl.GetUniformLocation(r.program, gl.Str("uCubeScale\x00")),
		r.model.CubeDimensions.X, r.model.CubeDimensions.Z, r.model.CubeDimensions.Y)

	gl.BindVertexArray(r.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(unitCubeVertices)/3), r.instanceN)
}

// Close releases GPU and window resources.
func (r *Renderer) Close() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.instanceVBO)
	gl.DeleteProgram(r.program)
	r.window.Close()
}
