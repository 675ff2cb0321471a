package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is an orbit camera: it always looks at target from a point
// (yaw, pitch, distance away), rather than the teacher's free-fly FPS
// camera (Leterax-go-voxels/pkg/render/camera.go) - orbiting around a
// bounded reconstruction's center is the natural fit here.
type Camera struct {
	target   mgl32.Vec3
	yaw      float32
	pitch    float32
	distance float32
	fov      float32

	width, height int
	cfg           Config
}

// NewCamera builds an orbit camera centered on target, framed to see
// out to radius at minimum (NewRenderer in renderer.go sets radius
// from the model's bounds).
func NewCamera(cfg Config, target mgl32.Vec3, radius float32) *Camera {
	c := &Camera{
		target:   target,
		yaw:      -90,
		pitch:    20,
		distance: radius * 2.5,
		fov:      cfg.DefaultFOV,
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		cfg:      cfg,
	}
	if c.distance < cfg.MinDistance {
		c.distance = cfg.MinDistance
	}
	return c
}

// Orbit adjusts yaw/pitch by a drag delta, clamping pitch.
func (c *Camera) Orbit(dx, dy float32) {
	c.yaw += dx * c.cfg.OrbitSpeed
	c.pitch += dy * c.cfg.OrbitSpeed
	if c.pitch > c.cfg.MaxPitch {
		c.pitch = c.cfg.MaxPitch
	}
	if c.pitch < c.cfg.MinPitch {
		c.pitch = c.cfg.MinPitch
	}
}

// Zoom adjusts the orbit distance, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(delta float32) {
	c.distance -= delta * c.cfg.ZoomSpeed
	if c.distance < c.cfg.MinDistance {
		c.distance = c.cfg.MinDistance
	}
	if c.distance > c.cfg.MaxDistance {
		c.distance = c.cfg.MaxDistance
	}
}

// Reset restores the camera's initial yaw/pitch/distance for radius.
func (c *Camera) Reset(radius float32) {
	c.yaw = -90
	c.pitch = 20
	c.distance = radius * 2.5
	if c.distance < c.cfg.MinDistance {
		c.distance = c.cfg.MinDistance
	}
}

func (c *Camera) position() mgl32.Vec3 {
	yawRad := mgl32.DegToRad(c.yaw)
	pitchRad := mgl32.DegToRad(c.pitch)
	offset := mgl32.Vec3{
		cosf(pitchRad) * cosf(yawRad),
		sinf(pitchRad),
		cosf(pitchRad) * sinf(yawRad),
	}.Mul(c.distance)
	return c.target.Add(offset)
}

// ViewMatrix returns the current look-at matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position(), c.target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the current perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, 0.1, c.cfg.MaxDistance*2)
}

// Resize updates the projection aspect ratio after a window resize.
func (c *Camera) Resize(width, height int) {
	c.width, c.height = width, height
}
