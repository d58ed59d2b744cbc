package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a fixed target point. Azimuth and elevation are in radians;
// distance is the orbit radius.
type Camera struct {
	Target    mgl32.Vec3
	Azimuth   float32
	Elevation float32
	Distance  float32

	Fov  float32
	Near float32
	Far  float32
}

// NewCamera returns a camera framing the attractor: the butterfly sits
// roughly around z=27, so the orbit target is lifted off the origin.
func NewCamera() *Camera {
	return &Camera{
		Target:    mgl32.Vec3{0, 0, 30},
		Azimuth:   0.5,
		Elevation: 0.4,
		Distance:  95,
		Fov:       mgl32.DegToRad(45),
		Near:      0.1,
		Far:       1000,
	}
}

// Position computes the eye point from the orbit parameters. Elevation tilts
// around the target's local horizon, so the attractor's z axis maps to view
// up.
func (c *Camera) Position() mgl32.Vec3 {
	cosE := float32(math.Cos(float64(c.Elevation)))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * cosE * float32(math.Cos(float64(c.Azimuth))),
		c.Distance * cosE * float32(math.Sin(float64(c.Azimuth))),
		c.Distance * float32(math.Sin(float64(c.Elevation))),
	})
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 0, 1})
}

func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(c.Fov, aspect, c.Near, c.Far)
}

// AutoRotate advances the azimuth by one tick's worth of spin. Speed is the
// raw config value; the divisor keeps small integer settings usable.
func (c *Camera) AutoRotate(speed float32) {
	c.Azimuth += speed / 10000
}

// Orbit applies a mouse drag in screen pixels. Elevation is clamped short of
// the poles to keep LookAtV well conditioned.
func (c *Camera) Orbit(dx, dy float32) {
	const sensitivity = 0.005
	c.Azimuth -= dx * sensitivity
	c.Elevation += dy * sensitivity

	limit := float32(math.Pi/2 - 0.01)
	if c.Elevation > limit {
		c.Elevation = limit
	}
	if c.Elevation < -limit {
		c.Elevation = -limit
	}
}

// Zoom moves the eye along the view ray. Scroll up (positive offset) zooms in.
func (c *Camera) Zoom(offset float32) {
	c.Distance -= offset * 4
	if c.Distance < 5 {
		c.Distance = 5
	}
	if c.Distance > 500 {
		c.Distance = 500
	}
}
