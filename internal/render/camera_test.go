package render

import (
	"math"
	"testing"
)

func TestCameraPositionRespectsDistance(t *testing.T) {
	c := NewCamera()
	got := c.Position().Sub(c.Target).Len()
	if diff := math.Abs(float64(got - c.Distance)); diff > 1e-3 {
		t.Fatalf("eye distance = %v, want %v", got, c.Distance)
	}
}

func TestCameraAutoRotate(t *testing.T) {
	c := NewCamera()
	start := c.Azimuth
	for i := 0; i < 100; i++ {
		c.AutoRotate(10)
	}
	want := start + 100*10.0/10000
	if diff := math.Abs(float64(c.Azimuth - want)); diff > 1e-4 {
		t.Fatalf("azimuth = %v, want %v", c.Azimuth, want)
	}
}

func TestCameraOrbitClampsElevation(t *testing.T) {
	c := NewCamera()
	c.Orbit(0, 1e6)
	if c.Elevation >= float32(math.Pi/2) {
		t.Fatalf("elevation %v reached the pole", c.Elevation)
	}
	c.Orbit(0, -1e9)
	if c.Elevation <= float32(-math.Pi/2) {
		t.Fatalf("elevation %v reached the pole", c.Elevation)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera()
	c.Zoom(1e6)
	if c.Distance < 5 {
		t.Fatalf("distance %v below minimum", c.Distance)
	}
	c.Zoom(-1e9)
	if c.Distance > 500 {
		t.Fatalf("distance %v above maximum", c.Distance)
	}
}

func TestProjectionHandlesZeroHeight(t *testing.T) {
	c := NewCamera()
	m := c.Projection(800, 0)
	for i := 0; i < 16; i++ {
		if math.IsNaN(float64(m[i])) || math.IsInf(float64(m[i]), 0) {
			t.Fatalf("projection element %d is not finite: %v", i, m[i])
		}
	}
}
