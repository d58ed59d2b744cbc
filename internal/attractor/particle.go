package attractor

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Particle is one emitter: a point moving along the attractor that feeds the
// shared trail buffer. Position is the only mutable field; the colors are
// fixed at spawn.
type Particle struct {
	Index      int
	Position   mgl32.Vec3
	HeadColor  mgl32.Vec3 // linear RGB for the head sphere
	TrailColor mgl32.Vec3 // desaturated linear RGB for emitted segments
}

// SpawnFan creates n particles at deterministic, evenly fanned-out positions
// splat(i*spacing) for i in 1..n, each with a distinct hue spread evenly
// across the color wheel. Head colors use saturation 0.7, trail colors 0.3.
func SpawnFan(n int, spacing float32) []Particle {
	particles := make([]Particle, 0, n)
	for i := 1; i <= n; i++ {
		hue := float64(i) / float64(n) * 360
		pos := float32(i) * spacing
		particles = append(particles, Particle{
			Index:      i - 1,
			Position:   mgl32.Vec3{pos, pos, pos},
			HeadColor:  linearRGB(hue, 0.7),
			TrailColor: linearRGB(hue, 0.3),
		})
	}
	return particles
}

func linearRGB(hue, saturation float64) mgl32.Vec3 {
	r, g, b := colorful.Hsl(hue, saturation, 0.5).LinearRgb()
	return mgl32.Vec3{float32(r), float32(g), float32(b)}
}
