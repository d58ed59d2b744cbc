package trail

import "github.com/go-gl/mathgl/mgl32"

// MinLifetime is the placeholder lifetime, small but positive so the shader's
// age/lifetime ratio never divides by zero.
const MinLifetime = 0.01

// FloatsPerInstance is the number of f32 values one segment occupies in the
// per-instance vertex buffer: position(3) length(1) rotation(4) color(3)
// birth(1) lifetime(1). InstanceStride is the same in bytes. The order and
// offsets must match the vertex attribute layout in internal/render; any
// reordering breaks rendering silently.
const (
	FloatsPerInstance = 13
	InstanceStride    = FloatsPerInstance * 4
)

// refAxis is the canonical direction the base cylinder mesh points in;
// segment rotations map it onto the direction of travel.
var refAxis = mgl32.Vec3{0, 1, 0}

// Segment is one rendered unit of a particle's trail, immutable once created
// except for the bulk lifetime rewrite when the configured lifetime changes.
type Segment struct {
	Position  mgl32.Vec3
	Length    float32
	Rotation  mgl32.Quat
	Color     mgl32.Vec3
	BirthTime float32
	Lifetime  float32
}

// Placeholder is the seed segment that keeps the buffer structurally
// non-empty; zero length makes it invisible.
func Placeholder() Segment {
	return Segment{Rotation: mgl32.QuatIdent(), Lifetime: MinLifetime}
}

// Encode converts one tick of particle motion into a segment. origin is the
// position before the step and delta the motion over the tick. A zero-length
// delta has no defined direction, so no segment is emitted and ok is false.
func Encode(origin, delta, color mgl32.Vec3, now, lifetime float32) (seg Segment, ok bool) {
	length := delta.Len()
	if length == 0 {
		return Segment{}, false
	}
	if lifetime <= 0 {
		lifetime = MinLifetime
	}
	return Segment{
		Position:  origin,
		Length:    length,
		Rotation:  mgl32.QuatBetweenVectors(refAxis, delta),
		Color:     color,
		BirthTime: now,
		Lifetime:  lifetime,
	}, true
}

// Age returns how long the segment has existed at simulation time now.
func (s Segment) Age(now float32) float32 { return now - s.BirthTime }

// Expired reports whether the segment has outlived its lifetime.
func (s Segment) Expired(now float32) bool { return s.Age(now) >= s.Lifetime }

// appendInstance packs the segment into dst in the GPU wire order.
func (s Segment) appendInstance(dst []float32) []float32 {
	return append(dst,
		s.Position.X(), s.Position.Y(), s.Position.Z(), s.Length,
		s.Rotation.V.X(), s.Rotation.V.Y(), s.Rotation.V.Z(), s.Rotation.W,
		s.Color.X(), s.Color.Y(), s.Color.Z(),
		s.BirthTime, s.Lifetime,
	)
}
