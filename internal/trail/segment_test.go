package trail

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/gomega"
)

func TestEncodeOrientationRoundTrip(t *testing.T) {
	g := NewWithT(t)

	deltas := []mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0, -1, 0}, // antiparallel to the reference axis
		{-2.5, 0.3, 1.7},
		{1e-4, 2e-4, -3e-4},
	}

	for _, delta := range deltas {
		seg, ok := Encode(mgl32.Vec3{}, delta, mgl32.Vec3{1, 1, 1}, 0, 1)
		g.Expect(ok).To(BeTrue(), "delta %v", delta)

		// The stored rotation applied to the reference axis must reproduce
		// the normalized travel direction.
		got := seg.Rotation.Rotate(refAxis)
		want := delta.Normalize()
		g.Expect(got.Sub(want).Len()).To(BeNumerically("<", 1e-4), "delta %v: got %v want %v", delta, got, want)

		g.Expect(seg.Length).To(BeNumerically("~", delta.Len(), 1e-6))
	}
}

func TestEncodeZeroDelta(t *testing.T) {
	g := NewWithT(t)

	_, ok := Encode(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 5, 1)
	g.Expect(ok).To(BeFalse(), "zero delta must not emit a segment")
}

func TestEncodeFields(t *testing.T) {
	g := NewWithT(t)

	origin := mgl32.Vec3{1, 2, 3}
	color := mgl32.Vec3{0.2, 0.4, 0.6}
	seg, ok := Encode(origin, mgl32.Vec3{0, 3, 4}, color, 7.5, 10)

	g.Expect(ok).To(BeTrue())
	g.Expect(seg.Position).To(Equal(origin))
	g.Expect(seg.Color).To(Equal(color))
	g.Expect(seg.BirthTime).To(Equal(float32(7.5)))
	g.Expect(seg.Lifetime).To(Equal(float32(10)))
	g.Expect(seg.Length).To(Equal(float32(5)))
}

func TestEncodeClampsNonPositiveLifetime(t *testing.T) {
	g := NewWithT(t)

	seg, ok := Encode(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 0, 0)
	g.Expect(ok).To(BeTrue())
	g.Expect(seg.Lifetime).To(Equal(float32(MinLifetime)))
}

func TestPlaceholder(t *testing.T) {
	g := NewWithT(t)

	p := Placeholder()
	g.Expect(p.Lifetime).To(BeNumerically(">", 0))
	g.Expect(p.Length).To(BeZero())
}

func TestSegmentAge(t *testing.T) {
	seg := Segment{BirthTime: 2, Lifetime: 3}

	if seg.Age(4) != 2 {
		t.Errorf("expected age 2, got %f", seg.Age(4))
	}
	if seg.Expired(4.5) {
		t.Error("segment expired too early")
	}
	if !seg.Expired(5) {
		t.Error("segment should expire at age == lifetime")
	}
}
