package trail

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/gomega"
)

func segmentAt(birth float32) Segment {
	seg, _ := Encode(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}, birth, 2)
	return seg
}

func births(b *Buffer) []float32 {
	out := make([]float32, 0, b.Len())
	for _, seg := range b.Segments() {
		out = append(out, seg.BirthTime)
	}
	return out
}

func TestBufferSeeded(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 1 {
		t.Fatalf("expected seeded buffer of length 1, got %d", b.Len())
	}
}

func TestEvictExpired(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	b.Clear()
	// Drop the placeholder so only the crafted segments remain.
	b.segs = b.segs[:0]
	for _, birth := range []float32{0, 1, 2, 3} {
		b.Push(segmentAt(birth))
	}

	// lifetime 2, now 3: births 0 and 1 have age >= lifetime and go.
	evicted := b.EvictExpired(3)

	g.Expect(evicted).To(Equal(2))
	g.Expect(births(b)).To(Equal([]float32{2, 3}))
}

func TestEvictStopsAtFirstSurvivor(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	b.segs = b.segs[:0]
	b.Push(segmentAt(0))
	b.Push(segmentAt(5)) // survivor shields everything behind it
	b.Push(segmentAt(1))

	b.EvictExpired(4)

	g.Expect(births(b)).To(Equal([]float32{5, 1}))
}

func TestEvictAllExpiredKeepsBuffer(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	b.segs = b.segs[:0]
	b.Push(segmentAt(0))
	b.Push(segmentAt(1))

	evicted := b.EvictExpired(100)

	g.Expect(evicted).To(BeZero(), "with no survivor nothing is drained")
	g.Expect(b.Len()).To(Equal(2))
}

func TestEvictionUnderContinuousLoad(t *testing.T) {
	b := NewBuffer()
	// Simulate a long run: one push per tick, eviction every tick.
	const dt = float32(1.0 / 120)
	now := float32(0)
	for i := 0; i < 10000; i++ {
		b.EvictExpired(now)
		seg, ok := Encode(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, now, 0.5)
		if !ok {
			t.Fatal("encode failed")
		}
		b.Push(seg)
		now += dt
	}

	// A leaked, non-evicting buffer would hold all 10000 segments; a healthy
	// one holds roughly lifetime/dt of them.
	if b.Len() > 100 {
		t.Errorf("buffer leaked: %d segments live", b.Len())
	}
	for _, seg := range b.Segments() {
		if seg.Expired(now - dt) {
			t.Fatalf("expired segment survived: birth %f at now %f", seg.BirthTime, now-dt)
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	for i := 0; i < 50; i++ {
		b.Push(segmentAt(float32(i)))
	}

	b.Clear()
	first := append([]Segment(nil), b.Segments()...)
	b.Clear()
	second := append([]Segment(nil), b.Segments()...)

	g.Expect(first).To(HaveLen(1))
	g.Expect(second).To(Equal(first))
	g.Expect(b.Len()).To(BeNumerically(">=", 1), "buffer must never report empty after clear")
}

func TestRewriteLifetime(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	b.segs = b.segs[:0]
	for i := 0; i < 10; i++ {
		b.Push(segmentAt(float32(i)))
	}

	b.RewriteLifetime(7.5)
	for _, seg := range b.Segments() {
		g.Expect(seg.Lifetime).To(Equal(float32(7.5)))
	}

	// Non-positive values clamp to the epsilon lifetime.
	b.RewriteLifetime(0)
	front, _ := b.Front()
	g.Expect(front.Lifetime).To(Equal(float32(MinLifetime)))
}

func TestAppendInstanceData(t *testing.T) {
	g := NewWithT(t)

	b := NewBuffer()
	b.segs = b.segs[:0]
	seg := Segment{
		Position:  mgl32.Vec3{1, 2, 3},
		Length:    4,
		Rotation:  mgl32.Quat{W: 8, V: mgl32.Vec3{5, 6, 7}},
		Color:     mgl32.Vec3{9, 10, 11},
		BirthTime: 12,
		Lifetime:  13,
	}
	b.Push(seg)
	b.Push(seg)

	data := b.AppendInstanceData(nil)

	g.Expect(data).To(HaveLen(2 * FloatsPerInstance))
	// Wire order is load-bearing: position, length, rotation xyzw, color,
	// birth time, lifetime.
	g.Expect(data[:FloatsPerInstance]).To(Equal([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}))
	g.Expect(data[FloatsPerInstance:]).To(Equal(data[:FloatsPerInstance]))
}

func TestInstanceStride(t *testing.T) {
	if InstanceStride != 52 {
		t.Errorf("expected 52-byte instance stride, got %d", InstanceStride)
	}
}

func TestCompaction(t *testing.T) {
	b := NewBuffer()
	b.segs = b.segs[:0]

	// Interleave pushes and evictions so the head index keeps advancing; the
	// live window must stay intact across compactions.
	now := float32(0)
	for i := 0; i < 1000; i++ {
		b.Push(segmentAt(now))
		now += 0.5
		b.EvictExpired(now)
	}

	segs := b.Segments()
	for i := 1; i < len(segs); i++ {
		if segs[i].BirthTime < segs[i-1].BirthTime {
			t.Fatal("chronological order broken after compaction")
		}
	}
}
