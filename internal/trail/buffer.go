package trail

// initialCapacity sizes the backing slice up front; pushes happen every
// physics tick for every particle, so growth on the hot path is avoided.
const initialCapacity = 16384

// Buffer is the single trail history shared by all emitters: a chronologically
// ordered deque with O(1) tail push and O(k) head eviction. It is never empty
// after initialization: a placeholder segment is kept so the GPU instance
// buffer always has at least one record (an empty vertex buffer is undefined
// behavior on some drivers).
//
// Buffer is not safe for concurrent use; appends and eviction run on the
// single simulation goroutine.
type Buffer struct {
	segs []Segment
	head int
}

func NewBuffer() *Buffer {
	b := &Buffer{segs: make([]Segment, 0, initialCapacity)}
	b.segs = append(b.segs, Placeholder())
	return b
}

// Push appends a segment at the tail. Callers must push in chronological
// order; eviction relies on birth times being non-decreasing.
func (b *Buffer) Push(seg Segment) {
	b.segs = append(b.segs, seg)
}

// Len is the number of live segments.
func (b *Buffer) Len() int { return len(b.segs) - b.head }

// Segments returns the live segments in chronological order. The slice aliases
// the buffer's storage and is invalidated by the next mutation.
func (b *Buffer) Segments() []Segment { return b.segs[b.head:] }

// Front returns the oldest live segment.
func (b *Buffer) Front() (Segment, bool) {
	if b.Len() == 0 {
		return Segment{}, false
	}
	return b.segs[b.head], true
}

// EvictExpired removes the contiguous head run of segments whose age has
// reached their lifetime. The scan stops at the first survivor, so the cost is
// proportional to the eviction count, not the buffer length. If no segment
// survives, nothing is removed: expired segments render invisible and the
// buffer stays non-empty.
func (b *Buffer) EvictExpired(now float32) int {
	survivor := -1
	for i := b.head; i < len(b.segs); i++ {
		if !b.segs[i].Expired(now) {
			survivor = i
			break
		}
	}
	if survivor <= b.head {
		return 0
	}
	evicted := survivor - b.head
	b.head = survivor
	b.compact()
	return evicted
}

// compact reclaims the evicted prefix once it dominates the backing slice.
func (b *Buffer) compact() {
	if b.head*2 < len(b.segs) {
		return
	}
	n := copy(b.segs, b.segs[b.head:])
	b.segs = b.segs[:n]
	b.head = 0
}

// RewriteLifetime bulk-overwrites every live segment's lifetime so in-flight
// segments re-fade against the new duration. It no-ops when the front segment
// already carries the new value, making it cheap to call on every observed
// configuration change.
func (b *Buffer) RewriteLifetime(lifetime float32) {
	if lifetime <= 0 {
		lifetime = MinLifetime
	}
	front, ok := b.Front()
	if !ok || front.Lifetime == lifetime {
		return
	}
	live := b.segs[b.head:]
	for i := range live {
		live[i].Lifetime = lifetime
	}
}

// Clear empties the buffer and re-seeds the placeholder. Idempotent.
func (b *Buffer) Clear() {
	b.segs = b.segs[:0]
	b.segs = append(b.segs, Placeholder())
	b.head = 0
}

// AppendInstanceData serializes the live segments into dst in the tightly
// packed per-instance layout (FloatsPerInstance f32 values each) and returns
// the extended slice. Passing dst[:0] reuses the previous frame's allocation.
func (b *Buffer) AppendInstanceData(dst []float32) []float32 {
	for _, seg := range b.segs[b.head:] {
		dst = seg.appendInstance(dst)
	}
	return dst
}
