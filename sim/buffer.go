package sim

import "fmt"

// Buffer is a capacity-bounded holding area for work-in-progress between two
// production stages. A stage that dequeues from an empty buffer cannot start,
// and a stage whose destination has no free space cannot start either; that
// is how a downstream bottleneck starves upstream stages.
//
// Output space is reserved when a task starts and settled when it finishes:
// Commit lands the unit, Release gives the space back on scrap or rework.
// Occupancy never leaves [0, capacity]. A violation means the run state is
// corrupted and the engine panics rather than produce meaningless figures.
type Buffer struct {
	name     string
	capacity int
	level    int
	reserved int
}

// NewBuffer creates a buffer with the given capacity and starting occupancy.
func NewBuffer(name string, capacity, level int) *Buffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("buffer %s: capacity must be positive, got %d", name, capacity))
	}
	if level < 0 || level > capacity {
		panic(fmt.Sprintf("buffer %s: starting level %d outside [0, %d]", name, level, capacity))
	}
	return &Buffer{name: name, capacity: capacity, level: level}
}

// Name returns the buffer's name.
func (b *Buffer) Name() string { return b.name }

// Level returns the current occupancy.
func (b *Buffer) Level() int { return b.level }

// Capacity returns the configured capacity limit.
func (b *Buffer) Capacity() int { return b.capacity }

// Space returns the room not yet claimed by stock or in-flight reservations.
func (b *Buffer) Space() int { return b.capacity - b.level - b.reserved }

// TryTake removes n units if at least n are present. Returns false (and
// leaves the buffer untouched) otherwise; the caller stage stays Idle.
func (b *Buffer) TryTake(n int) bool {
	if n <= 0 {
		panic(fmt.Sprintf("buffer %s: TryTake(%d)", b.name, n))
	}
	if b.level < n {
		return false
	}
	b.level -= n
	return true
}

// TryReserve claims space for n units of in-flight output. Returns false if
// the claim would exceed capacity. A successful claim is settled later with
// Commit or Release.
func (b *Buffer) TryReserve(n int) bool {
	if n <= 0 {
		panic(fmt.Sprintf("buffer %s: TryReserve(%d)", b.name, n))
	}
	if b.Space() < n {
		return false
	}
	b.reserved += n
	return true
}

// Commit converts n previously reserved slots into occupancy.
func (b *Buffer) Commit(n int) {
	if n <= 0 || n > b.reserved {
		panic(fmt.Sprintf("buffer %s: Commit(%d) with %d reserved", b.name, n, b.reserved))
	}
	b.reserved -= n
	b.level += n
	if b.level > b.capacity {
		panic(fmt.Sprintf("buffer %s: occupancy %d exceeds capacity %d", b.name, b.level, b.capacity))
	}
}

// Release gives back n reserved slots without producing output.
func (b *Buffer) Release(n int) {
	if n <= 0 || n > b.reserved {
		panic(fmt.Sprintf("buffer %s: Release(%d) with %d reserved", b.name, n, b.reserved))
	}
	b.reserved -= n
}
