package matrix

// body is a ring-buffer deque of snake segments, oldest at the front and
// the head at the back.
type body struct {
	buf   []Coord
	start int
	n     int
}

func (b *body) Len() int {
	return b.n
}

// PushBack appends c as the newest segment, growing the buffer if full.
func (b *body) PushBack(c Coord) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.buf[(b.start+b.n)%len(b.buf)] = c
	b.n++
}

// PopFront removes and returns the oldest segment. It must not be called
// on an empty body.
func (b *body) PopFront() Coord {
	c := b.buf[b.start]
	b.start = (b.start + 1) % len(b.buf)
	b.n--
	if b.n == 0 {
		b.start = 0
	}
	return c
}

// Front returns the oldest segment. It must not be called on an empty body.
func (b *body) Front() Coord {
	return b.buf[b.start]
}

// Back returns the newest segment. It must not be called on an empty body.
func (b *body) Back() Coord {
	return b.buf[(b.start+b.n-1)%len(b.buf)]
}

// At returns the i-th segment counting from the front.
func (b *body) At(i int) Coord {
	return b.buf[(b.start+i)%len(b.buf)]
}

// Slice copies the segments oldest first into a new slice.
func (b *body) Slice() []Coord {
	out := make([]Coord, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *body) grow() {
	size := 2 * len(b.buf)
	if size == 0 {
		size = 8
	}
	buf := make([]Coord, size)
	for i := 0; i < b.n; i++ {
		buf[i] = b.At(i)
	}
	b.buf = buf
	b.start = 0
}
