package pixel

// Buffer is a fixed-length run of triplets in strip order.
//
// Writes outside [0, Len()) are dropped without notice. The buffer has no locking; callers must not write
// to it while a frame is being transmitted from it.
type Buffer struct {
	pixels []RGB
}

// NewBuffer allocates a buffer of n black pixels. The length never changes afterwards.
func NewBuffer(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	return &Buffer{pixels: make([]RGB, n)}
}

// Len is the number of pixels.
func (buf *Buffer) Len() int {
	return len(buf.pixels)
}

// Set overwrites the pixel at pos.
func (buf *Buffer) Set(pos int, c RGB) {
	if pos < 0 || pos >= len(buf.pixels) {
		return
	}
	buf.pixels[pos] = c
}

func (buf *Buffer) SetRGB(pos int, r, g, b uint8) {
	buf.Set(pos, RGB{R: r, G: g, B: b})
}

// SetHSV converts h, s and v with HSV and stores the result at pos.
func (buf *Buffer) SetHSV(pos int, h uint16, s, v uint8) {
	buf.Set(pos, HSV(h, s, v))
}

// Fill sets every pixel to c.
func (buf *Buffer) Fill(c RGB) {
	for i := range buf.pixels {
		buf.pixels[i] = c
	}
}

// At returns the pixel at pos, or Black when pos is out of range.
func (buf *Buffer) At(pos int) RGB {
	if pos < 0 || pos >= len(buf.pixels) {
		return Black
	}
	return buf.pixels[pos]
}
