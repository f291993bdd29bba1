package vmath

// Bitmap is a square row-major mask
// The zero value is an empty 0x0 mask
type Bitmap struct {
	side int
	bits []bool
}

// NewCircleBitmap creates the filled circle mask of the given radius
func NewCircleBitmap(radius uint16) Bitmap {
	var b Bitmap
	b.Generate(radius)
	return b
}

// Generate rebuilds the mask as a filled circle, reusing capacity
func (b *Bitmap) Generate(radius uint16) {
	r := int(radius)
	b.resize(2*r + 1)
	rr := r * r
	for row := 0; row < b.side; row++ {
		dy := row - r
		for col := 0; col < b.side; col++ {
			dx := col - r
			b.bits[row*b.side+col] = dx*dx+dy*dy <= rr
		}
	}
}

func (b *Bitmap) resize(side int) {
	n := side * side
	if cap(b.bits) < n {
		b.bits = make([]bool, n)
	} else {
		b.bits = b.bits[:n]
	}
	b.side = side
}

// Side is the mask edge length in pixels
func (b *Bitmap) Side() int {
	return b.side
}

// At reports whether the pixel at col, row is set; out of range is unset
func (b *Bitmap) At(col, row int) bool {
	if col < 0 || row < 0 || col >= b.side || row >= b.side {
		return false
	}
	return b.bits[row*b.side+col]
}

// Set writes the pixel at col, row; out of range is ignored
func (b *Bitmap) Set(col, row int, v bool) {
	if col < 0 || row < 0 || col >= b.side || row >= b.side {
		return
	}
	b.bits[row*b.side+col] = v
}

// CopyFrom deep-copies src into b, reusing b's buffer when large enough
func (b *Bitmap) CopyFrom(src *Bitmap) {
	b.resize(src.side)
	copy(b.bits, src.bits)
}

// Clone returns an independent copy
func (b *Bitmap) Clone() Bitmap {
	var c Bitmap
	c.CopyFrom(b)
	return c
}

// Count returns the number of set pixels
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Empty reports whether no pixel is set
func (b *Bitmap) Empty() bool {
	for _, v := range b.bits {
		if v {
			return false
		}
	}
	return true
}
