// Package scratch formats short per-frame strings into one reusable buffer.
package scratch

import (
	"strconv"
	"time"
	"unicode/utf8"
	"unsafe"
)

// Buffer is a single-threaded append buffer. Reset it once per frame; the
// strings it hands out stay valid until then.
type Buffer struct {
	buf []byte
}

// New allocates a buffer with the given capacity (1 KiB when not positive).
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Grow makes room for n more bytes, doubling when it has to allocate.
func (b *Buffer) Grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	nb := make([]byte, len(b.buf), max(2*cap(b.buf), len(b.buf)+n))
	copy(nb, b.buf)
	b.buf = nb
}

// Mark bookmarks the current end for a later View or String.
func (b *Buffer) Mark() int { return len(b.buf) }

// View returns the bytes written since mark as a string without copying.
// Growth reallocates rather than overwriting, so a view outlives later
// appends; only Reset invalidates it.
func (b *Buffer) View(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// String copies the bytes written since mark.
func (b *Buffer) String(mark int) string { return string(b.buf[mark:]) }

// Appenders, chainable.

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Ms appends d in milliseconds with two decimals, e.g. "16.67ms".
func (b *Buffer) Ms(d time.Duration) *Buffer {
	return b.F(float64(d)/float64(time.Millisecond), 2).S("ms")
}

// Bytes appends n scaled to KiB/MiB/GiB with one decimal.
func (b *Buffer) Bytes(n uint64) *Buffer {
	const unit = 1024
	if n < unit {
		return b.U(n).S(" B")
	}
	v, suffix := float64(n)/unit, "KMGT"
	i := 0
	for v >= unit && i < len(suffix)-1 {
		v /= unit
		i++
	}
	return b.F(v, 1).C(' ').C(suffix[i]).S("iB")
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	if n <= 0 {
		return b
	}
	b.Grow(n)
	for range n {
		b.buf = append(b.buf, c)
	}
	return b
}
