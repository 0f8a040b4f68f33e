package nbt

import (
	"encoding/binary"
	"math"
)

// cursor is a bounds-checked big-endian reader over the input buffer.
// Every read either advances past the bytes it consumed or fails with
// ErrUnexpectedEnd; it never reads past the end.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

// take returns the next n bytes as a subslice of the buffer, no copy.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrUnexpectedEnd
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readU8() (byte, error) {
	if c.remaining() < 1 {
		return 0, ErrUnexpectedEnd
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readU16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, ErrUnexpectedEnd
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readI16() (int16, error) {
	v, err := c.readU16()
	return int16(v), err
}

func (c *cursor) readI32() (int32, error) {
	if c.remaining() < 4 {
		return 0, ErrUnexpectedEnd
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return int32(v), nil
}

func (c *cursor) readI64() (int64, error) {
	if c.remaining() < 8 {
		return 0, ErrUnexpectedEnd
	}
	v := binary.BigEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return int64(v), nil
}

func (c *cursor) readF32() (float32, error) {
	v, err := c.readI32()
	return math.Float32frombits(uint32(v)), err
}

func (c *cursor) readF64() (float64, error) {
	v, err := c.readI64()
	return math.Float64frombits(uint64(v)), err
}

// readString reads a length-prefixed modified UTF-8 string as a view
// into the buffer.
func (c *cursor) readString() (MString, error) {
	n, err := c.readU16()
	if err != nil {
		return nil, err
	}
	b, err := c.take(int(n))
	if err != nil {
		return nil, err
	}
	return MString(b), nil
}

// Writer side: append-based helpers mirroring the reader exactly.

func appendU16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

func appendI32(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

func appendI64(dst []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(v))
}

func appendString(dst []byte, s MString) []byte {
	dst = appendU16(dst, uint16(len(s)))
	return append(dst, s...)
}
