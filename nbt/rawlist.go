package nbt

import (
	"encoding/binary"
	"unsafe"
)

// RawList is a zero-copy view over a run of packed big-endian values
// embedded in the input buffer. Elements are converted to native form
// lazily, one at a time, on access; nothing is decoded up front.
//
// The view is read-only and aliases the input buffer, so it is only
// valid while that buffer is. Slice materializes an independent copy.
type RawList[T int32 | int64] struct {
	data []byte
}

// newRawList wraps count elements at the front of data. It fails with
// ErrUnexpectedEnd when data cannot hold that many elements.
func newRawList[T int32 | int64](data []byte, count int) (RawList[T], error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	// compare without multiplying so forged counts cannot overflow
	if count < 0 || count > len(data)/width {
		return RawList[T]{}, ErrUnexpectedEnd
	}
	return RawList[T]{data: data[:count*width]}, nil
}

// Len returns the number of elements.
func (r RawList[T]) Len() int {
	var zero T
	return len(r.data) / int(unsafe.Sizeof(zero))
}

// Get returns the i-th element converted to native form. The second
// result is false when i is out of range.
func (r RawList[T]) Get(i int) (T, bool) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if i < 0 || (i+1)*width > len(r.data) {
		return zero, false
	}
	if width == 4 {
		return T(int32(binary.BigEndian.Uint32(r.data[i*4:]))), true
	}
	return T(int64(binary.BigEndian.Uint64(r.data[i*8:]))), true
}

// Slice eagerly converts every element into a freshly allocated native
// slice, independent of the source buffer. It cannot fail: the byte
// length was validated at construction and conversion is a pure swap.
func (r RawList[T]) Slice() []T {
	n := r.Len()
	out := make([]T, n)
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		for i := 0; i < n; i++ {
			out[i] = T(int32(binary.BigEndian.Uint32(r.data[i*4:])))
		}
	} else {
		for i := 0; i < n; i++ {
			out[i] = T(int64(binary.BigEndian.Uint64(r.data[i*8:])))
		}
	}
	return out
}

// Equal reports whether two views contain identical bytes.
func (r RawList[T]) Equal(o RawList[T]) bool {
	return string(r.data) == string(o.data)
}
