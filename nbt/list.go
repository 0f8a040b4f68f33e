package nbt

import "math"

// ListTag is a homogeneous, counted sequence of untagged values. The
// declared element type is kept verbatim, including for empty lists, so
// re-serialization reproduces the input exactly.
//
// Int and long element payloads are held as zero-copy RawList views
// rather than decoded element-by-element; byte payloads are a direct
// subslice of the input.
type ListTag struct {
	elem TagID

	bytes      []byte
	shorts     []int16
	ints       RawList[int32]
	longs      RawList[int64]
	floats     []float32
	doubles    []float64
	byteArrays [][]byte
	strings    []MString
	lists      []ListTag
	compounds  []CompoundTag
	intArrays  []RawList[int32]
	longArrays []RawList[int64]
}

// minimum encoded size per element, used to reject forged counts before
// any allocation. Variable-width elements use their smallest possible
// encoding.
func minElemSize(id TagID) int {
	switch id {
	case TagByte, TagCompound:
		return 1 // a compound is at least its end byte
	case TagShort, TagString:
		return 2 // a string is at least its u16 length
	case TagInt, TagFloat, TagByteArray, TagIntArray, TagLongArray:
		return 4 // arrays are at least their i32 count
	case TagLong, TagDouble:
		return 8
	case TagList:
		return 5 // element type byte plus i32 count
	default:
		return 1
	}
}

// parseList reads a list payload: element type byte, i32 count, then
// count untagged payloads. depth is this list's own nesting level.
func parseList(c *cursor, depth int) (*ListTag, error) {
	if depth >= MaxDepth {
		return nil, ErrMaxDepth
	}
	id, err := c.readU8()
	if err != nil {
		return nil, err
	}
	elem := TagID(id)
	if elem > TagLongArray {
		return nil, &InvalidTagTypeError{ID: id}
	}
	count, err := c.readI32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrUnexpectedEnd
	}
	if count == 0 {
		// keep the declared element type verbatim, whatever it was
		return &ListTag{elem: elem}, nil
	}
	if elem == TagEnd {
		return nil, ErrInvalidListType
	}
	n := int(count)
	if n > c.remaining()/minElemSize(elem) {
		return nil, ErrUnexpectedEnd
	}

	l := &ListTag{elem: elem}
	switch elem {
	case TagByte:
		l.bytes, err = c.take(n)
		if err != nil {
			return nil, err
		}
	case TagShort:
		l.shorts = make([]int16, n)
		for i := range l.shorts {
			if l.shorts[i], err = c.readI16(); err != nil {
				return nil, err
			}
		}
	case TagInt:
		b, err := c.take(n * 4)
		if err != nil {
			return nil, err
		}
		if l.ints, err = newRawList[int32](b, n); err != nil {
			return nil, err
		}
	case TagLong:
		b, err := c.take(n * 8)
		if err != nil {
			return nil, err
		}
		if l.longs, err = newRawList[int64](b, n); err != nil {
			return nil, err
		}
	case TagFloat:
		l.floats = make([]float32, n)
		for i := range l.floats {
			if l.floats[i], err = c.readF32(); err != nil {
				return nil, err
			}
		}
	case TagDouble:
		l.doubles = make([]float64, n)
		for i := range l.doubles {
			if l.doubles[i], err = c.readF64(); err != nil {
				return nil, err
			}
		}
	case TagByteArray:
		l.byteArrays = make([][]byte, 0, n)
		for i := 0; i < n; i++ {
			b, err := readCounted(c, 1)
			if err != nil {
				return nil, err
			}
			l.byteArrays = append(l.byteArrays, b)
		}
	case TagString:
		l.strings = make([]MString, 0, n)
		for i := 0; i < n; i++ {
			s, err := c.readString()
			if err != nil {
				return nil, err
			}
			l.strings = append(l.strings, s)
		}
	case TagList:
		l.lists = make([]ListTag, 0, n)
		for i := 0; i < n; i++ {
			nested, err := parseList(c, depth+1)
			if err != nil {
				return nil, err
			}
			l.lists = append(l.lists, *nested)
		}
	case TagCompound:
		l.compounds = make([]CompoundTag, 0, n)
		for i := 0; i < n; i++ {
			ct, err := parseCompound(c, depth+1)
			if err != nil {
				return nil, err
			}
			l.compounds = append(l.compounds, *ct)
		}
	case TagIntArray:
		l.intArrays = make([]RawList[int32], 0, n)
		for i := 0; i < n; i++ {
			b, err := readCounted(c, 4)
			if err != nil {
				return nil, err
			}
			l.intArrays = append(l.intArrays, RawList[int32]{data: b})
		}
	case TagLongArray:
		l.longArrays = make([]RawList[int64], 0, n)
		for i := 0; i < n; i++ {
			b, err := readCounted(c, 8)
			if err != nil {
				return nil, err
			}
			l.longArrays = append(l.longArrays, RawList[int64]{data: b})
		}
	}
	return l, nil
}

// appendList emits the element type byte, i32 count, then each element's
// raw payload with no per-element type byte.
func appendList(dst []byte, l *ListTag) []byte {
	dst = append(dst, byte(l.elem))
	dst = appendI32(dst, int32(l.Len()))
	switch l.elem {
	case TagByte:
		dst = append(dst, l.bytes...)
	case TagShort:
		for _, v := range l.shorts {
			dst = appendU16(dst, uint16(v))
		}
	case TagInt:
		dst = append(dst, l.ints.data...)
	case TagLong:
		dst = append(dst, l.longs.data...)
	case TagFloat:
		for _, v := range l.floats {
			dst = appendI32(dst, int32(math.Float32bits(v)))
		}
	case TagDouble:
		for _, v := range l.doubles {
			dst = appendI64(dst, int64(math.Float64bits(v)))
		}
	case TagByteArray:
		for _, b := range l.byteArrays {
			dst = appendI32(dst, int32(len(b)))
			dst = append(dst, b...)
		}
	case TagString:
		for _, s := range l.strings {
			dst = appendString(dst, s)
		}
	case TagList:
		for i := range l.lists {
			dst = appendList(dst, &l.lists[i])
		}
	case TagCompound:
		for i := range l.compounds {
			dst = appendCompound(dst, &l.compounds[i])
		}
	case TagIntArray:
		for _, a := range l.intArrays {
			dst = appendI32(dst, int32(a.Len()))
			dst = append(dst, a.data...)
		}
	case TagLongArray:
		for _, a := range l.longArrays {
			dst = appendI32(dst, int32(a.Len()))
			dst = append(dst, a.data...)
		}
	}
	return dst
}

// ElementType returns the declared element type. For lists parsed from
// the wire this is the byte the stream declared, even when the list is
// empty.
func (l *ListTag) ElementType() TagID { return l.elem }

// Len returns the number of elements.
func (l *ListTag) Len() int {
	switch l.elem {
	case TagByte:
		return len(l.bytes)
	case TagShort:
		return len(l.shorts)
	case TagInt:
		return l.ints.Len()
	case TagLong:
		return l.longs.Len()
	case TagFloat:
		return len(l.floats)
	case TagDouble:
		return len(l.doubles)
	case TagByteArray:
		return len(l.byteArrays)
	case TagString:
		return len(l.strings)
	case TagList:
		return len(l.lists)
	case TagCompound:
		return len(l.compounds)
	case TagIntArray:
		return len(l.intArrays)
	case TagLongArray:
		return len(l.longArrays)
	}
	return 0
}

// ============================================================
// Typed accessors
// ============================================================
//
// Each returns false when the list's element type does not match. An
// empty list matches only its declared type, like any other list.

// Bytes returns the byte elements as a view into the input buffer.
func (l *ListTag) Bytes() ([]byte, bool) {
	if l.elem != TagByte {
		return nil, false
	}
	return l.bytes, true
}

// Shorts returns the short elements.
func (l *ListTag) Shorts() ([]int16, bool) {
	if l.elem != TagShort {
		return nil, false
	}
	return l.shorts, true
}

// Ints returns the int elements as a zero-copy view.
func (l *ListTag) Ints() (RawList[int32], bool) {
	if l.elem != TagInt {
		return RawList[int32]{}, false
	}
	return l.ints, true
}

// Longs returns the long elements as a zero-copy view.
func (l *ListTag) Longs() (RawList[int64], bool) {
	if l.elem != TagLong {
		return RawList[int64]{}, false
	}
	return l.longs, true
}

// Floats returns the float elements.
func (l *ListTag) Floats() ([]float32, bool) {
	if l.elem != TagFloat {
		return nil, false
	}
	return l.floats, true
}

// Doubles returns the double elements.
func (l *ListTag) Doubles() ([]float64, bool) {
	if l.elem != TagDouble {
		return nil, false
	}
	return l.doubles, true
}

// ByteArrays returns the byte array elements, each a view into the
// input buffer.
func (l *ListTag) ByteArrays() ([][]byte, bool) {
	if l.elem != TagByteArray {
		return nil, false
	}
	return l.byteArrays, true
}

// Strings returns the string elements.
func (l *ListTag) Strings() ([]MString, bool) {
	if l.elem != TagString {
		return nil, false
	}
	return l.strings, true
}

// Lists returns the nested list elements.
func (l *ListTag) Lists() ([]ListTag, bool) {
	if l.elem != TagList {
		return nil, false
	}
	return l.lists, true
}

// Compounds returns the compound elements.
func (l *ListTag) Compounds() ([]CompoundTag, bool) {
	if l.elem != TagCompound {
		return nil, false
	}
	return l.compounds, true
}

// IntArrays returns the int array elements.
func (l *ListTag) IntArrays() ([]RawList[int32], bool) {
	if l.elem != TagIntArray {
		return nil, false
	}
	return l.intArrays, true
}

// LongArrays returns the long array elements.
func (l *ListTag) LongArrays() ([]RawList[int64], bool) {
	if l.elem != TagLongArray {
		return nil, false
	}
	return l.longArrays, true
}
