package nbt

import (
	"fmt"
	"math"
)

// TagID identifies a tag's type. It is the discriminant byte as written
// on the wire; TagEnd is the structural terminator and never a value.
type TagID uint8

const (
	TagEnd TagID = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// String returns the tag type name.
func (id TagID) String() string {
	switch id {
	case TagEnd:
		return "end"
	case TagByte:
		return "byte"
	case TagShort:
		return "short"
	case TagInt:
		return "int"
	case TagLong:
		return "long"
	case TagFloat:
		return "float"
	case TagDouble:
		return "double"
	case TagByteArray:
		return "byte_array"
	case TagString:
		return "string"
	case TagList:
		return "list"
	case TagCompound:
		return "compound"
	case TagIntArray:
		return "int_array"
	case TagLongArray:
		return "long_array"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(id))
	}
}

// Tag is a single NBT value. The discriminant is stored once at
// construction so hot-path dispatch during lookups and re-serialization
// is a plain field read, never a full type switch.
//
// Scalar payloads live in num as raw bits; string, array, and container
// payloads each have their own field. Array payloads alias the input
// buffer.
type Tag struct {
	id TagID

	num  uint64  // scalar bits (byte/short/int/long/float/double)
	str  MString // string
	raw  []byte  // byte array, or packed int/long array bytes
	list *ListTag
	comp *CompoundTag
}

// ============================================================
// Constructors
// ============================================================

// Byte creates a byte tag.
func Byte(v int8) Tag { return Tag{id: TagByte, num: uint64(uint8(v))} }

// Short creates a short tag.
func Short(v int16) Tag { return Tag{id: TagShort, num: uint64(uint16(v))} }

// Int creates an int tag.
func Int(v int32) Tag { return Tag{id: TagInt, num: uint64(uint32(v))} }

// Long creates a long tag.
func Long(v int64) Tag { return Tag{id: TagLong, num: uint64(v)} }

// Float creates a float tag.
func Float(v float32) Tag { return Tag{id: TagFloat, num: uint64(math.Float32bits(v))} }

// Double creates a double tag.
func Double(v float64) Tag { return Tag{id: TagDouble, num: math.Float64bits(v)} }

// ByteArray creates a byte array tag. The slice is not copied.
func ByteArray(v []byte) Tag { return Tag{id: TagByteArray, raw: v} }

// Str creates a string tag.
func Str(v MString) Tag { return Tag{id: TagString, str: v} }

// List creates a list tag.
func List(v *ListTag) Tag { return Tag{id: TagList, list: v} }

// Compound creates a compound tag.
func Compound(v *CompoundTag) Tag { return Tag{id: TagCompound, comp: v} }

// IntArray creates an int array tag over the view's packed bytes.
func IntArray(v RawList[int32]) Tag { return Tag{id: TagIntArray, raw: v.data} }

// LongArray creates a long array tag over the view's packed bytes.
func LongArray(v RawList[int64]) Tag { return Tag{id: TagLongArray, raw: v.data} }

// ============================================================
// Accessors
// ============================================================

// ID returns the tag's type discriminant.
func (t *Tag) ID() TagID { return t.id }

// Byte returns the byte value; false if the tag is any other type.
// No accessor coerces between types: asking a float tag for its int
// value is absence, not a cast.
func (t *Tag) Byte() (int8, bool) {
	if t.id != TagByte {
		return 0, false
	}
	return int8(t.num), true
}

// Short returns the short value; false if the tag is any other type.
func (t *Tag) Short() (int16, bool) {
	if t.id != TagShort {
		return 0, false
	}
	return int16(t.num), true
}

// Int returns the int value; false if the tag is any other type.
func (t *Tag) Int() (int32, bool) {
	if t.id != TagInt {
		return 0, false
	}
	return int32(t.num), true
}

// Long returns the long value; false if the tag is any other type.
func (t *Tag) Long() (int64, bool) {
	if t.id != TagLong {
		return 0, false
	}
	return int64(t.num), true
}

// Float returns the float value; false if the tag is any other type.
func (t *Tag) Float() (float32, bool) {
	if t.id != TagFloat {
		return 0, false
	}
	return math.Float32frombits(uint32(t.num)), true
}

// Double returns the double value; false if the tag is any other type.
func (t *Tag) Double() (float64, bool) {
	if t.id != TagDouble {
		return 0, false
	}
	return math.Float64frombits(t.num), true
}

// ByteArray returns the byte array view; false if the tag is any other
// type.
func (t *Tag) ByteArray() ([]byte, bool) {
	if t.id != TagByteArray {
		return nil, false
	}
	return t.raw, true
}

// Str returns the string view; false if the tag is any other type.
func (t *Tag) Str() (MString, bool) {
	if t.id != TagString {
		return nil, false
	}
	return t.str, true
}

// List returns the list; false if the tag is any other type.
func (t *Tag) List() (*ListTag, bool) {
	if t.id != TagList {
		return nil, false
	}
	return t.list, true
}

// Compound returns the compound; false if the tag is any other type.
func (t *Tag) Compound() (*CompoundTag, bool) {
	if t.id != TagCompound {
		return nil, false
	}
	return t.comp, true
}

// IntArray returns the int array view; false if the tag is any other
// type.
func (t *Tag) IntArray() (RawList[int32], bool) {
	if t.id != TagIntArray {
		return RawList[int32]{}, false
	}
	return RawList[int32]{data: t.raw}, true
}

// LongArray returns the long array view; false if the tag is any other
// type.
func (t *Tag) LongArray() (RawList[int64], bool) {
	if t.id != TagLongArray {
		return RawList[int64]{}, false
	}
	return RawList[int64]{data: t.raw}, true
}

// parseTag reads the payload for a tag whose discriminant byte has
// already been consumed. depth is the current container nesting level.
func parseTag(c *cursor, id TagID, depth int) (Tag, error) {
	switch id {
	case TagByte:
		v, err := c.readU8()
		return Tag{id: TagByte, num: uint64(v)}, err
	case TagShort:
		v, err := c.readU16()
		return Tag{id: TagShort, num: uint64(v)}, err
	case TagInt:
		v, err := c.readI32()
		return Tag{id: TagInt, num: uint64(uint32(v))}, err
	case TagLong:
		v, err := c.readI64()
		return Tag{id: TagLong, num: uint64(v)}, err
	case TagFloat:
		v, err := c.readI32()
		return Tag{id: TagFloat, num: uint64(uint32(v))}, err
	case TagDouble:
		v, err := c.readI64()
		return Tag{id: TagDouble, num: uint64(v)}, err
	case TagByteArray:
		b, err := readCounted(c, 1)
		return Tag{id: TagByteArray, raw: b}, err
	case TagString:
		s, err := c.readString()
		return Tag{id: TagString, str: s}, err
	case TagList:
		l, err := parseList(c, depth+1)
		if err != nil {
			return Tag{}, err
		}
		return Tag{id: TagList, list: l}, nil
	case TagCompound:
		ct, err := parseCompound(c, depth+1)
		if err != nil {
			return Tag{}, err
		}
		return Tag{id: TagCompound, comp: ct}, nil
	case TagIntArray:
		b, err := readCounted(c, 4)
		return Tag{id: TagIntArray, raw: b}, err
	case TagLongArray:
		b, err := readCounted(c, 8)
		return Tag{id: TagLongArray, raw: b}, err
	default:
		return Tag{}, &InvalidTagTypeError{ID: byte(id)}
	}
}

// readCounted reads an i32 element count followed by count*width raw
// bytes, validating the count against the remaining buffer before
// trusting it.
func readCounted(c *cursor, width int) ([]byte, error) {
	n, err := c.readI32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > c.remaining()/width {
		return nil, ErrUnexpectedEnd
	}
	return c.take(int(n) * width)
}

// appendTag emits a tag's payload (not its discriminant byte, which the
// enclosing compound or root emits). It is the exact inverse of parseTag
// for any tag a successful parse produced.
func appendTag(dst []byte, t *Tag) []byte {
	switch t.id {
	case TagByte:
		return append(dst, byte(t.num))
	case TagShort:
		return appendU16(dst, uint16(t.num))
	case TagInt, TagFloat:
		return appendI32(dst, int32(uint32(t.num)))
	case TagLong, TagDouble:
		return appendI64(dst, int64(t.num))
	case TagByteArray:
		dst = appendI32(dst, int32(len(t.raw)))
		return append(dst, t.raw...)
	case TagString:
		return appendString(dst, t.str)
	case TagList:
		return appendList(dst, t.list)
	case TagCompound:
		return appendCompound(dst, t.comp)
	case TagIntArray:
		dst = appendI32(dst, int32(len(t.raw)/4))
		return append(dst, t.raw...)
	case TagLongArray:
		dst = appendI32(dst, int32(len(t.raw)/8))
		return append(dst, t.raw...)
	}
	return dst
}
