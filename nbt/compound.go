package nbt

// compoundEntry is one (name, value) pair. The name is a view into the
// input buffer.
type compoundEntry struct {
	name MString
	tag  Tag
}

// CompoundTag is an ordered collection of named tags, terminated on the
// wire by an end byte. Encounter order is preserved so re-serialization
// is byte-identical, including when names repeat; lookups return the
// first match. The decoder never requires names to be unique.
type CompoundTag struct {
	entries []compoundEntry
}

// parseCompound reads (type, name, payload) triplets until the end
// sentinel. depth is this compound's own nesting level; the counter is
// shared with list parsing so alternating nesting hits the same bound.
func parseCompound(c *cursor, depth int) (*CompoundTag, error) {
	if depth >= MaxDepth {
		return nil, ErrMaxDepth
	}
	ct := &CompoundTag{}
	for {
		id, err := c.readU8()
		if err != nil {
			return nil, err
		}
		if TagID(id) == TagEnd {
			return ct, nil
		}
		name, err := c.readString()
		if err != nil {
			return nil, err
		}
		tag, err := parseTag(c, TagID(id), depth)
		if err != nil {
			return nil, err
		}
		ct.entries = append(ct.entries, compoundEntry{name: name, tag: tag})
	}
}

// appendCompound emits each pair in stored order, then the end byte.
// This is the exact inverse of parseCompound for any parsed input.
func appendCompound(dst []byte, ct *CompoundTag) []byte {
	for i := range ct.entries {
		e := &ct.entries[i]
		dst = append(dst, byte(e.tag.id))
		dst = appendString(dst, e.name)
		dst = appendTag(dst, &e.tag)
	}
	return append(dst, byte(TagEnd))
}

// Len returns the number of pairs, counting duplicates.
func (ct *CompoundTag) Len() int { return len(ct.entries) }

// At returns the i-th pair in encounter order.
func (ct *CompoundTag) At(i int) (MString, Tag) {
	e := &ct.entries[i]
	return e.name, e.tag
}

// Get returns the first tag stored under name. Absence is a normal
// outcome for optional fields, reported through the second result.
func (ct *CompoundTag) Get(name string) (Tag, bool) {
	key := EncodeMString(name)
	for i := range ct.entries {
		if ct.entries[i].name.Equal(key) {
			return ct.entries[i].tag, true
		}
	}
	return Tag{}, false
}

// ============================================================
// Typed getters
// ============================================================
//
// Each returns false when the name is absent or the stored tag is a
// different type; there is no coercion.

// Byte returns the byte tag stored under name.
func (ct *CompoundTag) Byte(name string) (int8, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Byte()
}

// Short returns the short tag stored under name.
func (ct *CompoundTag) Short(name string) (int16, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Short()
}

// Int returns the int tag stored under name.
func (ct *CompoundTag) Int(name string) (int32, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Int()
}

// Long returns the long tag stored under name.
func (ct *CompoundTag) Long(name string) (int64, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Long()
}

// Float returns the float tag stored under name.
func (ct *CompoundTag) Float(name string) (float32, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Float()
}

// Double returns the double tag stored under name.
func (ct *CompoundTag) Double(name string) (float64, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return 0, false
	}
	return t.Double()
}

// ByteArray returns the byte array tag stored under name.
func (ct *CompoundTag) ByteArray(name string) ([]byte, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return nil, false
	}
	return t.ByteArray()
}

// Str returns the string tag stored under name.
func (ct *CompoundTag) Str(name string) (MString, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return nil, false
	}
	return t.Str()
}

// List returns the list tag stored under name.
func (ct *CompoundTag) List(name string) (*ListTag, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return nil, false
	}
	return t.List()
}

// Compound returns the compound tag stored under name.
func (ct *CompoundTag) Compound(name string) (*CompoundTag, bool) {
	t, ok := ct.Get(name)
	if !ok {
		return nil, false
	}
	return t.Compound()
}

// IntArray returns the int array tag stored under name.
func (ct *CompoundTag) IntArray(name string) (RawList[int32], bool) {
	t, ok := ct.Get(name)
	if !ok {
		return RawList[int32]{}, false
	}
	return t.IntArray()
}

// LongArray returns the long array tag stored under name.
func (ct *CompoundTag) LongArray(name string) (RawList[int64], bool) {
	t, ok := ct.Get(name)
	if !ok {
		return RawList[int64]{}, false
	}
	return t.LongArray()
}
