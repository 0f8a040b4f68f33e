package nbt

// MaxDepth bounds nested compound/list recursion. One counter is
// threaded through the whole parse, so a deeply nested alternation of
// compounds and lists hits the same budget as either alone.
const MaxDepth = 512

// Nbt is a complete document: the root compound and its name. The
// compound is embedded, so its getters are available directly on the
// document.
type Nbt struct {
	name MString
	CompoundTag
}

// Read decodes a document from an already-decompressed buffer. All
// returned views alias data, which must stay valid and unmodified for
// as long as they are used.
//
// A buffer starting with the bare end sentinel is a valid, absent
// document: Read returns (nil, nil). Bytes past the end of the document
// are ignored.
func Read(data []byte) (*Nbt, error) {
	c := newCursor(data)
	rootType, err := c.readU8()
	if err != nil {
		return nil, err
	}
	if TagID(rootType) == TagEnd {
		return nil, nil
	}
	if TagID(rootType) != TagCompound {
		return nil, &InvalidRootTypeError{ID: rootType}
	}
	name, err := c.readString()
	if err != nil {
		return nil, err
	}
	ct, err := parseCompound(c, 0)
	if err != nil {
		return nil, err
	}
	return &Nbt{name: name, CompoundTag: *ct}, nil
}

// Write appends the encoded document to dst and returns the extended
// slice. A nil document is the absent case and encodes as the single
// end byte. Encoding never fails for a document a successful Read
// produced, and its output is byte-identical to the bytes Read
// consumed.
func Write(dst []byte, doc *Nbt) []byte {
	if doc == nil {
		return append(dst, byte(TagEnd))
	}
	return doc.AppendTo(dst)
}

// Name returns the root compound's name. It is often empty.
func (n *Nbt) Name() MString { return n.name }

// AppendTo appends the encoded document to dst.
func (n *Nbt) AppendTo(dst []byte) []byte {
	dst = append(dst, byte(TagCompound))
	dst = appendString(dst, n.name)
	return appendCompound(dst, &n.CompoundTag)
}
