// Package nbt implements a borrowed (zero-copy) codec for the NBT binary
// tag format.
//
// NBT is a self-describing, tree-structured format: a named root compound
// of typed key/value pairs, where values are scalars, byte strings,
// homogeneous lists, nested compounds, or packed numeric arrays. This
// package parses untrusted byte streams without copying payload data, and
// serializes the in-memory form back to the exact bytes it would accept.
//
// # Data Model
//
// Scalars: byte, short, int, long, float, double
// Text: modified UTF-8 strings (MString)
// Containers: list (homogeneous, untagged elements), compound (ordered
// named tags, end-terminated)
// Arrays: byte array, int array, long array (packed big-endian)
//
// # Wire Format
//
// Everything is big-endian.
//
//	Root:      [type:u8][name:MString][compound body]  or  [0x00] (absent)
//	Compound:  repeated [type:u8][name:MString][payload], then [0x00]
//	MString:   [len:u16][bytes:len]
//	List:      [elem:u8][count:i32][payloads...]
//	Arrays:    [count:i32][elements...]
//
// Tag IDs: end=0, byte=1, short=2, int=3, long=4, float=5, double=6,
// byte_array=7, string=8, list=9, compound=10, int_array=11,
// long_array=12.
//
// # Zero-Copy Borrowing
//
// Decoded strings, byte arrays, and int/long arrays are views into the
// input buffer. The buffer must stay valid and unmodified for as long as
// any decoded value derived from it is in use. Callers that need
// buffer-independent data materialize explicitly (MString.Clone,
// RawList.Slice).
//
// # Safety on Untrusted Input
//
// Declared lengths are validated against the remaining buffer before any
// allocation, so forged counts cannot drive unbounded memory use.
// Container recursion is bounded by a shared depth guard; exceeding it
// fails with ErrMaxDepth instead of exhausting the stack.
//
// # Example
//
//	doc, err := nbt.Read(buf)
//	if err != nil { ... }
//	if doc == nil { ... } // bare end sentinel: absent document
//	if hp, ok := doc.Float("foodExhaustionLevel"); ok { ... }
//	out := nbt.Write(nil, doc) // byte-identical to buf
package nbt
