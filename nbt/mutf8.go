package nbt

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// MString is a modified UTF-8 string as stored on the wire. It is how NBT
// represents all text: plain UTF-8 with two deviations, the NUL code point
// is encoded as the overlong pair 0xC0 0x80, and code points above U+FFFF
// are encoded as a UTF-16 surrogate pair of two 3-byte sequences.
//
// An MString produced by the decoder is a view into the input buffer; it
// must not be mutated, and it is only valid while that buffer is. Clone
// detaches it.
type MString []byte

// EncodeMString converts a Go string to its modified UTF-8 form.
// Plain ASCII input is reinterpreted without copying.
func EncodeMString(s string) MString {
	plain := true
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] >= 0x80 {
			plain = false
			break
		}
	}
	if plain {
		if len(s) == 0 {
			return nil
		}
		// ASCII bytes are identical in both encodings. MString is
		// never mutated, so aliasing the string data is safe.
		return unsafe.Slice(unsafe.StringData(s), len(s))
	}

	out := make(MString, 0, len(s)+4)
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, 0xC0|byte(r>>6), 0x80|byte(r)&0x3F)
		case r <= 0xFFFF:
			out = append(out, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
		default:
			hi, lo := utf16.EncodeRune(r)
			out = append(out,
				0xE0|byte(hi>>12), 0x80|byte(hi>>6)&0x3F, 0x80|byte(hi)&0x3F,
				0xE0|byte(lo>>12), 0x80|byte(lo>>6)&0x3F, 0x80|byte(lo)&0x3F)
		}
	}
	return out
}

// Bytes returns the raw encoded bytes.
func (m MString) Bytes() []byte { return m }

// Len returns the encoded length in bytes.
func (m MString) Len() int { return len(m) }

// Clone returns a copy that does not alias the source buffer.
func (m MString) Clone() MString {
	if m == nil {
		return nil
	}
	out := make(MString, len(m))
	copy(out, m)
	return out
}

// Equal reports whether two strings have identical encoded bytes.
func (m MString) Equal(o MString) bool {
	return string(m) == string(o)
}

// String converts to a Go string and never fails. Plain ASCII content is
// reinterpreted without copying or decode work; anything else goes
// through the full grammar, falling back to a raw byte reinterpretation
// if the content is not valid modified UTF-8. Use Decode when malformed
// input must be reported instead of tolerated.
func (m MString) String() string {
	if len(m) == 0 {
		return ""
	}
	if isPlainASCII(m) {
		return unsafe.String(unsafe.SliceData(m), len(m))
	}
	s, err := m.Decode()
	if err != nil {
		return string(m)
	}
	return s
}

// Decode converts to a Go string, failing with ErrMalformedString if the
// bytes are not valid modified UTF-8.
func (m MString) Decode() (string, error) {
	if isPlainASCII(m) {
		if len(m) == 0 {
			return "", nil
		}
		return unsafe.String(unsafe.SliceData(m), len(m)), nil
	}
	return decodeMUTF8(m)
}

// decodeMUTF8 runs the full modified UTF-8 grammar. Standalone zero
// bytes, 4-byte sequences, truncated sequences, and unpaired surrogates
// are all malformed.
func decodeMUTF8(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0:
			return "", ErrMalformedString
		case c < 0x80:
			sb.WriteByte(c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", ErrMalformedString
			}
			sb.WriteRune(rune(c&0x1F)<<6 | rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", ErrMalformedString
			}
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			i += 3
			if utf16.IsSurrogate(r) {
				// must be a high surrogate followed by an encoded low one
				if i+2 >= len(b) || b[i]&0xF0 != 0xE0 || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
					return "", ErrMalformedString
				}
				lo := rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
				full := utf16.DecodeRune(r, lo)
				if full == utf8.RuneError {
					return "", ErrMalformedString
				}
				sb.WriteRune(full)
				i += 3
			} else {
				sb.WriteRune(r)
			}
		default:
			// 0x80..0xBF stray continuation, or a 4-byte lead: modified
			// UTF-8 has neither.
			return "", ErrMalformedString
		}
	}
	return sb.String(), nil
}

const asciiHighBits = 0x8080808080808080

// isPlainASCII reports whether no byte has its high bit set. This runs
// once per string value touched, so it tests the buffer in wide chunks
// (32, 16, 8, 4 bytes, then a scalar remainder), short-circuiting on the
// first chunk that fails.
func isPlainASCII(b []byte) bool {
	for len(b) >= 32 {
		or := binary.LittleEndian.Uint64(b) |
			binary.LittleEndian.Uint64(b[8:]) |
			binary.LittleEndian.Uint64(b[16:]) |
			binary.LittleEndian.Uint64(b[24:])
		if or&asciiHighBits != 0 {
			return false
		}
		b = b[32:]
	}
	if len(b) >= 16 {
		or := binary.LittleEndian.Uint64(b) | binary.LittleEndian.Uint64(b[8:])
		if or&asciiHighBits != 0 {
			return false
		}
		b = b[16:]
	}
	if len(b) >= 8 {
		if binary.LittleEndian.Uint64(b)&asciiHighBits != 0 {
			return false
		}
		b = b[8:]
	}
	if len(b) >= 4 {
		if binary.LittleEndian.Uint32(b)&0x80808080 != 0 {
			return false
		}
		b = b[4:]
	}
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
