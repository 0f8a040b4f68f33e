package nbt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeMString_Deviations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"nul is overlong pair", "\x00", []byte{0xC0, 0x80}},
		{"supplementary is surrogate pair", "\U00010401", []byte{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x81}},
		{"ascii unchanged", "Bananrama", []byte("Bananrama")},
		{"two byte", "é", []byte{0xC3, 0xA9}},
		{"three byte", "€", []byte{0xE2, 0x82, 0xAC}},
		{"embedded nul", "a\x00b", []byte{'a', 0xC0, 0x80, 'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeMString(tt.in)
			if !bytes.Equal(got.Bytes(), tt.want) {
				t.Errorf("EncodeMString(%q) = % x, want % x", tt.in, got.Bytes(), tt.want)
			}
		})
	}
}

func TestMString_DecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"\x00",
		"a\x00b",
		"\U00010401",
		"café €100 \U0001F600",
		"ࠀ�",
	}
	for _, in := range inputs {
		got, err := EncodeMString(in).Decode()
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", in, err)
		}
		if got != in {
			t.Errorf("round trip of %q gave %q", in, got)
		}
	}
}

func TestMString_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"stray continuation", []byte{0x80}},
		{"truncated two byte", []byte{0xC3}},
		{"truncated three byte", []byte{0xE2, 0x82}},
		{"four byte form", []byte{0xF0, 0x90, 0x90, 0x81}},
		{"unpaired high surrogate", []byte{0xED, 0xA0, 0x81}},
		{"high surrogate then ascii", []byte{0xED, 0xA0, 0x81, 'x', 'y', 'z'}},
		{"low surrogate first", []byte{0xED, 0xB0, 0x81, 0xED, 0xA0, 0x81}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MString(tt.in).Decode(); !errors.Is(err, ErrMalformedString) {
				t.Errorf("Decode(% x) err = %v, want ErrMalformedString", tt.in, err)
			}
		})
	}
}

func TestDecodeMUTF8_RejectsStandaloneNul(t *testing.T) {
	// the full grammar never sees a zero byte outside the 0xC0 0x80
	// pair; standalone NULs only pass through the ASCII fast path
	for _, in := range [][]byte{{0x00}, {'a', 0x00, 0xC3, 0xA9}} {
		if _, err := decodeMUTF8(in); !errors.Is(err, ErrMalformedString) {
			t.Errorf("decodeMUTF8(% x) err = %v, want ErrMalformedString", in, err)
		}
	}
}

func TestMString_StringNeverFails(t *testing.T) {
	// malformed bytes still produce a diagnostic string
	m := MString([]byte{0xED, 0xA0, 0x81})
	if got := m.String(); got == "" {
		t.Error("lossy String() of malformed bytes returned empty")
	}
	if got := MString([]byte("plain")).String(); got != "plain" {
		t.Errorf("String() = %q, want %q", got, "plain")
	}
}

func TestMString_Clone(t *testing.T) {
	src := []byte("shared buffer")
	m := MString(src[:6])
	c := m.Clone()
	src[0] = 'X'
	if c.String() != "shared" {
		t.Errorf("Clone aliases source: %q", c.String())
	}
	if m.String() != "Xhared" {
		t.Errorf("view should alias source: %q", m.String())
	}
}

func TestIsPlainASCII(t *testing.T) {
	// exercise every chunk width and the scalar remainder
	for _, n := range []int{0, 1, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 100} {
		in := []byte(strings.Repeat("a", n))
		if !isPlainASCII(in) {
			t.Errorf("len %d: all-ASCII reported non-ASCII", n)
		}
		for i := 0; i < n; i++ {
			bad := append([]byte(nil), in...)
			bad[i] = 0xC3
			if isPlainASCII(bad) {
				t.Errorf("len %d: high bit at %d missed", n, i)
			}
		}
	}
}
