package nbt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestReadCompressed_Gzip(t *testing.T) {
	in := kitchenSinkDoc()
	doc, err := Read(in)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteGzip(&buf, doc); err != nil {
		t.Fatalf("WriteGzip failed: %v", err)
	}
	back, err := ReadCompressed(&buf)
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}
	if out := Write(nil, back); !bytes.Equal(out, in) {
		t.Error("gzip round trip not byte-identical")
	}
}

func TestReadCompressed_Zlib(t *testing.T) {
	in := intListDoc(100)
	doc, err := Read(in)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteZlib(&buf, doc); err != nil {
		t.Fatalf("WriteZlib failed: %v", err)
	}
	back, err := ReadCompressed(&buf)
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}
	if out := Write(nil, back); !bytes.Equal(out, in) {
		t.Error("zlib round trip not byte-identical")
	}
}

func TestReadCompressed_Raw(t *testing.T) {
	in := kitchenSinkDoc()
	doc, err := ReadCompressed(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}
	if _, ok := doc.Int("i"); !ok {
		t.Error("raw passthrough lost fields")
	}
}

func TestReadCompressed_Absent(t *testing.T) {
	doc, err := ReadCompressed(bytes.NewReader([]byte{0x00}))
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}
	if doc != nil {
		t.Error("single end byte should be the absent document")
	}
}

func TestReadCompressed_SizeLimit(t *testing.T) {
	// a tiny zlib stream expanding past the cap must be rejected
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(strings.Repeat("x", 4096))); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	if _, err := ReadCompressed(&buf, WithMaxSize(1024)); err == nil {
		t.Error("expected size-limit error")
	}
}
