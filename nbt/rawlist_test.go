package nbt

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func packInts(vals ...int32) []byte {
	var out []byte
	for _, v := range vals {
		out = binary.BigEndian.AppendUint32(out, uint32(v))
	}
	return out
}

func packLongs(vals ...int64) []byte {
	var out []byte
	for _, v := range vals {
		out = binary.BigEndian.AppendUint64(out, uint64(v))
	}
	return out
}

func TestRawList_Get(t *testing.T) {
	rl, err := newRawList[int32](packInts(1, -2, 300), 3)
	if err != nil {
		t.Fatalf("newRawList failed: %v", err)
	}
	if rl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rl.Len())
	}
	for i, want := range []int32{1, -2, 300} {
		got, ok := rl.Get(i)
		if !ok || got != want {
			t.Errorf("Get(%d) = %d, %v; want %d, true", i, got, ok, want)
		}
	}
	if _, ok := rl.Get(3); ok {
		t.Error("Get(3) out of range should be absent")
	}
	if _, ok := rl.Get(-1); ok {
		t.Error("Get(-1) should be absent")
	}
}

func TestRawList_Slice(t *testing.T) {
	rl, err := newRawList[int64](packLongs(1<<40, -9, 0), 3)
	if err != nil {
		t.Fatalf("newRawList failed: %v", err)
	}
	if diff := cmp.Diff([]int64{1 << 40, -9, 0}, rl.Slice()); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
}

func TestRawList_ShortBuffer(t *testing.T) {
	if _, err := newRawList[int32](make([]byte, 11), 3); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("err = %v, want ErrUnexpectedEnd", err)
	}
	if _, err := newRawList[int64](nil, 1); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("err = %v, want ErrUnexpectedEnd", err)
	}
	if _, err := newRawList[int32](nil, -1); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("negative count err = %v, want ErrUnexpectedEnd", err)
	}
}

func TestRawList_TrailingBytesIgnored(t *testing.T) {
	// view over the front of a larger run
	rl, err := newRawList[int32](packInts(7, 8, 9), 2)
	if err != nil {
		t.Fatalf("newRawList failed: %v", err)
	}
	if rl.Len() != 2 {
		t.Errorf("Len = %d, want 2", rl.Len())
	}
	if v, _ := rl.Get(1); v != 8 {
		t.Errorf("Get(1) = %d, want 8", v)
	}
}
