package pipeline

import (
	"bytes"
	"testing"
)

func TestFlipBitTogglesOnlyTargetByte(t *testing.T) {
	src := bytes.Repeat([]byte{0x00}, 300)
	var dst bytes.Buffer

	if err := FlipBit(&dst, bytes.NewReader(src), 100); err != nil {
		t.Fatalf("FlipBit: %v", err)
	}

	got := dst.Bytes()
	if len(got) != len(src) {
		t.Fatalf("output length = %d, want %d", len(got), len(src))
	}
	for i, b := range got {
		want := byte(0x00)
		if i == 100 {
			want = 0x01
		}
		if b != want {
			t.Fatalf("byte %d = %#x, want %#x", i, b, want)
		}
	}
}

func TestFlipBitOffsetBeyondInputIsNoop(t *testing.T) {
	src := bytes.Repeat([]byte{0xAA}, 10)
	var dst bytes.Buffer

	if err := FlipBit(&dst, bytes.NewReader(src), 1000); err != nil {
		t.Fatalf("FlipBit: %v", err)
	}
	if !bytes.Equal(dst.Bytes(), src) {
		t.Fatalf("output modified despite out-of-range offset")
	}
}

func TestFlipBitSpansBufferBoundary(t *testing.T) {
	// generic.BlockSize is 255; pick an offset past the first buffer fill
	// to exercise the multi-Read accounting in FlipBit's pos counter.
	src := bytes.Repeat([]byte{0x00}, 600)
	var dst bytes.Buffer

	if err := FlipBit(&dst, bytes.NewReader(src), 400); err != nil {
		t.Fatalf("FlipBit: %v", err)
	}
	got := dst.Bytes()
	if got[400] != 0x01 {
		t.Fatalf("byte 400 = %#x, want 0x01", got[400])
	}
	for i, b := range got {
		if i != 400 && b != 0x00 {
			t.Fatalf("byte %d = %#x, want 0x00", i, b)
		}
	}
}
