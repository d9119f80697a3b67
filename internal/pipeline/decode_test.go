package pipeline

import (
	"bytes"
	"testing"

	"github.com/n0ham/gofx25/internal/rs"
)

func TestEncodeDecodeFileRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte{0x11, 0x22, 0x33}, 200) // not a multiple of K=223

	var encoded bytes.Buffer
	blocks, err := EncodeFile(&encoded, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if blocks == 0 {
		t.Fatalf("EncodeFile produced zero blocks")
	}
	if encoded.Len() != blocks*rs.N {
		t.Fatalf("encoded length = %d, want %d", encoded.Len(), blocks*rs.N)
	}

	var decoded bytes.Buffer
	stats, err := DecodeFile(&decoded, bytes.NewReader(encoded.Bytes()))
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if stats.Processed != blocks {
		t.Fatalf("Processed = %d, want %d", stats.Processed, blocks)
	}
	if stats.Failed != 0 {
		t.Fatalf("Failed = %d, want 0", stats.Failed)
	}

	// The final block's zero padding is trimmed; everything up to the
	// original length must match exactly.
	if !bytes.Equal(decoded.Bytes()[:len(data)], data) {
		t.Fatalf("decoded data mismatch")
	}
}

func TestDecodeFileCorrectsInjectedErrors(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 223*2)

	var encoded bytes.Buffer
	if _, err := EncodeFile(&encoded, bytes.NewReader(data)); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	corrupted := encoded.Bytes()
	corrupted[10] ^= 0x40  // inside block 0
	corrupted[300] ^= 0x08 // inside block 1

	var decoded bytes.Buffer
	stats, err := DecodeFile(&decoded, bytes.NewReader(corrupted))
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if stats.Corrected != 2 {
		t.Fatalf("Corrected = %d, want 2", stats.Corrected)
	}
	if stats.Failed != 0 {
		t.Fatalf("Failed = %d, want 0", stats.Failed)
	}
	if !bytes.Equal(decoded.Bytes()[:len(data)], data) {
		t.Fatalf("decoded data mismatch after correction")
	}
}

func TestDecodeFilePassesThroughUncorrectableBlock(t *testing.T) {
	data := bytes.Repeat([]byte{0x77}, 223)

	var encoded bytes.Buffer
	if _, err := EncodeFile(&encoded, bytes.NewReader(data)); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	corrupted := encoded.Bytes()
	for i := 0; i < 20; i++ {
		corrupted[i*10] ^= 0xFF // 20 errors, beyond T=16
	}

	var decoded bytes.Buffer
	stats, err := DecodeFile(&decoded, bytes.NewReader(corrupted))
	if err != nil {
		t.Fatalf("DecodeFile returned error, want nil (never-abort policy): %v", err)
	}
	if stats.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", stats.Failed)
	}
	if decoded.Len() == 0 {
		t.Fatalf("expected uncorrected bytes to be written through")
	}
}

func TestEncodeFileEmptyInput(t *testing.T) {
	var encoded bytes.Buffer
	blocks, err := EncodeFile(&encoded, bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if blocks != 0 || encoded.Len() != 0 {
		t.Fatalf("EncodeFile on empty input produced blocks=%d len=%d, want 0,0", blocks, encoded.Len())
	}
}
