package rs

import (
	"bytes"
	"testing"
)

func sampleData() []byte {
	data := make([]byte, K)
	data[K-1] = 0xFF
	return data
}

func TestEncodeProducesValidCodeword(t *testing.T) {
	c := NewCodec()
	data := sampleData()
	codeword, err := c.Encode(data)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(codeword[:K], data) {
		t.Fatalf("systematic prefix mismatch")
	}
	if _, clean := computeSyndromes(codeword[:]); !clean {
		t.Fatalf("encoded codeword has nonzero syndromes")
	}
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	c := NewCodec()
	if _, err := c.Encode(make([]byte, K-1)); err != ErrBadDataLength {
		t.Fatalf("Encode short input error = %v, want ErrBadDataLength", err)
	}
}

func TestDecodeRoundTripNoErrors(t *testing.T) {
	c := NewCodec()
	data := sampleData()
	codeword, _ := c.Encode(data)

	corrected, n, err := c.Decode(codeword[:])
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("error count = %d, want 0", n)
	}
	if corrected != codeword {
		t.Fatalf("corrected word != original codeword")
	}
}

func TestDecodeSingleByteCorrection(t *testing.T) {
	c := NewCodec()
	data := sampleData()
	codeword, _ := c.Encode(data)

	corrupted := codeword
	corrupted[100] ^= 0x5A

	corrected, n, err := c.Decode(corrupted[:])
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("error count = %d, want 1", n)
	}
	if corrected != codeword {
		t.Fatalf("corrected word != original codeword")
	}
}

// T=16 is the maximum number of symbol errors this code can correct;
// exercise it at full weight rather than just a single error.
func TestDecodeMaxWeightCorrection(t *testing.T) {
	c := NewCodec()
	data := sampleData()
	codeword, _ := c.Encode(data)

	positions := []int{7, 13, 29, 41, 50, 63, 77, 88, 101, 114, 130, 145, 160, 175, 200, 230}
	corrupted := codeword
	for i, pos := range positions {
		corrupted[pos] ^= byte(0x11 * (i + 1))
	}

	corrected, n, err := c.Decode(corrupted[:])
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n != len(positions) {
		t.Fatalf("error count = %d, want %d", n, len(positions))
	}
	if corrected != codeword {
		t.Fatalf("corrected word != original codeword")
	}
}

// One error beyond T=16 must be reported as uncorrectable, not silently
// miscorrected.
func TestDecodeUncorrectable(t *testing.T) {
	c := NewCodec()
	data := sampleData()
	codeword, _ := c.Encode(data)

	corrupted := codeword
	for i := 0; i < 17; i++ {
		corrupted[i*15] ^= byte(0x33 + i)
	}

	_, _, err := c.Decode(corrupted[:])
	if err != ErrUncorrectable && err != ErrInconsistent {
		t.Fatalf("Decode with 17 errors error = %v, want ErrUncorrectable or ErrInconsistent", err)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	c := NewCodec()
	if _, _, err := c.Decode(make([]byte, N-1)); err != ErrBadCodewordLength {
		t.Fatalf("Decode short input error = %v, want ErrBadCodewordLength", err)
	}
}

func TestGeneratorIsMonic(t *testing.T) {
	if generator[Parity] != 1 {
		t.Fatalf("generator[%d] = %d, want 1", Parity, generator[Parity])
	}
}
