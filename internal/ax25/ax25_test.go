package ax25

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// The expected bytes are built from the shifted-ASCII SSID-terminated
// address algorithm directly: each call-sign character (or space, past the
// end of the call) is shifted left one bit, and the SSID byte carries the
// end-of-address bit only on the source address.
func TestBuildBeaconN0CALL(t *testing.T) {
	cfg := Config{DestCall: "CQ", DestSSID: 0, SourceCall: "N0CALL", SourceSSID: 0}
	frame, err := BuildBeacon(cfg, "HELLO")
	if err != nil {
		t.Fatalf("BuildBeacon returned error: %v", err)
	}

	want := []byte{
		0x7E,
		'C' << 1, 'Q' << 1, ' ' << 1, ' ' << 1, ' ' << 1, ' ' << 1, (0 << 1) | 0, // dest "CQ    " shifted, last_bit=0
		'N' << 1, '0' << 1, 'C' << 1, 'A' << 1, 'L' << 1, 'L' << 1, (0 << 1) | 1, // source "N0CALL" shifted, last_bit=1
		0x03, 0xF0, // control, PID
		byte(FrameBeacon), 0x00, 0x00, 0x00, 0x01, // typed header: type,seq_hi,seq_lo,total_hi,total_lo
		'H', 'E', 'L', 'L', 'O',
	}

	if len(frame) != len(want)+2+1 { // +FCS(2) +closing flag(1)
		t.Fatalf("frame length = %d, want %d", len(frame), len(want)+3)
	}
	if !bytes.Equal(frame[:len(want)], want) {
		t.Fatalf("frame prefix mismatch:\ngot  % X\nwant % X", frame[:len(want)], want)
	}
	if frame[len(frame)-1] != Flag {
		t.Fatalf("frame does not end with closing flag")
	}
}

func TestFCSCoversExpectedSpan(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	frame, err := BuildBeacon(cfg, "HELLO")
	if err != nil {
		t.Fatalf("BuildBeacon returned error: %v", err)
	}

	body := frame[1 : len(frame)-3] // strip opening flag, FCS, closing flag
	want := crcCCITT(body)
	got := binary.LittleEndian.Uint16(frame[len(frame)-3 : len(frame)-1])
	if got != want {
		t.Fatalf("FCS = %04X, want %04X", got, want)
	}
}

func TestBuildFrameRejectsOversizedPayload(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	_, err := BuildFrame(cfg, FrameMessage, 0, 1, make([]byte, MaxPayload+1))
	if err != ErrPayloadTooLarge {
		t.Fatalf("BuildFrame error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestMessageFrameHasNoTypedHeader(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	frame, err := BuildMessage(cfg, "HI")
	if err != nil {
		t.Fatalf("BuildMessage returned error: %v", err)
	}
	// flag(1) + dest(7) + source(7) + control(1) + pid(1) + "HI"(2) + fcs(2) + flag(1)
	want := 1 + 7 + 7 + 1 + 1 + 2 + 2 + 1
	if len(frame) != want {
		t.Fatalf("message frame length = %d, want %d", len(frame), want)
	}
}

func TestPacketizeSequencing(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i)
	}

	frames, err := Packetize(cfg, data)
	if err != nil {
		t.Fatalf("Packetize returned error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}

	wantTypes := []FrameType{FrameDataFirst, FrameData, FrameDataEnd}
	for i, frame := range frames {
		// typed header starts right after control(1)+pid(1) following the two
		// 7-byte addresses and the opening flag.
		headerOffset := 1 + 7 + 7 + 1 + 1
		typ := FrameType(frame[headerOffset])
		seq := binary.BigEndian.Uint16(frame[headerOffset+1 : headerOffset+3])
		total := binary.BigEndian.Uint16(frame[headerOffset+3 : headerOffset+5])

		if typ != wantTypes[i] {
			t.Fatalf("frame %d type = %v, want %v", i, typ, wantTypes[i])
		}
		if int(seq) != i {
			t.Fatalf("frame %d seq = %d, want %d", i, seq, i)
		}
		if total != 3 {
			t.Fatalf("frame %d total = %d, want 3", i, total)
		}
	}
}

func TestPacketizeSingleChunkIsDataHeader(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	frames, err := Packetize(cfg, []byte("short payload"))
	if err != nil {
		t.Fatalf("Packetize returned error: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	headerOffset := 1 + 7 + 7 + 1 + 1
	if FrameType(frames[0][headerOffset]) != FrameDataHeader {
		t.Fatalf("single chunk frame type = %v, want FrameDataHeader", FrameType(frames[0][headerOffset]))
	}
}

func TestPacketizeEmptyInput(t *testing.T) {
	cfg := Config{DestCall: "CQ", SourceCall: "N0CALL"}
	frames, err := Packetize(cfg, nil)
	if err != nil {
		t.Fatalf("Packetize returned error: %v", err)
	}
	if frames != nil {
		t.Fatalf("got %d frames for empty input, want 0", len(frames))
	}
}
