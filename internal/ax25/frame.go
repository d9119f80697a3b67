// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ax25 builds AX.25 UI frames: shifted-ASCII SSID-terminated
// addresses, a CRC-CCITT frame check sequence, and a typed header used to
// sequence multi-frame transmissions.
package ax25

import "github.com/pkg/errors"

const (
	// Flag is the opening and closing delimiter byte of a UI frame.
	Flag byte = 0x7E
	// Control is the control-field value for an unnumbered-information frame.
	Control byte = 0x03
	// PID is the protocol-identifier value meaning "no layer 3 protocol".
	PID byte = 0xF0
	// MaxPayload is the largest payload a single UI frame carries.
	MaxPayload = 256
	// headerSize is the length of the typed header appended to every frame
	// type except FrameMessage.
	headerSize = 5
)

// FrameType tags the typed header of a packetized transmission.
type FrameType byte

const (
	FrameBeacon FrameType = iota
	FrameDataHeader
	FrameDataFirst
	FrameData
	FrameDataEnd
	FrameMessage
)

// ErrPayloadTooLarge is returned by BuildFrame when the payload exceeds
// MaxPayload bytes.
var ErrPayloadTooLarge = errors.New("ax25: payload exceeds 256 bytes")

// Config names the two stations framed into every UI frame this codec
// builds: the destination (often "CQ" for a beacon) and the source.
type Config struct {
	DestCall   string
	DestSSID   byte
	SourceCall string
	SourceSSID byte
}

// encodeAddress renders a 7-byte AX.25 address field: up to six call-sign
// characters left-shifted by one bit, space-padded, followed by an SSID
// byte with the end-of-address bit set only on the final address.
func encodeAddress(call string, ssid byte, last bool) [7]byte {
	var out [7]byte
	for i := 0; i < 6; i++ {
		c := byte(' ')
		if i < len(call) {
			c = call[i]
		}
		out[i] = c << 1
	}
	lastBit := byte(0)
	if last {
		lastBit = 1
	}
	out[6] = (ssid << 1) | lastBit
	return out
}

// crcCCITT computes the AX.25 frame check sequence over data: initial value
// 0xFFFF, polynomial 0x1021, final XOR 0xFFFF.
func crcCCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc = crc << 1
			}
		}
	}
	return crc ^ 0xFFFF
}

// BuildFrame assembles a complete UI frame between opening and closing flag
// bytes: destination address, source address, control, PID, an optional
// typed header (present for every type except FrameMessage), the payload,
// and a little-endian FCS covering every byte from the destination address
// through the payload.
func BuildFrame(cfg Config, typ FrameType, seq, total uint16, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, ErrPayloadTooLarge
	}

	frame := make([]byte, 0, 2+7+7+2+headerSize+len(payload)+2)
	frame = append(frame, Flag)

	dest := encodeAddress(cfg.DestCall, cfg.DestSSID, false)
	frame = append(frame, dest[:]...)
	source := encodeAddress(cfg.SourceCall, cfg.SourceSSID, true)
	frame = append(frame, source[:]...)

	frame = append(frame, Control, PID)

	if typ != FrameMessage {
		frame = append(frame,
			byte(typ),
			byte(seq>>8), byte(seq),
			byte(total>>8), byte(total),
		)
	}

	frame = append(frame, payload...)

	fcs := crcCCITT(frame[1:])
	frame = append(frame, byte(fcs), byte(fcs>>8))
	frame = append(frame, Flag)

	return frame, nil
}

// BuildBeacon builds a single-frame beacon carrying message as its payload.
func BuildBeacon(cfg Config, message string) ([]byte, error) {
	return BuildFrame(cfg, FrameBeacon, 0, 1, []byte(message))
}

// BuildMessage builds a single-frame, header-less message frame.
func BuildMessage(cfg Config, message string) ([]byte, error) {
	return BuildFrame(cfg, FrameMessage, 0, 1, []byte(message))
}
