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

// Package fx25 wraps an AX.25 frame in the FX.25 Reed-Solomon outer code: a
// fixed correlation tag followed by a 255-byte RS(255,223) codeword whose
// information symbols are the (zero-padded) AX.25 frame.
package fx25

import (
	"github.com/pkg/errors"

	"github.com/n0ham/gofx25/internal/rs"
)

// TagSize is the length in bytes of the correlation tag.
const TagSize = 8

// FrameSize is the total length of an FX.25 frame: the correlation tag
// plus one full RS(255,223) codeword.
const FrameSize = TagSize + rs.N

// CorrelationTag is the fixed 64-bit synchronization pattern that prefixes
// every FX.25 frame, stored MSB-first as listed; on-air transmission order
// is LSB-first, but bit-level transmission is out of scope for this codec.
var CorrelationTag = [TagSize]byte{0xCC, 0x8F, 0x8A, 0xE4, 0x85, 0xE2, 0x98, 0x01}

// ErrPayloadTooLarge is returned by Wrap when the AX.25 input exceeds the
// RS codec's K=223 information symbols.
var ErrPayloadTooLarge = errors.New("fx25: AX.25 frame exceeds 223 bytes")

// Codec wraps/unwraps FX.25 frames around the shared RS(255,223) codec.
type Codec struct {
	rs *rs.Codec
}

// NewCodec returns a ready-to-use FX.25 codec.
func NewCodec() *Codec {
	return &Codec{rs: rs.NewCodec()}
}

// Wrap builds a 263-byte FX.25 frame from an AX.25 frame of at most 223
// bytes: the frame is copied into the RS codec's information symbols,
// zero-padded to 223 bytes, and RS-encoded to produce 32 parity symbols.
func (c *Codec) Wrap(ax25Frame []byte) ([FrameSize]byte, error) {
	var frame [FrameSize]byte
	if len(ax25Frame) > rs.K {
		return frame, ErrPayloadTooLarge
	}

	var data [rs.K]byte
	copy(data[:], ax25Frame)

	codeword, err := c.rs.Encode(data[:])
	if err != nil {
		return frame, errors.Wrap(err, "fx25: RS encode")
	}

	copy(frame[:TagSize], CorrelationTag[:])
	copy(frame[TagSize:], codeword[:])
	return frame, nil
}

// Unwrap splits an FX.25 frame into its correlation tag and RS codeword,
// RS-decodes the codeword, and returns the recovered AX.25 frame bytes
// (positions [0,223) of the corrected codeword; trailing zero padding is
// left intact, since a valid AX.25 frame is self-delimited by its FCS and
// the closing flag, not by length). errCount is the number of symbol
// errors corrected; err is non-nil when the block is uncorrectable.
func (c *Codec) Unwrap(frame []byte) (ax25Frame [rs.K]byte, errCount int, err error) {
	if len(frame) != FrameSize {
		return ax25Frame, 0, errors.New("fx25: frame must be exactly 263 bytes")
	}

	corrected, n, err := c.rs.Decode(frame[TagSize:])
	copy(ax25Frame[:], corrected[:rs.K])
	return ax25Frame, n, err
}
