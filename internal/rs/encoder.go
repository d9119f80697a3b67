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

package rs

import (
	"github.com/pkg/errors"

	"github.com/n0ham/gofx25/internal/gf"
)

// ErrBadDataLength is returned by Encode when the input is not exactly K
// symbols.
var ErrBadDataLength = errors.New("rs: data must be exactly K=223 bytes")

// Codec is an explicit handle on the RS(255,223) codec state. The state
// (GF tables and the generator polynomial) is process-wide and immutable,
// so a zero-value Codec is ready to use; the type exists to give
// encode/decode operations a receiver, the way kcptun's fecEncoder and
// fecDecoder wrap the klauspost/reedsolomon codec.
type Codec struct{}

// NewCodec returns a ready-to-use RS(255,223) codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode systematically encodes 223 data symbols into a 255-symbol
// codeword: the first 223 symbols are the input unchanged, the last 32 are
// parity computed by dividing data(x)*x^32 by the generator polynomial
// using a feedback shift-register.
func (c *Codec) Encode(data []byte) ([N]byte, error) {
	var codeword [N]byte
	if len(data) != K {
		return codeword, ErrBadDataLength
	}

	// The register consumes data[0] as the highest-degree term, while the
	// decoder reads codeword[j] as the coefficient of x^j. Dividing by the
	// monic reciprocal of g(x) and storing the remainder highest-degree first
	// makes the stored word vanish at alpha^0..alpha^31.
	var recip [Parity]byte
	for j := 0; j < Parity; j++ {
		recip[j], _ = gf.Div(generator[Parity-j], generator[0])
	}

	var remainder [Parity]byte
	for i := 0; i < K; i++ {
		feedback := data[i] ^ remainder[Parity-1]
		for j := Parity - 1; j > 0; j-- {
			remainder[j] = remainder[j-1] ^ gf.Mul(recip[j], feedback)
		}
		remainder[0] = gf.Mul(recip[0], feedback)
	}

	copy(codeword[:K], data)
	for m := 0; m < Parity; m++ {
		codeword[K+m] = remainder[Parity-1-m]
	}
	return codeword, nil
}
