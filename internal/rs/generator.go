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

// Package rs implements the CCSDS-standard Reed-Solomon (255,223) codec:
// systematic encoding by polynomial division, and decoding by syndrome
// computation, Berlekamp-Massey, Chien search and Forney evaluation.
package rs

import "github.com/n0ham/gofx25/internal/gf"

const (
	// N is the codeword length in symbols.
	N = 255
	// K is the number of information symbols per codeword.
	K = 223
	// Parity is the number of parity symbols appended to each codeword.
	Parity = N - K // 32
	// T is the maximum number of correctable symbol errors per codeword.
	T = Parity / 2 // 16
)

// generator holds g(x), degree Parity, with generator[0] the lowest-degree
// coefficient. generator[Parity] is always 1 (monic).
var generator [Parity + 1]byte

func init() {
	generator[0] = 1
	for i := 0; i < Parity; i++ {
		alphaI := gf.Pow(gf.Alpha, i)
		for j := i + 1; j > 0; j-- {
			generator[j] = generator[j-1] ^ gf.Mul(generator[j], alphaI)
		}
		generator[0] = gf.Mul(generator[0], alphaI)
	}
}
