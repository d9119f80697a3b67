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

// Package gf implements GF(2^8) arithmetic under the CCSDS primitive
// polynomial x^8+x^7+x^2+x+1 (0x11D) with primitive element alpha=2.
package gf

import "github.com/pkg/errors"

// Size is the number of elements in the field, including zero.
const Size = 256

const (
	primPoly = 0x11D
	// Alpha is the primitive element used to build the exponential table.
	Alpha byte = 0x02
)

// ErrDivByZero is returned by Div when the divisor is zero. Division by zero
// never occurs on valid codec inputs; seeing this error indicates a
// programming error upstream.
var ErrDivByZero = errors.New("gf: division by zero")

// expTable[i] = alpha^i for i in [0,510); the upper half duplicates the
// lower half so callers can index with sums up to 509 without reducing
// modulo 255 first.
var expTable [510]byte

// logTable[v] = i such that alpha^i = v, for v != 0. logTable[0] is the
// sentinel value 255 and must never be read as a real exponent.
var logTable [256]byte

func init() {
	var t uint16 = 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(t)
		logTable[t] = byte(i)
		t <<= 1
		if t&0x100 != 0 {
			t ^= primPoly
		}
	}
	for i := 255; i < 510; i++ {
		expTable[i] = expTable[i-255]
	}
	logTable[0] = 255
}

// Exp returns alpha^i for i in [0,509].
func Exp(i int) byte {
	return expTable[i]
}

// Log returns the discrete logarithm of v, or 255 if v is zero.
func Log(v byte) byte {
	return logTable[v]
}

// Mul returns a*b in GF(2^8).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+int(logTable[b])]
}

// Div returns a/b in GF(2^8). It returns ErrDivByZero if b is zero.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	if a == 0 {
		return 0, nil
	}
	return expTable[int(logTable[a])+255-int(logTable[b])], nil
}

// Pow returns base^exp in GF(2^8). A negative exponent is reduced modulo 255
// before use, so Pow can express the inverse powers used during Chien
// search and Forney evaluation (alpha^(-i)).
func Pow(base byte, exp int) byte {
	if base == 0 {
		if exp == 0 {
			return 1
		}
		return 0
	}
	e := exp % 255
	if e < 0 {
		e += 255
	}
	return expTable[(int(logTable[base])*e)%255]
}
