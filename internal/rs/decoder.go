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

// ErrBadCodewordLength is returned by Decode when the received word is not
// exactly N symbols.
var ErrBadCodewordLength = errors.New("rs: received word must be exactly N=255 bytes")

// ErrUncorrectable is returned when Berlekamp-Massey finds an error-locator
// degree greater than T, or Chien search finds more than T roots or a root
// count that differs from the locator degree: more errors occurred than the
// code can correct.
var ErrUncorrectable = errors.New("rs: uncorrectable block, too many errors")

// ErrInconsistent is returned when the Forney derivative vanishes at an
// error location reported by Chien search. It indicates the same root cause
// as ErrUncorrectable (too many or an adversarial pattern of errors) and
// callers should treat the two identically.
var ErrInconsistent = errors.New("rs: decode inconsistency, locator derivative vanishes at a root")

// Decode corrects up to T=16 symbol errors in a 255-symbol received word.
// It returns the corrected codeword and the number of errors found. If the
// word is already a valid codeword, it is returned unchanged with a count
// of zero. If more errors occurred than the code can correct, it returns
// ErrUncorrectable or ErrInconsistent; callers should pass the uncorrected
// word through and count the block as failed, per the decoder's
// never-abort-a-file policy.
func (c *Codec) Decode(received []byte) (corrected [N]byte, errCount int, err error) {
	if len(received) != N {
		return corrected, 0, ErrBadCodewordLength
	}
	copy(corrected[:], received)

	syndromes, clean := computeSyndromes(received)
	if clean {
		return corrected, 0, nil
	}

	lambda, l := berlekampMassey(syndromes)
	if l > T {
		return corrected, 0, ErrUncorrectable
	}

	omega := computeOmega(syndromes, lambda, l)

	locations, ok := chienSearch(lambda, l)
	if !ok {
		return corrected, 0, ErrUncorrectable
	}

	for _, pos := range locations {
		magnitude, consistent := forneyMagnitude(lambda, omega, l, pos)
		if !consistent {
			return corrected, 0, ErrInconsistent
		}
		corrected[pos] ^= magnitude
	}

	return corrected, len(locations), nil
}

// computeSyndromes evaluates the received polynomial at alpha^0..alpha^31.
// It reports clean=true when every syndrome is zero, meaning the received
// word is already a valid codeword.
func computeSyndromes(received []byte) (syndromes [Parity]byte, clean bool) {
	clean = true
	for i := 0; i < Parity; i++ {
		alphaI := gf.Pow(gf.Alpha, i)
		var s byte
		for j := 0; j < N; j++ {
			if received[j] != 0 {
				s ^= gf.Mul(received[j], gf.Pow(alphaI, j))
			}
		}
		syndromes[i] = s
		if s != 0 {
			clean = false
		}
	}
	return syndromes, clean
}

// berlekampMassey solves the key equation for the minimal-degree
// error-locator polynomial Lambda(x), following the textbook formulation
// (Massey 1969 / Blahut): Lambda and a shadow polynomial B are updated from
// the running discrepancy, with an explicit shift counter m tracking how
// far B trails the current iteration.
func berlekampMassey(syndromes [Parity]byte) (lambda [Parity + 1]byte, l int) {
	var b [Parity + 1]byte
	lambda[0] = 1
	b[0] = 1
	lastDiscrepancy := byte(1)
	shift := 1

	for n := 0; n < Parity; n++ {
		discrepancy := syndromes[n]
		for i := 1; i <= l; i++ {
			discrepancy ^= gf.Mul(lambda[i], syndromes[n-i])
		}

		if discrepancy == 0 {
			shift++
			continue
		}

		coef, _ := gf.Div(discrepancy, lastDiscrepancy) // lastDiscrepancy never zero here

		if 2*l <= n {
			prevLambda := lambda
			addScaled(&lambda, b, coef, shift)
			l = n + 1 - l
			b = prevLambda
			lastDiscrepancy = discrepancy
			shift = 1
		} else {
			addScaled(&lambda, b, coef, shift)
			shift++
		}
	}

	return lambda, l
}

// addScaled computes lambda ^= coef * x^shift * b in place.
func addScaled(lambda *[Parity + 1]byte, b [Parity + 1]byte, coef byte, shift int) {
	for i := 0; i+shift <= Parity; i++ {
		if b[i] != 0 {
			lambda[i+shift] ^= gf.Mul(coef, b[i])
		}
	}
}

// computeOmega evaluates the error-evaluator polynomial Omega(x) = S(x)
// Lambda(x) mod x^Parity.
func computeOmega(syndromes [Parity]byte, lambda [Parity + 1]byte, l int) [Parity]byte {
	var omega [Parity]byte
	for i := 0; i < Parity; i++ {
		maxJ := i
		if l < maxJ {
			maxJ = l
		}
		var sum byte
		for j := 0; j <= maxJ; j++ {
			sum ^= gf.Mul(syndromes[i-j], lambda[j])
		}
		omega[i] = sum
	}
	return omega
}

// chienSearch evaluates Lambda at alpha^(-i) for every codeword position i
// in [0,N), returning the positions where it vanishes. ok is false if more
// than T roots are found, or if the root count disagrees with deg(Lambda).
func chienSearch(lambda [Parity + 1]byte, l int) (locations []int, ok bool) {
	for i := 0; i < N; i++ {
		alphaInvI := gf.Pow(gf.Alpha, -i)
		var sum byte
		for j := 0; j <= l; j++ {
			if lambda[j] != 0 {
				sum ^= gf.Mul(lambda[j], gf.Pow(alphaInvI, j))
			}
		}
		if sum == 0 {
			locations = append(locations, i)
			if len(locations) > T {
				return nil, false
			}
		}
	}
	if len(locations) != l {
		return nil, false
	}
	return locations, true
}

// forneyMagnitude computes the error magnitude at codeword position pos
// from Omega and the formal derivative of Lambda. consistent is false when
// the derivative vanishes, which the caller treats as a decode
// inconsistency rather than applying a bogus correction.
func forneyMagnitude(lambda [Parity + 1]byte, omega [Parity]byte, l int, pos int) (magnitude byte, consistent bool) {
	alphaInvI := gf.Pow(gf.Alpha, -pos)

	var omegaVal byte
	for j := 0; j < Parity; j++ {
		if omega[j] != 0 {
			omegaVal ^= gf.Mul(omega[j], gf.Pow(alphaInvI, j))
		}
	}

	var lambdaPrime byte
	for j := 1; j <= l; j += 2 {
		if lambda[j] != 0 {
			lambdaPrime ^= gf.Mul(lambda[j], gf.Pow(alphaInvI, j-1))
		}
	}
	if lambdaPrime == 0 {
		return 0, false
	}

	// The first consecutive root of g(x) is alpha^0, so Forney's formula
	// carries an extra factor X = alpha^pos.
	magnitude, _ = gf.Div(omegaVal, lambdaPrime)
	magnitude = gf.Mul(magnitude, gf.Pow(gf.Alpha, pos))
	return magnitude, true
}
