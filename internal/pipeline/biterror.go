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

// Package pipeline provides the test-bench fault injector and the
// file-level fault-tolerant RS decode loop built on top of internal/rs.
package pipeline

import (
	"io"

	"github.com/pkg/errors"

	"github.com/n0ham/gofx25/generic"
)

// FlipBit copies src to dst unchanged except for the byte at offset, whose
// low bit is toggled, modelling a single-bit transmission error. It is
// used to validate that RS(255,223) recovers any one-bit-per-block fault.
func FlipBit(dst io.Writer, src io.Reader, offset int64) error {
	buf := generic.AcquireBuffer()
	defer generic.ReleaseBuffer(buf)

	var pos int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				if pos == offset {
					buf[i] ^= 0x01
				}
				pos++
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return errors.Wrap(werr, "pipeline: write during bit flip")
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return errors.Wrap(rerr, "pipeline: read during bit flip")
		}
	}
}
