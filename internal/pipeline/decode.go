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

package pipeline

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/n0ham/gofx25/internal/rs"
)

// Stats summarizes a complete file-level RS decode run.
type Stats struct {
	Processed int
	Corrected int
	Failed    int
}

// EncodeFile reads src in K=223-byte blocks, zero-padding the final short
// block, RS-encodes each into a 255-byte codeword, and writes the
// concatenated codewords to dst. It is total: RS encoding has no
// recoverable error.
func EncodeFile(dst io.Writer, src io.Reader) (blocks int, err error) {
	codec := rs.NewCodec()
	var block [rs.K]byte

	for {
		n, rerr := io.ReadFull(src, block[:])
		if n == 0 {
			if rerr == io.EOF {
				return blocks, nil
			}
			return blocks, errors.Wrap(rerr, "pipeline: read input block")
		}
		if n < rs.K {
			for i := n; i < rs.K; i++ {
				block[i] = 0
			}
		}

		codeword, encErr := codec.Encode(block[:])
		if encErr != nil {
			return blocks, errors.Wrap(encErr, "pipeline: RS encode")
		}
		if _, werr := dst.Write(codeword[:]); werr != nil {
			return blocks, errors.Wrap(werr, "pipeline: write codeword")
		}
		blocks++

		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			return blocks, nil
		}
		if rerr != nil {
			return blocks, errors.Wrap(rerr, "pipeline: read input block")
		}
	}
}

// DecodeFile reads src in N=255-byte blocks, RS-decodes each, and writes
// the recovered K=223-byte information symbols to dst. It never aborts on
// an uncorrectable block: the uncorrected received bytes are written
// through and the block is counted as failed, per the decoder's
// never-abort-a-file policy. The final block has its trailing zero bytes
// trimmed before being written, to undo the padding EncodeFile applied to
// a short final block; this is lossy for input that legitimately ends in
// 0x00 bytes, a limitation carried over unchanged from the source this
// codec was distilled from rather than silently fixed with an undocumented
// length prefix.
func DecodeFile(dst io.Writer, src io.Reader) (Stats, error) {
	codec := rs.NewCodec()
	var stats Stats

	var block [rs.N]byte
	var pending []byte // holds the most recently decoded K-byte block until we know if it's last

	for {
		n, rerr := io.ReadFull(src, block[:])
		if n == 0 && rerr == io.EOF {
			break
		}
		if n > 0 {
			if n < rs.N {
				for i := n; i < rs.N; i++ {
					block[i] = 0
				}
			}

			if pending != nil {
				if _, werr := dst.Write(pending); werr != nil {
					return stats, errors.Wrap(werr, "pipeline: write decoded block")
				}
			}

			corrected, errCount, decErr := codec.Decode(block[:])
			stats.Processed++

			out := make([]byte, rs.K)
			switch {
			case decErr == nil:
				copy(out, corrected[:rs.K])
				if errCount > 0 {
					stats.Corrected++
				}
			case errors.Is(decErr, rs.ErrUncorrectable), errors.Is(decErr, rs.ErrInconsistent):
				stats.Failed++
				copy(out, block[:rs.K])
			default:
				return stats, errors.Wrap(decErr, "pipeline: RS decode")
			}
			pending = out
		}

		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return stats, errors.Wrap(rerr, "pipeline: read input block")
		}
	}

	if pending != nil {
		pending = bytes.TrimRight(pending, "\x00")
		if _, werr := dst.Write(pending); werr != nil {
			return stats, errors.Wrap(werr, "pipeline: write decoded block")
		}
	}

	return stats, nil
}
