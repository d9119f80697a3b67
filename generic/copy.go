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

// Package generic holds small allocation-free helpers for the file-level
// pipelines built on top of the codec.
package generic

import "sync"

// BlockSize is the largest unit of work any pipeline in this repository
// reads at once: one RS(255,223) codeword. Pooled buffers are sized to it,
// so a pipeline that draws its read buffer from the pool (pipeline.FlipBit)
// does not allocate a new one per call.
const BlockSize = 255

var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, BlockSize)
		return &buf
	},
}

// AcquireBuffer returns a BlockSize-length byte slice from a shared pool.
// Callers must return it with ReleaseBuffer when done.
func AcquireBuffer() []byte {
	return *bufferPool.Get().(*[]byte)
}

// ReleaseBuffer returns buf to the pool. buf must have been obtained from
// AcquireBuffer and must not be used afterward.
func ReleaseBuffer(buf []byte) {
	buf = buf[:BlockSize]
	bufferPool.Put(&buf)
}
