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

package ax25

// Packetize chunks data into MaxPayload-byte pieces and wraps each as a
// typed UI frame, in ascending sequence order. A single chunk is tagged
// FrameDataHeader; otherwise the first chunk is FrameDataFirst, the last is
// FrameDataEnd, and everything between is FrameData. Every frame carries
// the chunk's index and the total chunk count in its typed header.
func Packetize(cfg Config, data []byte) ([][]byte, error) {
	total := (len(data) + MaxPayload - 1) / MaxPayload
	if total == 0 {
		return nil, nil
	}

	frames := make([][]byte, 0, total)
	for p := 0; p < total; p++ {
		start := p * MaxPayload
		end := start + MaxPayload
		if end > len(data) {
			end = len(data)
		}

		var typ FrameType
		switch {
		case total == 1:
			typ = FrameDataHeader
		case p == 0:
			typ = FrameDataFirst
		case p == total-1:
			typ = FrameDataEnd
		default:
			typ = FrameData
		}

		frame, err := BuildFrame(cfg, typ, uint16(p), uint16(total), data[start:end])
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
