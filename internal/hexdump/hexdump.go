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

// Package hexdump reads and writes the text interchange format used
// between the AX.25 packetizer and the FX.25 wrapper: a header line, hex
// bytes wrapped at 16 per line, and a blank line terminator.
package hexdump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const bytesPerLine = 16

// WritePacket writes one "Packet N (L bytes):" section followed by data's
// hex bytes wrapped at 16 per line and a trailing blank line.
func WritePacket(w io.Writer, index int, data []byte) error {
	if _, err := fmt.Fprintf(w, "Packet %d (%d bytes):\n", index, len(data)); err != nil {
		return errors.Wrap(err, "hexdump: write header")
	}
	if err := writeHexBody(w, data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return errors.Wrap(err, "hexdump: write trailing blank line")
}

// WriteFX25Packet writes one "FX.25 Packet N (L bytes):" section: a
// correlation-tag line followed by an "RS Codeword:" section with the
// codeword's hex bytes wrapped at 16 per line.
func WriteFX25Packet(w io.Writer, index int, tag, codeword []byte) error {
	total := len(tag) + len(codeword)
	if _, err := fmt.Fprintf(w, "FX.25 Packet %d (%d bytes):\n", index, total); err != nil {
		return errors.Wrap(err, "hexdump: write header")
	}
	if _, err := fmt.Fprint(w, "Correlation Tag: "); err != nil {
		return errors.Wrap(err, "hexdump: write tag label")
	}
	for _, b := range tag {
		if _, err := fmt.Fprintf(w, "%02X ", b); err != nil {
			return errors.Wrap(err, "hexdump: write tag byte")
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "hexdump: write tag line end")
	}
	if _, err := fmt.Fprintln(w, "RS Codeword:"); err != nil {
		return errors.Wrap(err, "hexdump: write codeword label")
	}
	if err := writeHexBody(w, codeword); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return errors.Wrap(err, "hexdump: write trailing blank line")
}

func writeHexBody(w io.Writer, data []byte) error {
	for i, b := range data {
		if _, err := fmt.Fprintf(w, "%02X ", b); err != nil {
			return errors.Wrap(err, "hexdump: write byte")
		}
		if (i+1)%bytesPerLine == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "hexdump: write line break")
			}
		}
	}
	if len(data)%bytesPerLine != 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "hexdump: write final line break")
		}
	}
	return nil
}

// ParsePackets reads a hex-dump stream and returns the byte payload of each
// "Packet N (...)" or "FX.25 Packet N (...)" section, in order. It
// tolerates arbitrary whitespace and ignores any non-hex character within
// the body, matching the original format's tolerant line-oriented parser.
// For "FX.25 Packet" sections the returned payload is the concatenation of
// the correlation tag and the RS codeword, exactly as the bytes appear in
// the dump.
func ParsePackets(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var packets [][]byte
	var current []byte
	inPacket := false

	flush := func() {
		if inPacket {
			packets = append(packets, current)
		}
		current = nil
		inPacket = false
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Packet") && strings.Contains(line, "bytes") {
			flush()
			inPacket = true
			continue
		}

		if !inPacket {
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		current = append(current, parseHexLine(stripLabel(line))...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "hexdump: scan")
	}
	flush()

	return packets, nil
}

// labels are the known section headers that prefix a line of hex bytes
// rather than being part of the body; their English text must not be
// scanned for hex digits (e.g. the 'C', 'e', 'a' in "Correlation").
var labels = []string{"Correlation Tag:", "RS Codeword:"}

func stripLabel(line string) string {
	for _, label := range labels {
		if idx := strings.Index(line, label); idx != -1 {
			return line[idx+len(label):]
		}
	}
	return line
}

func parseHexLine(line string) []byte {
	var out []byte
	var nibble [2]byte
	have := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !isHexDigit(c) {
			continue
		}
		nibble[have] = c
		have++
		if have == 2 {
			v, err := strconv.ParseUint(string(nibble[:]), 16, 8)
			if err == nil {
				out = append(out, byte(v))
			}
			have = 0
		}
	}
	return out
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
