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

package main

import (
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/n0ham/gofx25/internal/pipeline"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "bitflip"
	myApp.Usage = "flip the low bit of one byte, for RS correction testing"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() != 3 {
			return cli.NewExitError("usage: bitflip <input> <output> <byte-offset>", 1)
		}
		inPath, outPath := c.Args().Get(0), c.Args().Get(1)
		offset, err := strconv.ParseInt(c.Args().Get(2), 10, 64)
		if err != nil {
			return cli.NewExitError("byte-offset must be an integer", 1)
		}

		in, err := os.Open(inPath)
		if err != nil {
			return errors.Wrap(err, "bitflip: open input")
		}
		defer in.Close()

		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "bitflip: create output")
		}
		defer out.Close()

		if err := pipeline.FlipBit(out, in, offset); err != nil {
			return errors.Wrap(err, "bitflip: flip")
		}
		color.Green("flipped bit 0 of byte %d", offset)
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}
