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
	myApp.Name = "fx25enc"
	myApp.Usage = "RS(255,223) encode a file into FX.25-ready codewords"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.NewExitError("usage: fx25enc <input> <output>", 1)
		}
		inPath, outPath := c.Args().Get(0), c.Args().Get(1)

		in, err := os.Open(inPath)
		if err != nil {
			return errors.Wrap(err, "fx25enc: open input")
		}
		defer in.Close()

		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "fx25enc: create output")
		}
		defer out.Close()

		blocks, err := pipeline.EncodeFile(out, in)
		if err != nil {
			return errors.Wrap(err, "fx25enc: encode")
		}
		log.Println("blocks encoded:", blocks)
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}
