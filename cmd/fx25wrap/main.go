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
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/n0ham/gofx25/internal/fx25"
	"github.com/n0ham/gofx25/internal/hexdump"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "fx25wrap"
	myApp.Usage = "wrap hex-dumped AX.25 frames in the FX.25 RS(255,223) outer code"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "print the first bytes of the first wrapped packet",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.NewExitError("usage: fx25wrap <packets.txt> <fx25_packets.txt>", 1)
		}
		inPath, outPath := c.Args().Get(0), c.Args().Get(1)

		in, err := os.Open(inPath)
		if err != nil {
			return errors.Wrap(err, "fx25wrap: open input")
		}
		defer in.Close()

		packets, err := hexdump.ParsePackets(in)
		if err != nil {
			return errors.Wrap(err, "fx25wrap: parse hex dump")
		}

		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "fx25wrap: create output")
		}
		defer out.Close()

		codec := fx25.NewCodec()
		for i, p := range packets {
			frame, err := codec.Wrap(p)
			if err != nil {
				return errors.Wrapf(err, "fx25wrap: wrap packet %d", i)
			}
			if c.Bool("verbose") && i == 0 {
				n := 16
				if len(frame) < n {
					n = len(frame)
				}
				fmt.Printf("first %d bytes of packet 0: % X\n", n, frame[:n])
			}
			if err := hexdump.WriteFX25Packet(out, i, fx25.CorrelationTag[:], frame[fx25.TagSize:]); err != nil {
				return errors.Wrapf(err, "fx25wrap: write packet %d", i)
			}
		}

		log.Println("packets wrapped:", len(packets))
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}
