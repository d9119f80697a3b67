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

	"github.com/n0ham/gofx25/internal/ax25"
	"github.com/n0ham/gofx25/internal/hexdump"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "ax25pack"
	myApp.Usage = "packetize a file into AX.25 UI frames, written as a hex dump"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "destcall",
			Value: "CQ",
			Usage: "destination call sign",
		},
		cli.IntFlag{
			Name:  "destssid",
			Value: 0,
			Usage: "destination SSID",
		},
		cli.StringFlag{
			Name:  "sourcecall",
			Value: "N0CALL",
			Usage: "source call sign",
		},
		cli.IntFlag{
			Name:  "sourcessid",
			Value: 0,
			Usage: "source SSID",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.NewExitError("usage: ax25pack <input.txt> <packets.txt>", 1)
		}
		inPath, outPath := c.Args().Get(0), c.Args().Get(1)

		data, err := os.ReadFile(inPath)
		if err != nil {
			return errors.Wrap(err, "ax25pack: read input")
		}

		cfg := ax25.Config{
			DestCall:   c.String("destcall"),
			DestSSID:   byte(c.Int("destssid")),
			SourceCall: c.String("sourcecall"),
			SourceSSID: byte(c.Int("sourcessid")),
		}

		frames, err := ax25.Packetize(cfg, data)
		if err != nil {
			return errors.Wrap(err, "ax25pack: packetize")
		}

		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "ax25pack: create output")
		}
		defer out.Close()

		for i, frame := range frames {
			if err := hexdump.WritePacket(out, i, frame); err != nil {
				return errors.Wrap(err, "ax25pack: write hex dump")
			}
		}

		log.Println("frames written:", len(frames))
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}
