// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	ver       coding.Version // QR version
	border    int            // quiet zone
	rev       bool           // reverse colours
	align     bool           // print alignment coordinates
	fn        string         // output filename
	style     string         // output style
	styleFile string         // style definitions
	cx        int            // randr source X coordinate index in inc
	inc       [2]int         // randr source X,Y coordinate increments
}{
	inc: [2]int{1, 1},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine()
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		if n <= 0 {
			break
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:n]
		ml = 60
	}
	fmt.Fprint(w, "QR code function pattern printer\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
Prints finder, timing and alignment patterns of a QR code, two
characters per module.  Modules outside function patterns are unset.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrmatrix version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.rev, 'i', "swap dark and light modules")
	getopt.Flag(&g.align, 'A', "print alignment pattern coordinates "+
		"instead of the code")
	getopt.Flag(&g.border, 'm', "quiet zone modules", "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.styleFile, 'S', "load output styles from TOML file",
		"file")
	getopt.Flag(&g.style, 't', `output style: ascii, utf8, cp437 `+
		`or a style defined with -S; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise ascii`, "type")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version", "ver")

	getopt.Parse()
	if len(getopt.Args()) != 0 {
		usage()
	}
	g.ver = coding.Version(*ver)
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	if g.style == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
			g.style = "utf8"
		} else {
			g.style = "ascii"
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

// lookupStyle returns the named style from the style file, if any,
// or a predefined one.
func lookupStyle(name string) (*qr.Style, error) {
	if g.styleFile != "" {
		ss, err := qr.LoadStyleFile(g.styleFile)
		if err != nil {
			return nil, err
		}
		if s, ok := ss[name]; ok {
			return s, nil
		}
	}
	if s, ok := qr.LookupStyle(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%q: unknown style", name)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	c, err := qr.Draw(g.ver)
	if err != nil {
		log.Fatalln(err)
	}
	var style *qr.Style
	if !g.align {
		if style, err = lookupStyle(g.style); err != nil {
			log.Fatalln(err)
		}
	}

	var w = os.Stdout
	if g.fn != "" {
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	if g.align {
		err = alignments(c, w)
	} else {
		c = randr(c)
		c.Border = g.border
		c.Reverse = g.rev
		err = c.EncodeText(w, style)
	}
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// alignments writes alignment pattern coordinates of c to w.
func alignments(c *qr.Code, w io.Writer) error {
	pos := c.Version.AlignmentPositions()
	s := make([]string, len(pos))
	for i, v := range pos {
		s[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(s, " "))
	return err
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	m, err := coding.NewMatrix(c.Version)
	if err != nil {
		panic(err)
	}
	var coord [2]int
	siz := c.Size
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			if dark, res := c.Module(coord[0], coord[1]); res {
				var pix byte
				if dark {
					pix = 1
				}
				m.DrawRun(pix, 1, x, y)
			}
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	c.Matrix = m
	return c
}
