// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/width"
)

// A Style describes the text representation of modules.  Each glyph
// must be two columns wide.
type Style struct {
	Name    string `toml:"-"`
	Dark    string `toml:"dark"`    // dark module
	Light   string `toml:"light"`   // light module or quiet zone
	Unset   string `toml:"unset"`   // module outside function patterns
	Charset string `toml:"charset"` // IANA output charset, "" for UTF-8

	enc encoding.Encoding // overrides Charset
}

// Predefined Styles.
var (
	// ASCII prints "##" for dark, "  " for light and "~~" for
	// unset modules.
	ASCII = &Style{Name: "ascii", Dark: "##", Light: "  ", Unset: "~~"}

	// UTF8 uses full and light shade blocks.
	UTF8 = &Style{Name: "utf8", Dark: "██", Light: "  ", Unset: "░░"}

	// CP437 is UTF8 encoded in IBM code page 437.
	CP437 = &Style{Name: "cp437", Dark: "██", Light: "  ", Unset: "░░",
		Charset: "IBM437", enc: charmap.CodePage437}
)

var styles = map[string]*Style{
	ASCII.Name: ASCII,
	UTF8.Name:  UTF8,
	CP437.Name: CP437,
}

// LookupStyle returns the predefined Style with the given name.
func LookupStyle(name string) (*Style, bool) {
	s, ok := styles[name]
	return s, ok
}

// textWidth returns the display width of s in columns, or -1 if s
// contains non-printing characters.
func textWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case !unicode.IsGraphic(r):
			return -1
		case unicode.Is(unicode.Mn, r):
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				n += 2
			default:
				n++
			}
		}
	}
	return n
}

func (s *Style) styleError(format string, a ...any) error {
	return fmt.Errorf("%w %q: %s", ErrStyle, s.Name,
		fmt.Sprintf(format, a...))
}

// glyphs returns the encoded light, dark and unset glyphs.
func (s *Style) glyphs() (g [3][]byte, err error) {
	enc := s.enc
	if enc == nil && s.Charset != "" {
		if enc, err = ianaindex.IANA.Encoding(s.Charset); err != nil ||
			enc == nil {
			return g, s.styleError("unsupported charset %q",
				s.Charset)
		}
	}
	for i, v := range [3]string{s.Light, s.Dark, s.Unset} {
		if textWidth(v) != 2 {
			return g, s.styleError("glyph %q not two columns wide", v)
		}
		if enc != nil {
			t, err := enc.NewEncoder().String(v)
			if err != nil {
				return g, s.styleError("glyph %q not encodable "+
					"in %s", v, s.Charset)
			}
			v = t
		}
		g[i] = []byte(v)
	}
	return g, nil
}

// Validate reports whether s can be used for output.
func (s *Style) Validate() error {
	_, err := s.glyphs()
	return err
}

// EncodeText writes the code to w as text in style s, two glyph
// columns per module and one line per row.  Unset modules in the
// code are printed using s.Unset; modules in the quiet zone are light.
func (c *Code) EncodeText(w io.Writer, s *Style) error {
	if c == nil || c.Matrix == nil || w == nil || s == nil ||
		c.Border < 0 {
		return ErrArgs
	}
	g, err := s.glyphs()
	if err != nil {
		return err
	}
	light, dark, unset := g[0], g[1], g[2]
	if c.Reverse {
		light, dark = dark, light
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	bord := c.Border
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p := light
			if 0 <= x && x < siz && 0 <= y && y < siz {
				switch d, r := c.Module(x, y); {
				case !r:
					p = unset
				case d:
					p = dark
				}
			}
			b.Write(p)
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}
