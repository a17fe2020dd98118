// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Corner selects the position of a finder pattern.
type Corner int

const (
	right  = 1 << iota // right edge
	bottom             // bottom edge
)

// Finder pattern corners.
const (
	TopLeft    Corner = 0
	TopRight   Corner = right
	BottomLeft Corner = bottom
)

func (c Corner) String() string {
	if TopLeft <= c && c <= BottomLeft {
		return [...]string{"top-left", "top-right", "bottom-left"}[c]
	}
	return "corner(" + strconv.Itoa(int(c)) + ")"
}

// Finder pattern rows, leftmost module in bit 0.  Bit 7 is the
// separator.
var finderRows = [7]byte{0x7f, 0x41, 0x5d, 0x5d, 0x5d, 0x41, 0x7f}

// DrawFinder draws a finder pattern with its separator at corner c.
// The 8x8 square including the separator is reserved.
func (m *Matrix) DrawFinder(c Corner) {
	if c < TopLeft || c > BottomLeft {
		panic("qr: invalid corner")
	}
	x, y, sep := 0, 0, 7
	var shift uint
	if c&right != 0 {
		// Mirrored: separator on the left.
		x, shift = m.Size-8, 1
	}
	if c&bottom != 0 {
		y, sep = m.Size-7, -1
	}
	m.DrawRun(0, 0xff, x, y+sep)
	for i, row := range finderRows {
		m.DrawRun(row<<shift, 0xff, x, y+i)
	}
}

// DrawFinders draws the three finder patterns.
func (m *Matrix) DrawFinders() {
	m.DrawFinder(TopRight)
	m.DrawFinder(TopLeft)
	m.DrawFinder(BottomLeft)
}

// DrawTiming draws the timing patterns on row and column 6 between
// the separators.  Modules at even offsets from the start are dark.
func (m *Matrix) DrawTiming() {
	const pat = 0x55
	n := m.Size - 16
	// Horizontal, 8 modules at a time.
	x := 8
	for r := n; ; r -= 8 {
		if r < 8 {
			m.DrawRun(pat, byte(1)<<r-1, x, 6)
			break
		}
		m.DrawRun(pat, 0xff, x, 6)
		x += 8
	}
	// Vertical, one module at a time.
	for i := 0; i < n; i++ {
		m.DrawRun(^byte(i)&1, 1, 6, 8+i)
	}
}

// Alignment pattern rows, leftmost module in bit 0.
var alignRows = [5]byte{0x1f, 0x11, 0x15, 0x11, 0x1f}

// DrawAlignment draws an alignment pattern centred at x, y.
func (m *Matrix) DrawAlignment(x, y int) {
	for i, row := range alignRows {
		m.DrawRun(row, 0x1f, x-2, y-2+i)
	}
}

// DrawAlignments draws the alignment patterns for m's version,
// skipping the three positions occupied by finder patterns.
func (m *Matrix) DrawAlignments() {
	pos := m.Version.AlignmentPositions()
	last := len(pos) - 1
	for i, x := range pos {
		for j, y := range pos {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			m.DrawAlignment(x, y)
		}
	}
}

// DrawPatterns draws finder, timing and alignment patterns, in that
// order.
func (m *Matrix) DrawPatterns() {
	m.DrawFinders()
	m.DrawTiming()
	m.DrawAlignments()
}
