// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// A Matrix is the module grid of a QR code under construction.
//
// Modules and Reserved are packed bitmaps of equal length addressed by
// the same index: module (x, y) is bit i%8 of byte i/8, where
// i = y*Size + x.  A Modules bit is 1 if the module is dark.  A Reserved
// bit is 1 if the module belongs to a function pattern.  The colour of
// an unreserved module is undefined.
type Matrix struct {
	Version  Version
	Size     int    // number of modules on a side
	Modules  []byte // 1 is dark, 0 is light
	Reserved []byte // 1 is function pattern, 0 is unset
}

// NewMatrix returns an empty Matrix for a QR code with the given
// version.  All modules are light and unreserved.
func NewMatrix(v Version) (*Matrix, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	siz := v.Size()
	n := (siz*siz + 7) >> 3
	bitmap := make([]byte, n*2)
	return &Matrix{
		Version:  v,
		Size:     siz,
		Modules:  bitmap[:n:n],
		Reserved: bitmap[n:],
	}, nil
}

// Len returns the number of modules.
func (m *Matrix) Len() int { return m.Size * m.Size }

// ByteLen returns the length of each bitmap in bytes.
func (m *Matrix) ByteLen() int { return len(m.Modules) }

func (m *Matrix) index(x, y int) int { return y*m.Size + x }

// Module reports whether the module at x, y is dark and whether it is
// reserved.  Out of range modules are light and unreserved.
func (m *Matrix) Module(x, y int) (dark, reserved bool) {
	if x < 0 || x >= m.Size || y < 0 || y >= m.Size {
		return false, false
	}
	i := m.index(x, y)
	b := byte(1) << (i & 7)
	return m.Modules[i>>3]&b != 0, m.Reserved[i>>3]&b != 0
}

// ReservedCount returns the number of reserved modules.
func (m *Matrix) ReservedCount() int {
	n := 0
	for _, v := range m.Reserved {
		n += bits.OnesCount8(v)
	}
	return n
}

// Clone returns a copy of m with its own bitmaps.
func (m *Matrix) Clone() *Matrix {
	n := len(m.Modules)
	bitmap := make([]byte, n*2)
	copy(bitmap, m.Modules)
	copy(bitmap[n:], m.Reserved)
	return &Matrix{
		Version:  m.Version,
		Size:     m.Size,
		Modules:  bitmap[:n:n],
		Reserved: bitmap[n:],
	}
}

// DrawRun draws a horizontal run of up to 8 modules starting at x, y
// and going right.  Bit k of pix is the colour of module x+k and bit k
// of mask selects whether it is drawn.  Drawn modules are reserved,
// the rest are left alone.
//
// The run must not extend past the end of the row: DrawRun panics if
// the highest bit set in mask falls outside it.
func (m *Matrix) DrawRun(pix, mask byte, x, y int) {
	if mask == 0 {
		return
	}
	if x < 0 || y < 0 || y >= m.Size || x+bits.Len8(mask) > m.Size {
		panic("qr: run crosses row end")
	}
	i := m.index(x, y)
	off, shift := i>>3, uint(i&7)
	// Low part goes to the byte containing x, the rest to the next.
	if lo := mask << shift; lo != 0 {
		m.Modules[off] = m.Modules[off]&^lo | pix<<shift&lo
		m.Reserved[off] |= lo
	}
	if hi := mask >> (8 - shift); hi != 0 {
		m.Modules[off+1] = m.Modules[off+1]&^hi | pix>>(8-shift)&hi
		m.Reserved[off+1] |= hi
	}
}
