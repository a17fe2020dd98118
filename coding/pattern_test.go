// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Alignment pattern centre coordinates, ISO/IEC 18004 Annex E.
var alignTable = [MaxVersion + 1][]int{
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

func TestAlignmentPositions(t *testing.T) {
	for v := Version(0); v <= MaxVersion+1; v++ {
		var want []int
		if v <= MaxVersion {
			want = alignTable[v]
		}
		if d := cmp.Diff(want, v.AlignmentPositions()); d != "" {
			t.Errorf("version %d (-want +got):\n%s", v, d)
		}
	}
}

// ring returns the ring number of module (x, y) in a square pattern
// centred at (cx, cy): 0 for the centre, 1 around it and so on.
func ring(x, y, cx, cy int) int {
	return max(abs(x-cx), abs(y-cy))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// finderOrigin returns the top left module of the 8x8 finder footprint
// and the centre of the finder pattern at corner c.
func finderOrigin(siz int, c Corner) (x0, y0, cx, cy int) {
	cx, cy = 3, 3
	if c&right != 0 {
		x0, cx = siz-8, siz-4
	}
	if c&bottom != 0 {
		y0, cy = siz-8, siz-4
	}
	return
}

func inFinder(siz, x, y int) bool {
	return x < 8 && y < 8 || x >= siz-8 && y < 8 || x < 8 && y >= siz-8
}

func TestDrawFinder(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m, _ := NewMatrix(v)
		m.DrawFinders()
		siz := m.Size
		for _, c := range []Corner{TopLeft, TopRight, BottomLeft} {
			x0, y0, cx, cy := finderOrigin(siz, c)
			for y := y0; y < y0+8; y++ {
				for x := x0; x < x0+8; x++ {
					r := ring(x, y, cx, cy)
					want := r != 2 && r != 4
					dark, res := m.Module(x, y)
					if !res || dark != want {
						t.Fatalf("version %d %v (%d,%d): "+
							"dark %v reserved %v",
							v, c, x, y, dark, res)
					}
				}
			}
		}
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				if _, res := m.Module(x, y); res != inFinder(siz, x, y) {
					t.Fatalf("version %d (%d,%d): reserved %v",
						v, x, y, res)
				}
			}
		}
		if n := m.ReservedCount(); n != 3*64 {
			t.Errorf("version %d: %d reserved modules", v, n)
		}
	}
}

func TestDrawFinderInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	m, _ := NewMatrix(1)
	m.DrawFinder(BottomLeft | TopRight)
}

func TestDrawTiming(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m, _ := NewMatrix(v)
		m.DrawFinders()
		f := m.Clone()
		m.DrawTiming()
		siz := m.Size
		for i := 8; i <= siz-9; i++ {
			for _, p := range [2][2]int{{i, 6}, {6, i}} {
				dark, res := m.Module(p[0], p[1])
				if !res || dark != (i&1 == 0) {
					t.Fatalf("version %d (%d,%d): dark %v "+
						"reserved %v", v, p[0], p[1], dark, res)
				}
			}
		}
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				fd, fr := f.Module(x, y)
				if !fr {
					continue
				}
				if d, r := m.Module(x, y); d != fd || !r {
					t.Fatalf("version %d (%d,%d): finder changed",
						v, x, y)
				}
			}
		}
		if n, want := m.ReservedCount(), 192+2*(siz-16); n != want {
			t.Errorf("version %d: %d reserved modules, want %d",
				v, n, want)
		}
	}
}

func TestDrawAlignmentsVersion1(t *testing.T) {
	m, _ := NewMatrix(1)
	m.DrawFinders()
	m.DrawTiming()
	before := m.Clone()
	m.DrawAlignments()
	if d := cmp.Diff(before, m); d != "" {
		t.Errorf("alignment drawn at version 1 (-want +got):\n%s", d)
	}
	if n := m.ReservedCount(); n != 202 {
		t.Errorf("%d reserved modules, want 202", n)
	}
}

func TestDrawAlignments(t *testing.T) {
	for v := MinVersion + 1; v <= MaxVersion; v++ {
		m, _ := NewMatrix(v)
		m.DrawPatterns()
		pos := alignTable[v]
		last := len(pos) - 1
		npat := 0
		for i, cx := range pos {
			for j, cy := range pos {
				if i == 0 && (j == 0 || j == last) ||
					i == last && j == 0 {
					continue
				}
				npat++
				for y := cy - 2; y <= cy+2; y++ {
					for x := cx - 2; x <= cx+2; x++ {
						dark, res := m.Module(x, y)
						if !res || dark != (ring(x, y, cx, cy) != 1) {
							t.Fatalf("version %d pattern "+
								"(%d,%d) module (%d,%d): "+
								"dark %v reserved %v",
								v, cx, cy, x, y, dark, res)
						}
					}
				}
			}
		}
		if npat != len(pos)*len(pos)-3 {
			t.Errorf("version %d: %d patterns", v, npat)
		}
		// Patterns on row and column 6 cover 5 timing modules each.
		siz := m.Size
		want := 192 + 2*(siz-16) + 25*npat - 5*2*(len(pos)-2)
		if n := m.ReservedCount(); n != want {
			t.Errorf("version %d: %d reserved modules, want %d",
				v, n, want)
		}
		// Finder patterns are not overwritten.
		f, _ := NewMatrix(v)
		f.DrawFinders()
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				if !inFinder(siz, x, y) {
					continue
				}
				fd, _ := f.Module(x, y)
				if d, _ := m.Module(x, y); d != fd {
					t.Fatalf("version %d (%d,%d): finder "+
						"overwritten", v, x, y)
				}
			}
		}
	}
}

func TestDrawIdempotent(t *testing.T) {
	draw := map[string]func(*Matrix){
		"finders":    (*Matrix).DrawFinders,
		"timing":     (*Matrix).DrawTiming,
		"alignments": (*Matrix).DrawAlignments,
		"all":        (*Matrix).DrawPatterns,
	}
	for _, v := range []Version{1, 2, 7, 14, 32, 40} {
		for name, f := range draw {
			m, _ := NewMatrix(v)
			m.DrawPatterns()
			want := m.Clone()
			f(m)
			f(m)
			if d := cmp.Diff(want, m); d != "" {
				t.Errorf("version %d %s (-want +got):\n%s",
					v, name, d)
			}
		}
	}
}

func TestNewPlan(t *testing.T) {
	if _, err := NewPlan(0); err != ErrVersion {
		t.Errorf("NewPlan(0): %v", err)
	}
	var (
		wg  sync.WaitGroup
		got [MaxVersion + 1][4]*Matrix
	)
	for v := MinVersion; v <= MaxVersion; v++ {
		for i := range got[v] {
			wg.Add(1)
			go func(v Version, i int) {
				defer wg.Done()
				m, err := NewPlan(v)
				if err != nil {
					t.Errorf("version %d: %v", v, err)
				}
				got[v][i] = m
			}(v, i)
		}
	}
	wg.Wait()
	for v := MinVersion; v <= MaxVersion; v++ {
		want, _ := NewMatrix(v)
		want.DrawPatterns()
		for _, m := range got[v] {
			if d := cmp.Diff(want, m); d != "" {
				t.Fatalf("version %d (-want +got):\n%s", v, d)
			}
		}
		// Plans are independent copies.
		got[v][0].DrawRun(0xff, 0xff, 9, 9)
		if d := cmp.Diff(want, got[v][1]); d != "" {
			t.Fatalf("version %d: plans share bitmaps", v)
		}
	}
}
