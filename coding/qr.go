// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the function patterns of QR codes:
// finder, timing and alignment patterns drawn into a packed bitmap.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"strconv"
)

var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// AlignmentPositions returns the row and column coordinates of
// alignment pattern centres, in increasing order.  Version 1 has none.
//
// The first coordinate is always 6 and the last siz-7.  The rest are
// spaced evenly between, the step rounded to the nearest integer and
// then up to an even number, counted back from the last.
func (v Version) AlignmentPositions() []int {
	if v <= MinVersion || v > MaxVersion {
		return nil
	}
	n := int(v)/7 + 2
	span := v.Size() - 13
	step := (span*2 + n - 1) / (n*2 - 2) // round(span / (n-1))
	step += step & 1
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, span+6; i > 0; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}
