// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr draws the function patterns of QR codes and prints them as
text.

A Code holds the finder, timing and alignment patterns of a QR code of
a given version.  Modules that are not part of a function pattern are
left unset and print differently from light modules, which makes the
output suitable for comparison against other encoders.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
)

var (
	ErrArgs  = errors.New("qr: invalid arguments")
	ErrStyle = errors.New("qr: invalid style")
)

// A Code is a square module grid with function patterns drawn.
type Code struct {
	*coding.Matrix
	Border  int  // light modules around the code in text output
	Reverse bool // swap dark and light in text output
}

// Draw returns a Code of the given version with finder, timing and
// alignment patterns drawn.
func Draw(version coding.Version) (*Code, error) {
	m, err := coding.NewPlan(version)
	if err != nil {
		return nil, err
	}
	return &Code{Matrix: m}, nil
}

// String returns the code in ASCII style: "##" for dark modules, two
// spaces for light and "~~" for unset ones, one line per row.
func (c *Code) String() string {
	var b strings.Builder
	if err := c.EncodeText(&b, ASCII); err != nil {
		return "<" + err.Error() + ">"
	}
	return b.String()
}
