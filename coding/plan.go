// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// NewPlan returns a Matrix for a QR code with the given version with
// all function patterns drawn.  The Matrix is owned by the caller.
func NewPlan(version Version) (*Matrix, error) {
	pp, err := makePlan(version)
	if err != nil {
		return nil, err
	}
	return pp.Clone(), nil
}

// Pre-drawn plans.  A plan is created the first time a version is
// used.  Each plan is a Matrix with two bitmaps of 56 bytes for
// version 1 up to 3917 bytes for version 40.
var plans [MaxVersion + 1]struct {
	once sync.Once
	m    *Matrix
}

// makePlan returns plans[version].
// If it doesn't exist, it is created.
func makePlan(version Version) (*Matrix, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[version]
	p.once.Do(func() {
		m, _ := NewMatrix(version)
		m.DrawPatterns()
		p.m = m
	})
	return p.m, nil
}
