// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadStyles reads Styles from a TOML document of the form:
//
//	[style.dots]
//	dark = "()"
//	light = ".."
//	unset = "??"
//	charset = "ISO-8859-1" # optional
//
// Every Style is validated.  Undefined keys are an error.
func LoadStyles(r io.Reader) (map[string]*Style, error) {
	var f struct {
		Style map[string]*Style `toml:"style"`
	}
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("qr: style file: %w", err)
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return nil, fmt.Errorf("qr: style file: unknown key %q",
			keys[0].String())
	}
	for name, s := range f.Style {
		if s == nil {
			s = &Style{}
			f.Style[name] = s
		}
		s.Name = name
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Style, nil
}

// LoadStyleFile reads Styles from the named file.  See LoadStyles.
func LoadStyleFile(name string) (map[string]*Style, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadStyles(f)
}
