// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"cmp"
	"fmt"
	"unicode"
	"unicode/utf16"
)

// A CodePoint is a valid Unicode scalar value: an integer in the range
// 0..U+10FFFF excluding the surrogate range U+D800..U+DFFF.
type CodePoint rune

// NewCodePoint validates r and returns it as a CodePoint. It reports an
// error for negative values, surrogates, and values above unicode.MaxRune.
func NewCodePoint(r rune) (CodePoint, error) {
	if r < 0 || r > unicode.MaxRune {
		return 0, fmt.Errorf("uts46: code point out of range: %#x", int32(r))
	}
	if utf16.IsSurrogate(r) {
		return 0, fmt.Errorf("uts46: surrogate is not a scalar value: %U", r)
	}
	return CodePoint(r), nil
}

// MustCodePoint is like NewCodePoint but panics if r is not a valid scalar
// value.
func MustCodePoint(r rune) CodePoint {
	cp, err := NewCodePoint(r)
	if err != nil {
		panic(err)
	}
	return cp
}

// Rune returns the code point as a rune.
func (c CodePoint) Rune() rune { return rune(c) }

// String formats the code point in U+XXXX notation.
func (c CodePoint) String() string { return fmt.Sprintf("%U", rune(c)) }

// Compare returns -1, 0, or 1 depending on whether c orders before, equal
// to, or after o.
func (c CodePoint) Compare(o CodePoint) int { return cmp.Compare(c, o) }
