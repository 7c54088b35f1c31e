// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodePoint(t *testing.T) {
	for _, r := range []rune{0, 'a', 0xD7FF, 0xE000, 0xFFFD, unicode.MaxRune} {
		cp, err := NewCodePoint(r)
		require.NoError(t, err, "NewCodePoint(%#x)", r)
		assert.Equal(t, r, cp.Rune())
	}
	for _, r := range []rune{-1, 0xD800, 0xDBFF, 0xDC00, 0xDFFF, unicode.MaxRune + 1} {
		_, err := NewCodePoint(r)
		assert.Error(t, err, "NewCodePoint(%#x)", r)
	}
}

func TestMustCodePoint(t *testing.T) {
	assert.Equal(t, CodePoint('a'), MustCodePoint('a'))
	assert.Panics(t, func() { MustCodePoint(0xD800) })
}

func TestCodePointString(t *testing.T) {
	assert.Equal(t, "U+0041", CodePoint('A').String())
	assert.Equal(t, "U+1F4A9", CodePoint(0x1F4A9).String())
}

func TestCodePointCompare(t *testing.T) {
	assert.Equal(t, -1, CodePoint('a').Compare('b'))
	assert.Equal(t, 0, CodePoint('a').Compare('a'))
	assert.Equal(t, 1, CodePoint('b').Compare('a'))
}
