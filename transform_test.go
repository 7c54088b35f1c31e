// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestTransform(t *testing.T) {
	m := newTestMapper()
	for _, tc := range []struct {
		desc  string
		src   string
		dstSz int
		atEOF bool
		dst   string
		nSrc  int
		err   error
	}{{
		desc:  "empty",
		src:   "",
		dstSz: 10,
		atEOF: true,
		dst:   "",
		nSrc:  0,
	}, {
		desc:  "valid copied",
		src:   "abc",
		dstSz: 10,
		atEOF: true,
		dst:   "abc",
		nSrc:  3,
	}, {
		desc:  "mapped and expanded",
		src:   "A№",
		dstSz: 10,
		atEOF: true,
		dst:   "ano",
		nSrc:  4,
	}, {
		desc:  "ignored dropped",
		src:   "a­b",
		dstSz: 10,
		atEOF: true,
		dst:   "ab",
		nSrc:  4,
	}, {
		desc:  "disallowed replaced silently",
		src:   "a͸b",
		dstSz: 10,
		atEOF: true,
		dst:   "a�b",
		nSrc:  4,
	}, {
		desc:  "short source",
		src:   "a\xc3",
		dstSz: 10,
		atEOF: false,
		dst:   "a",
		nSrc:  1,
		err:   transform.ErrShortSrc,
	}, {
		desc:  "incomplete but terminated source",
		src:   "a\xc3",
		dstSz: 10,
		atEOF: true,
		dst:   "a\xc3",
		nSrc:  2,
	}, {
		desc:  "short destination on copy",
		src:   "abc",
		dstSz: 2,
		atEOF: true,
		dst:   "ab",
		nSrc:  2,
		err:   transform.ErrShortDst,
	}, {
		desc:  "short destination on expansion",
		src:   "№",
		dstSz: 1,
		atEOF: true,
		dst:   "",
		nSrc:  0,
		err:   transform.ErrShortDst,
	}, {
		desc:  "short destination on replacement",
		src:   "͸",
		dstSz: 2,
		atEOF: true,
		dst:   "",
		nSrc:  0,
		err:   transform.ErrShortDst,
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			tr := m.Transformer(true, false)
			dst := make([]byte, tc.dstSz)
			nDst, nSrc, err := tr.Transform(dst, []byte(tc.src), tc.atEOF)
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.nSrc, nSrc)
			assert.Equal(t, tc.dst, string(dst[:nDst]))
		})
	}
}

func TestTransformerString(t *testing.T) {
	m := newTestMapper()

	// Without rejections the transformer agrees with MapWithOptions.
	for _, tc := range []struct {
		transitional bool
		input        string
	}{
		{false, "Straße"},
		{true, "Straße"},
		{false, "foo­№"},
		{true, "λογος"},
	} {
		want, err := m.MapWithOptions(true, tc.transitional, tc.input)
		require.NoError(t, err)
		got := m.Transformer(true, tc.transitional).String(tc.input)
		assert.Equal(t, want, got, "%+q transitional=%v", tc.input, tc.transitional)
	}

	// With rejections it produces the partial string instead of an error.
	_, err := m.Map("ab͸c")
	me, ok := AsMappingError(err)
	require.True(t, ok)
	assert.Equal(t, me.Partial, m.Transformer(true, false).String("ab͸c"))
}

func TestTransformerBytes(t *testing.T) {
	m := newTestMapper()
	got := m.Transformer(false, false).Bytes([]byte("_A℀"))
	assert.Equal(t, []byte("_aa/c"), got)
}

func TestTransformerReset(t *testing.T) {
	// The transformer is stateless; Reset must be callable.
	m := newTestMapper()
	tr := m.Transformer(true, false)
	tr.Reset()
	assert.Equal(t, "abc", tr.String("abc"))
}
