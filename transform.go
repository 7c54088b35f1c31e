// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer implements the transform.Transformer interface, applying the
// mapping step as a stream transformation.
//
// A Transformer never reports rejected code points: they become U+FFFD in
// the output, as in the partially mapped string of a MappingError. Callers
// needing the error report use Map or MapWithOptions.
type Transformer struct {
	t transform.Transformer
}

// Transformer returns a Transformer applying m's mapping under the given
// policy flags.
func (m *Mapper) Transformer(useSTD3ASCIIRules, transitionalProcessing bool) Transformer {
	return Transformer{mapTransform{
		m:            m,
		useSTD3:      useSTD3ASCIIRules,
		transitional: transitionalProcessing,
	}}
}

// Reset implements the transform.Transformer interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the transform.Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

type mapTransform struct {
	transform.NopResetter

	m            *Mapper
	useSTD3      bool
	transitional bool
}

func (t mapTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			// Invalid byte in a terminated source: copy it through.
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}
		st := t.m.classify(CodePoint(r))
		switch simplify(st.Kind, t.useSTD3, t.transitional) {
		case ValidAlways:
			if size != copy(dst[nDst:], src[nSrc:nSrc+size]) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += size
		case Mapped:
			n := 0
			for _, cp := range st.Mapping {
				n += utf8.RuneLen(rune(cp))
			}
			if n > len(dst)-nDst {
				return nDst, nSrc, transform.ErrShortDst
			}
			for _, cp := range st.Mapping {
				nDst += utf8.EncodeRune(dst[nDst:], rune(cp))
			}
		case Disallowed:
			if len(replacement) > len(dst)-nDst {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacement)
		case Ignored:
			// drop the rune
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
