// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// http://www.unicode.org/reports/tr46

// Package uts46 implements the code point mapping step of UTS (Unicode
// Technical Standard) #46, the first step of IDNA-compatible processing of
// internationalized domain names.
//
// The mapping step classifies every code point of the input against the IDNA
// mapping table and either keeps it, replaces it, removes it, or rejects it.
// Subsequent steps of UTS #46 (NFC normalization, label validation, and
// punycode conversion) are not part of this package.
//
// The classification data is injected as a ClassificationSource; see
// TableSource for a range-table backed implementation.
package uts46

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// replacement is appended in place of every rejected code point.
const replacement = "�"

// A Mapper applies the UTS #46 mapping step using an injected classification
// source. A Mapper is stateless apart from the source and is safe for
// concurrent use.
type Mapper struct {
	src ClassificationSource
}

// NewMapper returns a Mapper backed by src. It panics if src is nil.
func NewMapper(src ClassificationSource) *Mapper {
	if src == nil {
		panic("uts46: nil ClassificationSource")
	}
	return &Mapper{src: src}
}

// UnicodeVersion returns the Unicode version of the underlying
// classification source.
func (m *Mapper) UnicodeVersion() string { return m.src.UnicodeVersion() }

// Map maps input with the UTS #46 recommended policy: STD3 ASCII rules on,
// transitional processing off.
//
// On success the fully mapped string is returned. If any code point is
// rejected the returned error is a *MappingError carrying every rejection of
// the input together with the partially mapped string; the scan never stops
// at the first rejection.
//
// Input is interpreted as UTF-8. Bytes that do not form a valid encoding
// decode as U+FFFD and are classified as such; decoding garbage input is the
// caller's responsibility.
func (m *Mapper) Map(input string) (string, error) {
	return m.MapWithOptions(true, false, input)
}

// MapWithOptions is Map with explicit policy flags.
//
// useSTD3ASCIIRules rejects code points the IDNA table marks as valid or
// mapped only outside STD3 hostname rules. transitionalProcessing applies
// the IDNA2003-compatible mapping to deviation code points instead of
// keeping them unchanged.
func (m *Mapper) MapWithOptions(useSTD3ASCIIRules, transitionalProcessing bool, input string) (string, error) {
	var (
		b    []byte
		errs []CodePointError
		k, i int
	)
	for i < len(input) {
		r, sz := utf8.DecodeRuneInString(input[i:])
		start := i
		i += sz
		st := m.classify(CodePoint(r))
		// Copy bytes not copied so far on the first change.
		switch simplify(st.Kind, useSTD3ASCIIRules, transitionalProcessing) {
		case ValidAlways:
			continue
		case Mapped:
			b = append(b, input[k:start]...)
			for _, cp := range st.Mapping {
				b = utf8.AppendRune(b, rune(cp))
			}
		case Disallowed:
			b = append(b, input[k:start]...)
			b = append(b, replacement...)
			errs = append(errs, CodePointError{
				Index:     start,
				Message:   disallowedMessage,
				CodePoint: CodePoint(r),
			})
		case Ignored:
			b = append(b, input[k:start]...)
			// drop the rune
		}
		k = i
	}
	if errs == nil {
		if k == 0 {
			// No changes.
			return input, nil
		}
		return string(append(b, input[k:]...)), nil
	}
	b = append(b, input[k:]...)
	// The forward scan already yields ascending indices; sorting makes the
	// documented (Index, Message, CodePoint) ordering a hard guarantee.
	slices.SortFunc(errs, CodePointError.Compare)
	return "", &MappingError{Errors: errs, Partial: string(b)}
}

// simplify folds a raw table category through the two policy flags, reducing
// it to one of ValidAlways, Mapped, Disallowed, or Ignored.
func simplify(k Kind, useSTD3ASCIIRules, transitionalProcessing bool) Kind {
	switch k {
	case ValidNV8, ValidXV8:
		k = ValidAlways
	case MappedMulti:
		k = Mapped
	case DeviationMapped, DeviationMultiMapped:
		if transitionalProcessing {
			k = Mapped
		} else {
			k = ValidAlways
		}
	case DeviationIgnored:
		k = Ignored
	case DisallowedSTD3Valid:
		if useSTD3ASCIIRules {
			k = Disallowed
		} else {
			k = ValidAlways
		}
	case DisallowedSTD3Mapped, DisallowedSTD3MultiMapped:
		if useSTD3ASCIIRules {
			k = Disallowed
		} else {
			k = Mapped
		}
	}
	return k
}

// Classify returns the raw table category of cp. The policy flags are not
// applied: a DisallowedSTD3Valid code point is reported as such, not as
// Disallowed, regardless of how MapWithOptions would treat it. Callers
// needing policy-aware results must fold the category themselves.
//
// Classify is total over valid scalar values. It panics if the underlying
// source claims cp in no category, since that indicates corrupted table
// data: the engine cannot repair a broken totality invariant at runtime.
func (m *Mapper) Classify(cp CodePoint) CodePointStatus {
	return m.classify(cp)
}

// ClassifyRune is Classify for a raw rune, reporting an error if r is not a
// valid Unicode scalar value.
func (m *Mapper) ClassifyRune(r rune) (CodePointStatus, error) {
	cp, err := NewCodePoint(r)
	if err != nil {
		return CodePointStatus{}, err
	}
	return m.classify(cp), nil
}

// MustClassifyRune is like ClassifyRune but panics if r is not a valid
// Unicode scalar value.
func (m *Mapper) MustClassifyRune(r rune) CodePointStatus {
	return m.classify(MustCodePoint(r))
}

// classify consults the source's categories in a fixed priority order: the
// valid categories (Always, NV8, XV8), then mapped (single, multi),
// disallowed, ignored, deviation (single, multi), the STD3 categories
// (valid, mapped single, mapped multi), and finally deviation ignored. The
// categories are exclusive in the table data, so the order is an
// optimization rather than a correctness requirement, but it is kept fixed
// for compatibility.
func (m *Mapper) classify(cp CodePoint) CodePointStatus {
	src := m.src
	switch {
	case src.IsValidAlways(cp):
		return CodePointStatus{Kind: ValidAlways}
	case src.IsValidNV8(cp):
		return CodePointStatus{Kind: ValidNV8}
	case src.IsValidXV8(cp):
		return CodePointStatus{Kind: ValidXV8}
	}
	if r, ok := src.Mapped(cp); ok {
		return CodePointStatus{Kind: Mapped, Mapping: []CodePoint{r}}
	}
	if rs, ok := src.MappedMulti(cp); ok {
		return CodePointStatus{Kind: MappedMulti, Mapping: rs}
	}
	if src.IsDisallowed(cp) {
		return CodePointStatus{Kind: Disallowed}
	}
	if src.IsIgnored(cp) {
		return CodePointStatus{Kind: Ignored}
	}
	if r, ok := src.DeviationMapped(cp); ok {
		return CodePointStatus{Kind: DeviationMapped, Mapping: []CodePoint{r}}
	}
	if rs, ok := src.DeviationMultiMapped(cp); ok {
		return CodePointStatus{Kind: DeviationMultiMapped, Mapping: rs}
	}
	if src.IsDisallowedSTD3Valid(cp) {
		return CodePointStatus{Kind: DisallowedSTD3Valid}
	}
	if r, ok := src.DisallowedSTD3Mapped(cp); ok {
		return CodePointStatus{Kind: DisallowedSTD3Mapped, Mapping: []CodePoint{r}}
	}
	if rs, ok := src.DisallowedSTD3MultiMapped(cp); ok {
		return CodePointStatus{Kind: DisallowedSTD3MultiMapped, Mapping: rs}
	}
	if src.IsDeviationIgnored(cp) {
		return CodePointStatus{Kind: DeviationIgnored}
	}
	panic(fmt.Sprintf("uts46: %U matches no classification category; table data is incomplete", rune(cp)))
}
