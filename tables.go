// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"fmt"
	"maps"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/rangetable"
)

// Tables holds the classification data for one version of the IDNA mapping
// table: a range table per membership category and a replacement map per
// mapping category. Fields may be nil; a nil field is an empty category.
type Tables struct {
	UnicodeVersion string

	ValidAlways         *unicode.RangeTable
	ValidNV8            *unicode.RangeTable
	ValidXV8            *unicode.RangeTable
	Ignored             *unicode.RangeTable
	Disallowed          *unicode.RangeTable
	DisallowedSTD3Valid *unicode.RangeTable
	DeviationIgnored    *unicode.RangeTable

	Mapped               map[rune]rune
	DeviationMapped      map[rune]rune
	DisallowedSTD3Mapped map[rune]rune

	MappedMulti               map[rune][]rune
	DeviationMultiMapped      map[rune][]rune
	DisallowedSTD3MultiMapped map[rune][]rune
}

// A TableSource is a ClassificationSource backed by Tables. Membership is a
// binary search over normalized ranges; replacements are map lookups.
type TableSource struct {
	version string

	validAlways         *unicode.RangeTable
	validNV8            *unicode.RangeTable
	validXV8            *unicode.RangeTable
	ignored             *unicode.RangeTable
	disallowed          *unicode.RangeTable
	disallowedSTD3Valid *unicode.RangeTable
	deviationIgnored    *unicode.RangeTable

	mapped               map[rune]rune
	deviationMapped      map[rune]rune
	disallowedSTD3Mapped map[rune]rune

	mappedMulti               map[rune][]CodePoint
	deviationMultiMapped      map[rune][]CodePoint
	disallowedSTD3MultiMapped map[rune][]CodePoint
}

var _ ClassificationSource = (*TableSource)(nil)

// NewTableSource snapshots t into an immutable source. Range tables are
// normalized and copied, maps and replacement sequences cloned, so later
// modification of t does not affect the source.
func NewTableSource(t Tables) *TableSource {
	return &TableSource{
		version: t.UnicodeVersion,

		validAlways:         normalize(t.ValidAlways),
		validNV8:            normalize(t.ValidNV8),
		validXV8:            normalize(t.ValidXV8),
		ignored:             normalize(t.Ignored),
		disallowed:          normalize(t.Disallowed),
		disallowedSTD3Valid: normalize(t.DisallowedSTD3Valid),
		deviationIgnored:    normalize(t.DeviationIgnored),

		mapped:               maps.Clone(t.Mapped),
		deviationMapped:      maps.Clone(t.DeviationMapped),
		disallowedSTD3Mapped: maps.Clone(t.DisallowedSTD3Mapped),

		mappedMulti:               cloneMulti(t.MappedMulti),
		deviationMultiMapped:      cloneMulti(t.DeviationMultiMapped),
		disallowedSTD3MultiMapped: cloneMulti(t.DisallowedSTD3MultiMapped),
	}
}

func normalize(rt *unicode.RangeTable) *unicode.RangeTable {
	if rt == nil {
		return &unicode.RangeTable{}
	}
	return rangetable.Merge(rt)
}

func cloneMulti(m map[rune][]rune) map[rune][]CodePoint {
	out := make(map[rune][]CodePoint, len(m))
	for r, rs := range m {
		cps := make([]CodePoint, len(rs))
		for i, rr := range rs {
			cps[i] = CodePoint(rr)
		}
		out[r] = cps
	}
	return out
}

func (s *TableSource) UnicodeVersion() string { return s.version }

func (s *TableSource) IsValidAlways(cp CodePoint) bool {
	return unicode.Is(s.validAlways, rune(cp))
}

func (s *TableSource) IsValidNV8(cp CodePoint) bool {
	return unicode.Is(s.validNV8, rune(cp))
}

func (s *TableSource) IsValidXV8(cp CodePoint) bool {
	return unicode.Is(s.validXV8, rune(cp))
}

func (s *TableSource) IsIgnored(cp CodePoint) bool {
	return unicode.Is(s.ignored, rune(cp))
}

func (s *TableSource) IsDisallowed(cp CodePoint) bool {
	return unicode.Is(s.disallowed, rune(cp))
}

func (s *TableSource) IsDisallowedSTD3Valid(cp CodePoint) bool {
	return unicode.Is(s.disallowedSTD3Valid, rune(cp))
}

func (s *TableSource) IsDeviationIgnored(cp CodePoint) bool {
	return unicode.Is(s.deviationIgnored, rune(cp))
}

func (s *TableSource) Mapped(cp CodePoint) (CodePoint, bool) {
	r, ok := s.mapped[rune(cp)]
	return CodePoint(r), ok
}

func (s *TableSource) DeviationMapped(cp CodePoint) (CodePoint, bool) {
	r, ok := s.deviationMapped[rune(cp)]
	return CodePoint(r), ok
}

func (s *TableSource) DisallowedSTD3Mapped(cp CodePoint) (CodePoint, bool) {
	r, ok := s.disallowedSTD3Mapped[rune(cp)]
	return CodePoint(r), ok
}

func (s *TableSource) MappedMulti(cp CodePoint) ([]CodePoint, bool) {
	rs, ok := s.mappedMulti[rune(cp)]
	return rs, ok
}

func (s *TableSource) DeviationMultiMapped(cp CodePoint) ([]CodePoint, bool) {
	rs, ok := s.deviationMultiMapped[rune(cp)]
	return rs, ok
}

func (s *TableSource) DisallowedSTD3MultiMapped(cp CodePoint) ([]CodePoint, bool) {
	rs, ok := s.disallowedSTD3MultiMapped[rune(cp)]
	return rs, ok
}

// Verify checks the totality and exclusivity invariants: every valid scalar
// value must belong to exactly one of the thirteen categories. It reports
// the first code point claimed by no category or by more than one, naming
// the claimants. Intended as a load-time check after table construction; a
// source failing Verify will make the Mapper panic or misclassify.
func (s *TableSource) Verify() error {
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if utf16.IsSurrogate(r) {
			continue
		}
		kinds := s.categories(CodePoint(r))
		switch len(kinds) {
		case 1:
		case 0:
			return fmt.Errorf("uts46: %U matches no category", r)
		default:
			return fmt.Errorf("uts46: %U matches %d categories: %v", r, len(kinds), kinds)
		}
	}
	return nil
}

// categories returns every category claiming cp, in classification priority
// order.
func (s *TableSource) categories(cp CodePoint) []Kind {
	var kinds []Kind
	add := func(ok bool, k Kind) {
		if ok {
			kinds = append(kinds, k)
		}
	}
	has := func(m map[rune]rune) bool { _, ok := m[rune(cp)]; return ok }
	hasMulti := func(m map[rune][]CodePoint) bool { _, ok := m[rune(cp)]; return ok }

	add(s.IsValidAlways(cp), ValidAlways)
	add(s.IsValidNV8(cp), ValidNV8)
	add(s.IsValidXV8(cp), ValidXV8)
	add(has(s.mapped), Mapped)
	add(hasMulti(s.mappedMulti), MappedMulti)
	add(s.IsDisallowed(cp), Disallowed)
	add(s.IsIgnored(cp), Ignored)
	add(has(s.deviationMapped), DeviationMapped)
	add(hasMulti(s.deviationMultiMapped), DeviationMultiMapped)
	add(s.IsDisallowedSTD3Valid(cp), DisallowedSTD3Valid)
	add(has(s.disallowedSTD3Mapped), DisallowedSTD3Mapped)
	add(hasMulti(s.disallowedSTD3MultiMapped), DisallowedSTD3MultiMapped)
	add(s.IsDeviationIgnored(cp), DeviationIgnored)
	return kinds
}
