// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the IDNA mapping table category of a code point as defined
// in UTS #46, section 5, with the single- and multi-code-point mapping rows
// kept distinct.
type Kind int

const (
	// ValidAlways code points are valid under both UTS #46 and IDNA2008.
	ValidAlways Kind = iota

	// ValidNV8 code points are valid under UTS #46 but excluded from all
	// domain names by IDNA2008.
	ValidNV8

	// ValidXV8 code points are valid under UTS #46 but excluded from some
	// domain names by IDNA2008.
	ValidXV8

	// Mapped code points are replaced by a single code point.
	Mapped

	// MappedMulti code points are replaced by a sequence of code points.
	MappedMulti

	// Disallowed code points are rejected regardless of policy.
	Disallowed

	// Ignored code points are removed from the input.
	Ignored

	// DeviationMapped code points are replaced by a single code point
	// under transitional processing and kept unchanged otherwise.
	DeviationMapped

	// DeviationMultiMapped code points are replaced by a sequence of code
	// points under transitional processing and kept unchanged otherwise.
	DeviationMultiMapped

	// DisallowedSTD3Valid code points are rejected under STD3 ASCII rules
	// and kept unchanged otherwise.
	DisallowedSTD3Valid

	// DisallowedSTD3Mapped code points are rejected under STD3 ASCII
	// rules and replaced by a single code point otherwise.
	DisallowedSTD3Mapped

	// DisallowedSTD3MultiMapped code points are rejected under STD3 ASCII
	// rules and replaced by a sequence of code points otherwise.
	DisallowedSTD3MultiMapped

	// DeviationIgnored code points are deviation code points whose
	// mapping is the empty string; they are removed from the input.
	DeviationIgnored
)

// A CodePointStatus is the classification of a single code point: its table
// category and, for the mapped and deviation-mapped kinds, the non-empty
// replacement sequence. Mapping is nil for all other kinds and must be
// treated as read-only.
type CodePointStatus struct {
	Kind    Kind
	Mapping []CodePoint
}
