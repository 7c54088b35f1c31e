// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

// A ClassificationSource provides the thirteen per-code-point category tests
// of the IDNA mapping table (UTS #46, section 5). Seven categories are pure
// membership sets; the remaining six map a code point to one or more
// replacement code points, with presence of a mapping doubling as the
// membership test.
//
// Totality contract: for every valid Unicode scalar value exactly one of the
// thirteen tests must succeed. The categories are exclusive by construction
// in the IDNA tables; a source violating this contract is corrupted, and the
// Mapper treats a code point claimed by no category as a fatal fault (panic),
// never as a reportable mapping error.
//
// Implementations must be immutable once handed to a Mapper. A conforming
// source is safe for concurrent use without locking.
type ClassificationSource interface {
	// IsValidAlways reports whether cp is valid under both IDNA2008 and
	// UTS #46.
	IsValidAlways(cp CodePoint) bool
	// IsValidNV8 reports whether cp is valid under UTS #46 but excluded
	// from all domain names under IDNA2008 (NV8).
	IsValidNV8(cp CodePoint) bool
	// IsValidXV8 reports whether cp is valid under UTS #46 but excluded
	// from some domain names under IDNA2008 (XV8).
	IsValidXV8(cp CodePoint) bool
	// IsIgnored reports whether cp is removed from the input.
	IsIgnored(cp CodePoint) bool
	// IsDisallowed reports whether cp is disallowed regardless of policy.
	IsDisallowed(cp CodePoint) bool
	// IsDisallowedSTD3Valid reports whether cp is valid except under
	// STD3 ASCII rules.
	IsDisallowedSTD3Valid(cp CodePoint) bool
	// IsDeviationIgnored reports whether cp is a deviation code point
	// whose mapping is the empty string.
	IsDeviationIgnored(cp CodePoint) bool

	// Mapped returns the single-code-point replacement for cp, if any.
	Mapped(cp CodePoint) (CodePoint, bool)
	// DeviationMapped returns the transitional single-code-point
	// replacement for a deviation code point, if any.
	DeviationMapped(cp CodePoint) (CodePoint, bool)
	// DisallowedSTD3Mapped returns the single-code-point replacement
	// applied when STD3 ASCII rules are off, if any.
	DisallowedSTD3Mapped(cp CodePoint) (CodePoint, bool)

	// MappedMulti returns the multi-code-point replacement for cp, if
	// any. A returned sequence is non-empty and must not be modified.
	MappedMulti(cp CodePoint) ([]CodePoint, bool)
	// DeviationMultiMapped returns the transitional multi-code-point
	// replacement for a deviation code point, if any.
	DeviationMultiMapped(cp CodePoint) ([]CodePoint, bool)
	// DisallowedSTD3MultiMapped returns the multi-code-point replacement
	// applied when STD3 ASCII rules are off, if any.
	DisallowedSTD3MultiMapped(cp CodePoint) ([]CodePoint, bool)

	// UnicodeVersion returns the version of the Unicode Character
	// Database the classification data was derived from. Informational;
	// the mapping algorithm does not consume it.
	UnicodeVersion() string
}
