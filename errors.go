// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// disallowedMessage is the message recorded for every rejected code point,
// whether it is disallowed outright or only under STD3 ASCII rules.
const disallowedMessage = "Disallowed code point in input."

// A CodePointError describes a single code point rejected during a mapping
// pass.
type CodePointError struct {
	// Index is the byte offset of the rejected code point in the original
	// input string.
	Index int
	// Message is a human-readable description of the rejection.
	Message string
	// CodePoint is the rejected code point.
	CodePoint CodePoint
}

// Error implements the error interface.
func (e CodePointError) Error() string {
	return fmt.Sprintf("%s at index %d: %s", e.CodePoint, e.Index, e.Message)
}

// Compare orders by Index, then Message, then CodePoint.
func (e CodePointError) Compare(o CodePointError) int {
	if c := cmp.Compare(e.Index, o.Index); c != 0 {
		return c
	}
	if c := cmp.Compare(e.Message, o.Message); c != 0 {
		return c
	}
	return e.CodePoint.Compare(o.CodePoint)
}

// A MappingError is the aggregate failure of a bulk mapping pass. The scan
// never stops at the first rejection, so Errors holds every rejected code
// point of the input, sorted ascending by Index. Partial is the mapped input
// with each rejected code point replaced by U+FFFD.
//
// Both fields are fixed at construction and must not be modified.
type MappingError struct {
	Errors  []CodePointError
	Partial string
}

// Error returns a compact summary of the rejections.
func (e *MappingError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "uts46: mapping failed"
	case 1:
		return "uts46: " + e.Errors[0].Error()
	default:
		return fmt.Sprintf("uts46: %s (and %d more)", e.Errors[0].Error(), len(e.Errors)-1)
	}
}

// UnsafeOriginalInput reconstructs the original input from Partial by
// substituting each U+FFFD placeholder, left to right, with the code point of
// the corresponding entry of Errors.
//
// The result is for diagnostics only. Partial uses U+FFFD precisely so that
// rejected code points cannot be rendered; never show the reconstructed
// string to end users in security-sensitive contexts such as anti-spoofing
// UIs. If U+FFFD occurs naturally in the original input, that occurrence is
// indistinguishable from a placeholder and the reconstruction will be wrong.
func (e *MappingError) UnsafeOriginalInput() string {
	var b strings.Builder
	b.Grow(len(e.Partial))
	next := 0
	for _, r := range e.Partial {
		if r == '�' && next < len(e.Errors) {
			b.WriteRune(rune(e.Errors[next].CodePoint))
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AsMappingError extracts a *MappingError from an error returned by Map or
// MapWithOptions.
func AsMappingError(err error) (*MappingError, bool) {
	if err == nil {
		return nil, false
	}
	var me *MappingError
	if errors.As(err, &me) && me != nil {
		return me, true
	}
	return nil, false
}
