// Copyright 2026 The UTS46 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46_test

import (
	"fmt"
	"unicode"

	"github.com/idnakit/uts46"
)

// exampleSource covers just the code points the examples use; a production
// source is generated from the full IDNA mapping table.
func exampleSource() *uts46.TableSource {
	return uts46.NewTableSource(uts46.Tables{
		UnicodeVersion: "15.1.0",
		ValidAlways: &unicode.RangeTable{
			R16: []unicode.Range16{
				{Lo: '-', Hi: '.', Stride: 1},
				{Lo: '0', Hi: '9', Stride: 1},
				{Lo: 'a', Hi: 'z', Stride: 1},
			},
			LatinOffset: 3,
		},
		DisallowedSTD3Valid: &unicode.RangeTable{
			R16:         []unicode.Range16{{Lo: '_', Hi: '_', Stride: 1}},
			LatinOffset: 1,
		},
		Mapped: func() map[rune]rune {
			m := make(map[rune]rune)
			for r := 'A'; r <= 'Z'; r++ {
				m[r] = r + 0x20
			}
			return m
		}(),
		DeviationMultiMapped: map[rune][]rune{
			'ß': {'s', 's'},
		},
	})
}

func ExampleMapper_Map() {
	m := uts46.NewMapper(exampleSource())

	mapped, err := m.Map("Example.COM")
	fmt.Println(mapped, err)

	// Nontransitional processing keeps the sharp s.
	mapped, err = m.Map("straße.de")
	fmt.Println(mapped, err)

	// Output:
	// example.com <nil>
	// straße.de <nil>
}

func ExampleMapper_MapWithOptions() {
	m := uts46.NewMapper(exampleSource())

	mapped, _ := m.MapWithOptions(true, true, "straße.de")
	fmt.Println(mapped)

	// Underscore is rejected under STD3 ASCII rules only.
	mapped, _ = m.MapWithOptions(false, false, "host_name")
	fmt.Println(mapped)

	_, err := m.MapWithOptions(true, false, "host_name")
	fmt.Println(err)

	// Output:
	// strasse.de
	// host_name
	// uts46: U+005F at index 4: Disallowed code point in input.
}

func ExampleMappingError() {
	m := uts46.NewMapper(exampleSource())

	_, err := m.Map("a_b_c")
	if me, ok := uts46.AsMappingError(err); ok {
		fmt.Printf("%d rejections\n", len(me.Errors))
		fmt.Printf("partial: %s\n", me.Partial)
		fmt.Printf("original: %s\n", me.UnsafeOriginalInput())
	}

	// Output:
	// 2 rejections
	// partial: a�b�c
	// original: a_b_c
}
