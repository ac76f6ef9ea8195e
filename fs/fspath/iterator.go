package fspath

import (
	"iter"
	"slices"
)

// All yields the components of the path from left to right: the
// root-name, "/" for the root-directory, each relative segment, and a
// final "" when the path ends with a separator after a relative segment.
//
// Components are computed as they are yielded; the sequence may be ranged
// over any number of times.
func (p Path) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		n, d := p.rootEnd()
		if n > 0 && !yield(p.generic(p.s[:n])) {
			return
		}
		if d > n && !yield(string(GenericSeparator)) {
			return
		}
		s := p.s
		for i := d; i < len(s); {
			j := i
			for j < len(s) && !p.style.isSeparator(s[j]) {
				j++
			}
			if !yield(s[i:j]) {
				return
			}
			k := j
			for k < len(s) && p.style.isSeparator(s[k]) {
				k++
			}
			if k == len(s) && j < len(s) {
				yield("")
				return
			}
			i = k
		}
	}
}

// Backward yields the same components as All in reverse order.
func (p Path) Backward() iter.Seq[string] {
	comps := p.Components()
	return func(yield func(string) bool) {
		for i := len(comps) - 1; i >= 0; i-- {
			if !yield(comps[i]) {
				return
			}
		}
	}
}

// Components returns the components yielded by All.
func (p Path) Components() []string {
	return slices.Collect(p.All())
}

// relativeComponents returns the relative segments without the trailing
// directory marker.
func (p Path) relativeComponents() []string {
	_, d := p.rootEnd()
	rel := p.with(p.s[d:])
	comps := rel.Components()
	if n := len(comps); n > 0 && comps[n-1] == "" {
		comps = comps[:n-1]
	}
	return comps
}

// Iterator is a bidirectional cursor over the components of a path.
//
// A new Iterator is positioned before the first component; Next moves
// forward and Prev moves backward. Both report whether the cursor rests on
// a component afterwards.
type Iterator struct {
	comps []string
	pos   int
}

// Iter returns an Iterator positioned before the first component.
func (p Path) Iter() *Iterator {
	return &Iterator{comps: p.Components(), pos: -1}
}

// IterEnd returns an Iterator positioned after the last component, ready
// for backward traversal with Prev.
func (p Path) IterEnd() *Iterator {
	comps := p.Components()
	return &Iterator{comps: comps, pos: len(comps)}
}

// Next advances the cursor.
func (it *Iterator) Next() bool {
	if it.pos < len(it.comps) {
		it.pos++
	}
	return it.pos < len(it.comps)
}

// Prev moves the cursor back.
func (it *Iterator) Prev() bool {
	if it.pos >= 0 {
		it.pos--
	}
	return it.pos >= 0
}

// Value returns the component under the cursor, or "" when the cursor is
// outside the sequence.
func (it *Iterator) Value() string {
	if it.pos < 0 || it.pos >= len(it.comps) {
		return ""
	}
	return it.comps[it.pos]
}

// Index returns the cursor position; -1 is before the first component.
func (it *Iterator) Index() int {
	return it.pos
}

// Rest returns the components from the cursor to the end. Combined with
// CompareComponents it compares suffixes of two paths.
func (it *Iterator) Rest() []string {
	start := max(it.pos, 0)
	return slices.Clone(it.comps[start:])
}

// Reset moves the cursor before the first component.
func (it *Iterator) Reset() {
	it.pos = -1
}
