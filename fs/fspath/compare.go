package fspath

import (
	"cmp"
	"strings"
)

// Compare orders two paths by their decomposition: root-name first, then
// root-directory presence (absent sorts first), then the relative
// components element by element, then component count. It returns -1, 0
// or +1. A trailing separator and repeated separators do not take part.
func Compare(a, b Path) int {
	if c := strings.Compare(a.RootName(), b.RootName()); c != 0 {
		return c
	}
	if ad, bd := a.HasRootDirectory(), b.HasRootDirectory(); ad != bd {
		if ad {
			return 1
		}
		return -1
	}
	return CompareComponents(a.relativeComponents(), b.relativeComponents())
}

// Compare is shorthand for Compare(p, q).
func (p Path) Compare(q Path) int {
	return Compare(p, q)
}

// Equal reports whether p and q have the same decomposition.
func (p Path) Equal(q Path) bool {
	return Compare(p, q) == 0
}

// Less reports whether p sorts before q.
func (p Path) Less(q Path) bool {
	return Compare(p, q) < 0
}

// CompareComponents compares two component sequences element-wise with
// ordinary string ordering; a strict prefix sorts first. The sequences may
// be any sub-range of Components or Iterator.Rest.
func CompareComponents(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// LexicographicalLess reports whether component range a sorts before b.
func LexicographicalLess(a, b []string) bool {
	return CompareComponents(a, b) < 0
}
