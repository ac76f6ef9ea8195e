package fspath

import "strings"

// LexicallyNormal returns the path with "." segments removed and each
// "name/.." pair collapsed, without consulting any filesystem.
//
// A ".." that has nothing left to cancel is kept, including one directly
// after a root-directory. The result ends with a separator when the input
// named a directory through a trailing separator, "." or a collapsed "..",
// unless the final component is "..". An empty result becomes ".".
// Normalizing a normalized path returns it unchanged.
func (p Path) LexicallyNormal() Path {
	if p.s == "" {
		return p
	}
	prefix := p.RootName() + p.RootDirectory()

	var out []string
	dirMarker := false
	for _, seg := range p.relativeComponents() {
		switch {
		case seg == ".":
			dirMarker = true
		case seg == ".." && len(out) > 0 && out[len(out)-1] != "..":
			out = out[:len(out)-1]
			dirMarker = true
		default:
			out = append(out, seg)
			dirMarker = false
		}
	}
	if comps := p.Components(); len(comps) > 0 && comps[len(comps)-1] == "" {
		dirMarker = true
	}
	if len(out) == 0 || out[len(out)-1] == ".." {
		dirMarker = false
	}

	result := prefix + strings.Join(out, string(GenericSeparator))
	if dirMarker {
		result += string(GenericSeparator)
	}
	if result == "" {
		result = "."
	}
	return p.with(result)
}

// LexicallyRelative returns p expressed relative to base, or the empty
// path when no such expression exists (different root-names, or one
// absolute and the other not). Neither path is resolved against a
// filesystem.
func (p Path) LexicallyRelative(base Path) Path {
	if p.RootName() != base.RootName() ||
		p.IsAbsolute() != base.IsAbsolute() ||
		(!p.HasRootDirectory() && base.HasRootDirectory()) {
		return p.with("")
	}

	a, b := p.Components(), base.Components()
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i == len(a) && i == len(b) {
		return p.with(".")
	}

	n := 0
	for _, seg := range b[i:] {
		switch seg {
		case "..":
			n--
		case ".", "":
		default:
			n++
		}
	}
	if n < 0 {
		return p.with("")
	}
	if n == 0 && (i == len(a) || a[i] == "") {
		return p.with(".")
	}

	result := p.with("")
	for range n {
		result = result.Join("..")
	}
	return result.Join(a[i:]...)
}

// LexicallyProximate is LexicallyRelative, falling back to p when no
// relative form exists.
func (p Path) LexicallyProximate(base Path) Path {
	if r := p.LexicallyRelative(base); !r.Empty() {
		return r
	}
	return p
}

// Absolute composes p with an absolute base without touching any
// filesystem. An absolute p is returned unchanged; a p with only a
// root-name takes base's directory part; a p with only a root-directory
// takes base's root-name; anything else is joined onto base. Neither
// symlinks nor "." and ".." are resolved.
func Absolute(p, base Path) Path {
	if p.Empty() {
		return base
	}
	switch {
	case p.IsAbsolute():
		return p
	case p.HasRootName() && !p.HasRootDirectory():
		return p.RootPath().Join(base.RootDirectory()).JoinPath(base.RelativePath()).JoinPath(p.RelativePath())
	case p.HasRootDirectory():
		return p.with(base.RootName() + p.s)
	default:
		return base.JoinPath(p)
	}
}
