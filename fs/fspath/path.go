package fspath

import (
	"strings"

	"github.com/jmgilman/go/pathfs/errors"
)

// Path is an immutable filesystem location in the generic grammar.
//
// The zero value is the empty path using the host style.
type Path struct {
	s     string
	style Style
}

// New returns a host-style path for the generic string s.
// The string is not validated; use Parse to reject malformed input.
func New(s string) Path {
	return Path{s: s}
}

// NewStyle returns a path for the generic string s governed by style.
func NewStyle(style Style, s string) Path {
	return Path{s: s, style: style}
}

// Parse returns a host-style path for s, failing with CodeInvalidArgument
// when s cannot name a filesystem entity.
func Parse(s string) (Path, error) {
	p := New(s)
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// FromNative converts a host-native string into a Path.
func FromNative(native string) (Path, error) {
	return FromNativeStyle(StyleHost, native)
}

// FromNativeStyle converts a native string of the given style into a Path.
// Windows separators are rewritten to the generic separator.
func FromNativeStyle(style Style, native string) (Path, error) {
	p := Path{s: native, style: style}
	if p.windows() {
		p.s = strings.ReplaceAll(native, `\`, "/")
	}
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// Validate reports whether the path is well formed. The only malformed
// input is an embedded NUL byte, which no backend can represent.
func (p Path) Validate() error {
	if i := strings.IndexByte(p.s, 0); i >= 0 {
		return errors.Newf(errors.CodeInvalidArgument, "path %q contains a NUL byte at offset %d", p.s[:i], i)
	}
	return nil
}

// Style returns the resolved grammar of the path.
func (p Path) Style() Style {
	return p.style.resolve()
}

// Generic returns the path in the generic grammar.
func (p Path) Generic() string {
	if p.windows() {
		return strings.ReplaceAll(p.s, `\`, "/")
	}
	return p.s
}

// Native returns the path using the style's preferred separator.
func (p Path) Native() string {
	if p.windows() {
		return strings.ReplaceAll(p.s, "/", `\`)
	}
	return p.s
}

// String returns the generic form of the path.
func (p Path) String() string {
	return p.Generic()
}

// Empty reports whether the path has no characters.
func (p Path) Empty() bool {
	return p.s == ""
}

// Join appends each element in turn using path-join semantics.
//
// Exactly one separator is inserted between the left side and an element,
// unless the left side is empty, already ends with a separator, or is a
// bare drive such as "C:". An element that is absolute, or whose root-name
// differs from the left side's, replaces the left side entirely. An element
// with a root-directory but no root-name keeps only the left side's
// root-name. Empty elements are ignored.
func (p Path) Join(elems ...string) Path {
	for _, elem := range elems {
		p = p.join(Path{s: elem, style: p.style})
	}
	return p
}

// JoinPath is Join for a Path element.
func (p Path) JoinPath(q Path) Path {
	return p.join(q)
}

func (p Path) join(q Path) Path {
	if q.s == "" {
		return p
	}
	qn, qd := q.rootEnd()
	pn, _ := p.rootEnd()
	if q.IsAbsolute() || (qn > 0 && q.generic(q.s[:qn]) != p.generic(p.s[:pn])) {
		return p.with(q.s)
	}
	if qd > qn {
		return p.with(p.s[:pn] + q.s[qn:])
	}
	rel := q.s[qn:]
	if rel == "" {
		return p
	}
	if p.needsSeparator() {
		return p.with(p.s + string(GenericSeparator) + rel)
	}
	return p.with(p.s + rel)
}

func (p Path) needsSeparator() bool {
	if p.s == "" || p.style.isSeparator(p.s[len(p.s)-1]) {
		return false
	}
	return !(p.windows() && len(p.s) == 2 && p.s[1] == ':')
}

// Concat appends s verbatim; no separator is ever inserted.
func (p Path) Concat(s string) Path {
	return p.with(p.s + s)
}

// RemoveFilename returns the path without its final filename component,
// keeping the separator that preceded it.
func (p Path) RemoveFilename() Path {
	return p.with(p.s[:len(p.s)-len(p.Filename())])
}

// ReplaceFilename returns the path with its final filename replaced.
func (p Path) ReplaceFilename(name string) Path {
	return p.RemoveFilename().Join(name)
}

// ReplaceExtension returns the path with its extension replaced by ext.
// A leading dot is added to ext when missing; an empty ext removes the
// extension.
func (p Path) ReplaceExtension(ext string) Path {
	q := p.with(p.s[:len(p.s)-len(p.Extension())])
	if ext == "" {
		return q
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return q.Concat(ext)
}

// MarshalText implements encoding.TextMarshaler using the generic form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.Generic()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	q := Path{s: string(text), style: p.style}
	if err := q.Validate(); err != nil {
		return err
	}
	*p = q
	return nil
}

func (p Path) with(s string) Path {
	return Path{s: s, style: p.style}
}

func (p Path) windows() bool {
	return p.style.resolve() == StyleWindows
}

func (p Path) generic(s string) string {
	if p.windows() {
		return strings.ReplaceAll(s, `\`, "/")
	}
	return s
}
