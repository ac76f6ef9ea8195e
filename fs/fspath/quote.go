package fspath

import (
	"strings"

	"github.com/jmgilman/go/pathfs/errors"
)

const (
	quoteDelim  = '"'
	quoteEscape = '&'
)

// Quote renders the path in its stream form: the generic string between
// double quotes, with '"' and '&' escaped by a preceding '&'. The form
// survives embedding in whitespace-separated text.
func (p Path) Quote() string {
	g := p.Generic()
	var b strings.Builder
	b.Grow(len(g) + 2)
	b.WriteByte(quoteDelim)
	for i := 0; i < len(g); i++ {
		c := g[i]
		if c == quoteDelim || c == quoteEscape {
			b.WriteByte(quoteEscape)
		}
		b.WriteByte(c)
	}
	b.WriteByte(quoteDelim)
	return b.String()
}

// Unquote parses the stream form produced by Quote. Text that does not
// start with '"' is taken verbatim.
func Unquote(s string) (Path, error) {
	if s == "" || s[0] != quoteDelim {
		return Parse(s)
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case quoteEscape:
			i++
			if i == len(s) {
				return Path{}, errors.Newf(errors.CodeInvalidArgument, "dangling escape in %q", s)
			}
			b.WriteByte(s[i])
		case quoteDelim:
			if i != len(s)-1 {
				return Path{}, errors.Newf(errors.CodeInvalidArgument, "trailing text after quoted path %q", s)
			}
			return Parse(b.String())
		default:
			b.WriteByte(c)
		}
	}
	return Path{}, errors.Newf(errors.CodeInvalidArgument, "unterminated quoted path %q", s)
}
