package fspath

import "strings"

// rootEnd returns the byte offsets where the root-name and the
// root-directory end. Both equal zero for a purely relative path.
func (p Path) rootEnd() (nameEnd, dirEnd int) {
	s := p.s
	switch {
	case p.windows() && len(s) >= 2 && s[1] == ':' && isLetter(s[0]):
		nameEnd = 2
	case len(s) > 2 && p.style.isSeparator(s[0]) && p.style.isSeparator(s[1]) && !p.style.isSeparator(s[2]):
		nameEnd = 3
		for nameEnd < len(s) && !p.style.isSeparator(s[nameEnd]) {
			nameEnd++
		}
	}
	dirEnd = nameEnd
	for dirEnd < len(s) && p.style.isSeparator(s[dirEnd]) {
		dirEnd++
	}
	return nameEnd, dirEnd
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// RootName returns the drive or network name, in generic form.
func (p Path) RootName() string {
	n, _ := p.rootEnd()
	return p.generic(p.s[:n])
}

// HasRootName reports whether the path has a root-name.
func (p Path) HasRootName() bool {
	n, _ := p.rootEnd()
	return n > 0
}

// RootDirectory returns "/" when the path has a root-directory.
func (p Path) RootDirectory() string {
	if p.HasRootDirectory() {
		return string(GenericSeparator)
	}
	return ""
}

// HasRootDirectory reports whether a separator follows the root-name.
func (p Path) HasRootDirectory() bool {
	n, d := p.rootEnd()
	return d > n
}

// RootPath returns the root-name followed by the root-directory.
func (p Path) RootPath() Path {
	return p.with(p.RootName() + p.RootDirectory())
}

// HasRootPath reports whether the path has a root-name or a root-directory.
func (p Path) HasRootPath() bool {
	_, d := p.rootEnd()
	return d > 0
}

// RelativePath returns everything after the root path.
func (p Path) RelativePath() Path {
	_, d := p.rootEnd()
	return p.with(p.s[d:])
}

// HasRelativePath reports whether anything follows the root path.
func (p Path) HasRelativePath() bool {
	_, d := p.rootEnd()
	return d < len(p.s)
}

// ParentPath returns the path with its last component removed. A path
// without a relative part is its own parent.
func (p Path) ParentPath() Path {
	_, d := p.rootEnd()
	if d == len(p.s) {
		return p
	}
	end := len(p.s) - len(p.Filename())
	for end > d && p.style.isSeparator(p.s[end-1]) {
		end--
	}
	return p.with(p.s[:end])
}

// HasParentPath reports whether ParentPath is non-empty.
func (p Path) HasParentPath() bool {
	return !p.ParentPath().Empty()
}

// Filename returns the last component of the relative path. It is empty
// when the relative path is empty or ends with a separator.
func (p Path) Filename() string {
	_, d := p.rootEnd()
	rel := p.s[d:]
	i := len(rel) - 1
	for i >= 0 && !p.style.isSeparator(rel[i]) {
		i--
	}
	return rel[i+1:]
}

// HasFilename reports whether Filename is non-empty.
func (p Path) HasFilename() bool {
	return p.Filename() != ""
}

// Stem returns the filename without its extension.
func (p Path) Stem() string {
	name := p.Filename()
	return name[:len(name)-len(p.Extension())]
}

// HasStem reports whether Stem is non-empty.
func (p Path) HasStem() bool {
	return p.Stem() != ""
}

// Extension returns the filename from its last '.' inclusive. It is empty
// when the filename has no dot, when the only dot leads the name, and for
// the special names "." and "..".
func (p Path) Extension() string {
	name := p.Filename()
	if name == "." || name == ".." {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// HasExtension reports whether Extension is non-empty.
func (p Path) HasExtension() bool {
	return p.Extension() != ""
}

// IsAbsolute reports whether the path identifies a location without
// reference to a current directory. POSIX requires a root-directory;
// Windows requires both a root-name and a root-directory.
func (p Path) IsAbsolute() bool {
	n, d := p.rootEnd()
	if p.windows() {
		return n > 0 && d > n
	}
	return d > n
}

// IsRelative reports whether the path is not absolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}
