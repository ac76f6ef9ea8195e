package fspath

// Style selects the grammar used to find a path's root-name and the
// separator emitted by Native.
type Style uint8

const (
	// StyleHost resolves to the grammar of the platform the program runs on.
	StyleHost Style = iota
	// StylePosix recognises "//name" as the only root-name form and '/' as
	// the only separator.
	StylePosix
	// StyleWindows additionally recognises drive letters ("C:") as
	// root-names and accepts '\' as a separator.
	StyleWindows
)

// GenericSeparator separates components in the generic grammar.
const GenericSeparator = '/'

// String returns the name of the style.
func (s Style) String() string {
	switch s.resolve() {
	case StyleWindows:
		return "windows"
	default:
		return "posix"
	}
}

// Separator returns the preferred native separator for the style.
func (s Style) Separator() byte {
	if s.resolve() == StyleWindows {
		return '\\'
	}
	return '/'
}

func (s Style) resolve() Style {
	if s == StyleHost {
		return hostStyle
	}
	return s
}

func (s Style) isSeparator(c byte) bool {
	return c == '/' || (c == '\\' && s.resolve() == StyleWindows)
}
