// Package fspath provides Path, an immutable value describing a filesystem
// location in a host-independent grammar.
//
// A Path stores its text in the generic grammar, where '/' separates
// components, and knows which platform Style governs its root-name rules.
// The text is decomposed on demand into three parts:
//
//   - root-name: a drive ("C:", Windows only) or a network name ("//host")
//   - root-directory: the separator run following the root-name, which makes
//     the path absolute on POSIX
//   - relative-path: the remaining components, which may include "." and
//     ".." (never resolved implicitly)
//
// # Codec
//
// FromNative accepts a host-native string and Native renders one. On Windows
// both '/' and '\' separate components and Native emits '\'. On every other
// host the native and generic forms are identical.
//
//	p, err := fspath.FromNative(`C:\Users\me\notes.txt`)
//	p.Generic() // "C:/Users/me/notes.txt" on Windows
//
// # Comparison
//
// Paths compare by components, not by raw text: "a//b/" and "a/b" are Equal.
// The built-in == operator compares storage and should not be used as path
// equality.
//
// # Concurrency
//
// Path values are never mutated after construction. Every method that
// "changes" a path returns a new value, so a Path may be shared freely
// between goroutines.
package fspath
