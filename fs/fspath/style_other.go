//go:build !windows

package fspath

const hostStyle = StylePosix
