//go:build !windows

// Package util holds platform specific startup helpers.
package util

// LaunchedFromExplorer always reports false outside Windows.
func LaunchedFromExplorer() bool {
	return false
}
