// Package debug provides a real font fixture for use in unit tests,
// avoiding binary test data checked into the repository.
package debug

import "golang.org/x/image/font/gofont/goregular"

// GoRegularTTF returns the raw bytes of the Go Regular TrueType font. It
// exercises the same glyf/head/hmtx/cmap decode path as any other TrueType
// font, without requiring a binary fixture file in the repository.
func GoRegularTTF() []byte {
	return goregular.TTF
}
