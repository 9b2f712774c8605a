package cff

import "github.com/lxman/fontoutline/internal/sfnterr"

func invalidSince(reason string) error {
	return sfnterr.Invalid("cff", reason)
}

func unsupported(feature string) error {
	return sfnterr.Unsupported("cff", feature)
}

var errCorruptDict = invalidSince("corrupt dict")
