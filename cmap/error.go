package cmap

import "github.com/lxman/fontoutline/internal/sfnterr"

var (
	errMalformedSubtable     = sfnterr.Invalid("sfnt/cmap", "malformed subtable")
	errUnsupportedCmapFormat = sfnterr.Unsupported("sfnt/cmap", "subtable format")
)
