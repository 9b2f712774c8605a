package type1

import "github.com/lxman/fontoutline/internal/sfnterr"

func invalidSince(reason string) error {
	return sfnterr.Invalid("type1", reason)
}

func unsupported(feature string) error {
	return sfnterr.Unsupported("type1", feature)
}
