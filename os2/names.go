package os2

import "fmt"

// String returns the human-readable subfamily tag for the weight class, the
// form used in font menu names ("Bold", "Light").
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "Extra Light"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Regular"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "Semi Bold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "Extra Bold"
	case WeightBlack:
		return "Black"
	default:
		return fmt.Sprintf("Weight(%d)", uint16(w))
	}
}

// SimpleString is like String, but collapses the Thin/Light/Medium family
// down to a single word suitable for deduplicating against a family name
// that already mentions the weight.
func (w Weight) SimpleString() string {
	switch {
	case w <= WeightExtraLight:
		return "Light"
	case w < WeightNormal:
		return "Light"
	case w == WeightNormal:
		return "Regular"
	case w < WeightBold:
		return "Medium"
	case w == WeightBold:
		return "Bold"
	default:
		return "Black"
	}
}

// String returns the human-readable subfamily tag for the width class.
func (w Width) String() string {
	switch w {
	case WidthUltraCondensed:
		return "Ultra Condensed"
	case WidthExtraCondensed:
		return "Extra Condensed"
	case WidthCondensed:
		return "Condensed"
	case WidthSemiCondensed:
		return "Semi Condensed"
	case WidthNormal:
		return "Normal"
	case WidthSemiExpanded:
		return "Semi Expanded"
	case WidthExpanded:
		return "Expanded"
	case WidthExtraExpanded:
		return "Extra Expanded"
	case WidthUltraExpanded:
		return "Ultra Expanded"
	default:
		return fmt.Sprintf("Width(%d)", uint16(w))
	}
}

// WeightFromString recovers a Weight from a font's PostScript FontInfo
// Weight string, for fonts that carry no OS/2 table (e.g. bare Type 1/CFF).
func WeightFromString(s string) Weight {
	switch s {
	case "Thin":
		return WeightThin
	case "ExtraLight", "Extra Light", "UltraLight":
		return WeightExtraLight
	case "Light":
		return WeightLight
	case "Medium":
		return WeightMedium
	case "SemiBold", "Semi Bold", "DemiBold":
		return WeightSemiBold
	case "Bold":
		return WeightBold
	case "ExtraBold", "Extra Bold", "UltraBold":
		return WeightExtraBold
	case "Black", "Heavy":
		return WeightBlack
	default:
		return WeightNormal
	}
}
