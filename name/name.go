// Package name decodes the sfnt 'name' table and selects the most useful
// localized record for a given language preference.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"strings"
	"unicode/utf16"

	"github.com/lxman/fontoutline/internal/sfnterr"
	"github.com/lxman/fontoutline/mac"
	"golang.org/x/text/language"
)

const maxNameID = 25

// Table holds the decoded name-ID strings for a single (platform, language)
// record group.
type Table struct {
	Copyright                string
	Family                   string
	Subfamily                string
	Identifier               string
	FullName                 string
	Version                  string
	PostScriptName           string
	Trademark                string
	Manufacturer             string
	Designer                 string
	Description              string
	VendorURL                string
	DesignerURL              string
	License                  string
	LicenseURL               string
	TypographicFamily        string
	TypographicSubfamily     string
	MacFullName              string
	SampleText               string
	CIDFontName              string
	WWSFamily                string
	WWSSubfamily             string
	LightBackgroundPalette   string
	DarkBackgroundPalette    string
	VariationsPostScriptName string
}

func (t *Table) set(nameID int, val string) {
	switch nameID {
	case 0:
		t.Copyright = val
	case 1:
		t.Family = val
	case 2:
		t.Subfamily = val
	case 3:
		t.Identifier = val
	case 4:
		t.FullName = val
	case 5:
		t.Version = val
	case 6:
		t.PostScriptName = val
	case 7:
		t.Trademark = val
	case 8:
		t.Manufacturer = val
	case 9:
		t.Designer = val
	case 10:
		t.Description = val
	case 11:
		t.VendorURL = val
	case 12:
		t.DesignerURL = val
	case 13:
		t.License = val
	case 14:
		t.LicenseURL = val
	case 16:
		t.TypographicFamily = val
	case 17:
		t.TypographicSubfamily = val
	case 18:
		t.MacFullName = val
	case 19:
		t.SampleText = val
	case 20:
		t.CIDFontName = val
	case 21:
		t.WWSFamily = val
	case 22:
		t.WWSSubfamily = val
	case 23:
		t.LightBackgroundPalette = val
	case 24:
		t.DarkBackgroundPalette = val
	case 25:
		t.VariationsPostScriptName = val
	}
}

// record pairs a decoded Table with the BCP-47 language it was decoded
// under, so that Choose can run a language.Matcher over the group.
type record struct {
	lang  language.Tag
	table *Table
}

// PlatformRecords is the set of name records found for one sfnt platform
// (Windows or Macintosh).
type PlatformRecords []record

// Choose returns the record whose language best matches pref, along with the
// matcher's confidence. It returns (nil, language.No) if the group is empty.
func (recs PlatformRecords) Choose(pref language.Tag) (*Table, language.Confidence) {
	if len(recs) == 0 {
		return nil, language.No
	}
	tags := make([]language.Tag, len(recs))
	for i, r := range recs {
		tags[i] = r.lang
	}
	matcher := language.NewMatcher(tagsToInterfaces(tags))
	_, index, confidence := matcher.Match(pref)
	return recs[index].table, confidence
}

func tagsToInterfaces(tags []language.Tag) []language.Tag {
	// language.NewMatcher takes []language.Tag directly; kept as a named
	// helper so Choose reads the same way regardless of how the supported
	// set is built up.
	return tags
}

// Info contains the name records decoded for each platform sfnt reports.
type Info struct {
	Windows PlatformRecords
	Mac     PlatformRecords
}

// Decode extracts the localized metadata strings from a 'name' table.
func Decode(data []byte) (*Info, error) {
	if len(data) < 6 {
		return nil, sfnterr.Invalid("sfnt/name", "table too short")
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, sfnterr.Unsupported("sfnt/name", "table version")
	}

	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, sfnterr.Invalid("sfnt/name", "record count overruns table")
	}
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, sfnterr.Invalid("sfnt/name", "truncated language-tag header")
		}
		numLang := int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		endOfHeader += 2 + numLang*4
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, sfnterr.Invalid("sfnt/name", "invalid storage offset")
	}

	winGroups := make(map[language.Tag]*Table)
	macGroups := make(map[language.Tag]*Table)

	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		platformID := uint16(data[pos])<<8 | uint16(data[pos+1])
		encodingID := uint16(data[pos+2])<<8 | uint16(data[pos+3])
		languageID := uint16(data[pos+4])<<8 | uint16(data[pos+5])
		nameID := int(uint16(data[pos+6])<<8 | uint16(data[pos+7]))
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		if nameID > maxNameID {
			continue
		}
		if storageOffset+nameOffset+nameLen > len(data) {
			return nil, sfnterr.Invalid("sfnt/name", "string runs past end of table")
		}
		raw := data[storageOffset+nameOffset : storageOffset+nameOffset+nameLen]

		var val string
		var groups map[language.Tag]*Table
		var tag language.Tag
		switch platformID {
		case 0: // Unicode
			val = utf16Decode(raw)
			groups = winGroups
			tag = language.Und
		case 1: // Macintosh
			if encodingID != 0 {
				continue // only Mac Roman is supported
			}
			val = mac.Decode(raw)
			groups = macGroups
			tag = macLanguageTag(languageID)
		case 3: // Windows
			val = utf16Decode(raw)
			groups = winGroups
			tag = windowsLanguageTag(languageID)
		default:
			continue
		}
		if val == "" {
			continue
		}

		t := groups[tag]
		if t == nil {
			t = &Table{}
			groups[tag] = t
		}
		t.set(nameID, val)
	}

	return &Info{
		Windows: toRecords(winGroups),
		Mac:     toRecords(macGroups),
	}, nil
}

func toRecords(groups map[language.Tag]*Table) PlatformRecords {
	recs := make(PlatformRecords, 0, len(groups))
	for tag, t := range groups {
		recs = append(recs, record{lang: tag, table: t})
	}
	return recs
}

func utf16Decode(buf []byte) string {
	words := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		words = append(words, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(words))
}

// String renders the non-empty fields of a Table for debugging.
func (t *Table) String() string {
	var b strings.Builder
	write := func(label, val string) {
		if val != "" {
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(val)
			b.WriteString("\n")
		}
	}
	write("Family", t.Family)
	write("Subfamily", t.Subfamily)
	write("FullName", t.FullName)
	write("PostScriptName", t.PostScriptName)
	write("Version", t.Version)
	write("Copyright", t.Copyright)
	return b.String()
}
