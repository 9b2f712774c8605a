package name

import "golang.org/x/text/language"

// windowsLanguageTag maps the handful of Microsoft LANGIDs that occur in
// practice in font 'name' tables to a BCP-47 tag. Unrecognised IDs map to
// language.Und, which the matcher in Choose still ranks (just with low
// confidence) rather than discarding the record outright.
func windowsLanguageTag(id uint16) language.Tag {
	if t, ok := windowsLangByID[id]; ok {
		return t
	}
	return language.Und
}

var windowsLangByID = map[uint16]language.Tag{
	0x0409: language.AmericanEnglish,
	0x0809: language.BritishEnglish,
	0x0c09: language.MustParse("en-AU"),
	0x1009: language.MustParse("en-CA"),
	0x0407: language.German,
	0x0c07: language.MustParse("de-AT"),
	0x040c: language.French,
	0x0c0c: language.MustParse("fr-CA"),
	0x0410: language.Italian,
	0x040a: language.MustParse("es-ES"),
	0x080a: language.MustParse("es-MX"),
	0x0416: language.MustParse("pt-BR"),
	0x0816: language.MustParse("pt-PT"),
	0x0413: language.Dutch,
	0x041d: language.MustParse("sv-SE"),
	0x0414: language.MustParse("nb-NO"),
	0x0406: language.Danish,
	0x040b: language.MustParse("fi-FI"),
	0x0415: language.Polish,
	0x0419: language.Russian,
	0x041f: language.Turkish,
	0x0411: language.Japanese,
	0x0412: language.Korean,
	0x0804: language.SimplifiedChinese,
	0x0404: language.TraditionalChinese,
	0x0401: language.MustParse("ar-SA"),
	0x040d: language.Hebrew,
	0x0405: language.Czech,
	0x040e: language.Hungarian,
	0x0408: language.Greek,
}

// macLanguageTag maps the Apple "Macintosh" platform's language codes.
// Only the languages that appear with any frequency in surviving Mac-platform
// name records are listed; everything else falls back to English, which is
// the Macintosh platform's own default language (code 0).
func macLanguageTag(id uint16) language.Tag {
	if t, ok := macLangByID[id]; ok {
		return t
	}
	return language.English
}

var macLangByID = map[uint16]language.Tag{
	0:  language.English,
	1:  language.French,
	2:  language.German,
	3:  language.Italian,
	4:  language.Dutch,
	5:  language.MustParse("sv-SE"),
	6:  language.MustParse("es-ES"),
	7:  language.Danish,
	8:  language.Portuguese,
	9:  language.Norwegian,
	11: language.Japanese,
	19: language.SimplifiedChinese,
	23: language.Russian,
	32: language.Korean,
	33: language.TraditionalChinese,
}
