package name

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func u16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func buildNameTable(records [][6]uint16, strs [][]byte) []byte {
	var out []byte
	out = append(out, 0, 0) // version 0
	out = append(out, u16(uint16(len(records)))...)
	storageOffset := 6 + 12*len(records)
	out = append(out, u16(uint16(storageOffset))...)

	offset := 0
	var storage []byte
	for i, rec := range records {
		platformID, encodingID, languageID, nameID := rec[0], rec[1], rec[2], rec[3]
		s := strs[i]
		out = append(out, u16(platformID)...)
		out = append(out, u16(encodingID)...)
		out = append(out, u16(languageID)...)
		out = append(out, u16(nameID)...)
		out = append(out, u16(uint16(len(s)))...)
		out = append(out, u16(uint16(offset))...)
		storage = append(storage, s...)
		offset += len(s)
	}
	return append(out, storage...)
}

func utf16BE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, 0, byte(r))
	}
	return out
}

func TestDecodeWindowsRecord(t *testing.T) {
	data := buildNameTable(
		[][6]uint16{{3, 1, 0x0409, 1}, {3, 1, 0x0409, 4}},
		[][]byte{utf16BE("Roboto"), utf16BE("Roboto Regular")},
	)
	info, err := Decode(data)
	require.NoError(t, err)

	tbl, conf := info.Windows.Choose(language.AmericanEnglish)
	require.NotNil(t, tbl)
	require.Equal(t, "Roboto", tbl.Family)
	require.Equal(t, "Roboto Regular", tbl.FullName)
	require.GreaterOrEqual(t, conf, language.Low)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0, 1})
	require.Error(t, err)
}
