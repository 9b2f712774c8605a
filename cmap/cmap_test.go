package cmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func u32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

func buildFormat4(segments [][4]int) []byte {
	// segments: [startCode, endCode, idDelta, idRangeOffset]
	segCount := len(segments)
	var tail []byte
	var data []byte
	data = append(data, u16(4)...)
	data = append(data, u16(0)...) // length placeholder
	data = append(data, u16(0)...) // language
	data = append(data, u16(uint16(segCount*2))...)
	data = append(data, u16(0)...) // searchRange
	data = append(data, u16(0)...) // entrySelector
	data = append(data, u16(0)...) // rangeShift
	for _, s := range segments {
		data = append(data, u16(uint16(s[1]))...)
	}
	data = append(data, u16(0)...) // reservedPad
	for _, s := range segments {
		data = append(data, u16(uint16(s[0]))...)
	}
	for _, s := range segments {
		data = append(data, u16(uint16(s[2]))...)
	}
	for _, s := range segments {
		data = append(data, u16(uint16(s[3]))...)
	}
	data = append(data, tail...)
	total := len(data)
	data[2] = byte(total >> 8)
	data[3] = byte(total)
	return data
}

func TestFormat4SingleSegment(t *testing.T) {
	// A-Z (0x41-0x5A) -> glyph 100 via idDelta=35 (100-65); terminator at 0xFFFF.
	data := buildFormat4([][4]int{
		{0x41, 0x5A, 35, 0},
		{0xFFFF, 0xFFFF, 0, 0},
	})
	sub, err := decodeFormat4(data, nil)
	require.NoError(t, err)
	require.Equal(t, uint16(100), uint16(sub.Lookup(0x41)))
	require.Equal(t, uint16(125), uint16(sub.Lookup(0x5A)))
	require.Equal(t, uint16(0), uint16(sub.Lookup(0x40)))
}

func TestFormat12ConstantVsSequential(t *testing.T) {
	in12 := []byte{}
	in12 = append(in12, u16(12)...)
	in12 = append(in12, u16(0)...)
	in12 = append(in12, u32(16+12)...)
	in12 = append(in12, u32(0)...)
	in12 = append(in12, u32(1)...)
	in12 = append(in12, u32(0x41)...)
	in12 = append(in12, u32(0x45)...)
	in12 = append(in12, u32(200)...)

	sub12, err := decodeFormat12(in12, nil)
	require.NoError(t, err)
	require.Equal(t, uint16(200), uint16(sub12.Lookup(0x41)))
	require.Equal(t, uint16(204), uint16(sub12.Lookup(0x45)))

	in13 := []byte{}
	in13 = append(in13, u16(13)...)
	in13 = append(in13, u16(0)...)
	in13 = append(in13, u32(16+12)...)
	in13 = append(in13, u32(0)...)
	in13 = append(in13, u32(1)...)
	in13 = append(in13, u32(0x41)...)
	in13 = append(in13, u32(0x45)...)
	in13 = append(in13, u32(200)...)

	sub13, err := decodeFormat13(in13, nil)
	require.NoError(t, err)
	require.Equal(t, uint16(200), uint16(sub13.Lookup(0x41)))
	require.Equal(t, uint16(200), uint16(sub13.Lookup(0x45)))
}

func TestTableGetBestPrefersFullUnicode(t *testing.T) {
	format0 := append([]byte{0, 0, 1, 6, 0, 0}, make([]byte, 256)...) // length 262

	var dir []byte
	dir = append(dir, u16(0)...) // version
	dir = append(dir, u16(2)...) // numTables
	headerLen := 4 + 8*2

	format12 := []byte{}
	format12 = append(format12, u16(12)...)
	format12 = append(format12, u16(0)...)
	format12 = append(format12, u32(16+12)...)
	format12 = append(format12, u32(0)...)
	format12 = append(format12, u32(1)...)
	format12 = append(format12, u32(0x41)...)
	format12 = append(format12, u32(0x41)...)
	format12 = append(format12, u32(5)...)

	off0 := uint32(headerLen)
	off12 := off0 + uint32(len(format0))

	dir = append(dir, u16(1)...) // platform Macintosh
	dir = append(dir, u16(0)...) // encoding 0
	dir = append(dir, u32(off0)...)

	dir = append(dir, u16(3)...)  // platform Windows
	dir = append(dir, u16(10)...) // encoding 10 (full unicode)
	dir = append(dir, u32(off12)...)

	dir = append(dir, format0...)
	dir = append(dir, format12...)

	table, err := Decode(dir)
	require.NoError(t, err)

	best, err := table.GetBest()
	require.NoError(t, err)
	require.Equal(t, uint16(5), uint16(best.Lookup(0x41)))
}
