package head

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadIgnoresBadMagic(t *testing.T) {
	enc := binaryHead{
		Version:     0x00010000,
		MagicNumber: 0xdeadbeef, // deliberately wrong
		UnitsPerEm:  1000,
	}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, enc))

	info, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), info.MagicNumber)
	require.Equal(t, uint16(1000), info.UnitsPerEm)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	enc := binaryHead{Version: 2, UnitsPerEm: 1000}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, enc))

	_, err := Read(&buf)
	require.Error(t, err)
}

func TestReadRejectsZeroUnitsPerEm(t *testing.T) {
	enc := binaryHead{Version: 0x00010000, MagicNumber: 0x5F0F3CF5}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, enc))

	_, err := Read(&buf)
	require.Error(t, err)
}

func TestReadStyleFlags(t *testing.T) {
	enc := binaryHead{
		Version:     0x00010000,
		MagicNumber: 0x5F0F3CF5,
		UnitsPerEm:  2048,
		MacStyle:    1<<0 | 1<<1, // bold + italic
	}
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, enc))

	info, err := Read(&buf)
	require.NoError(t, err)
	require.True(t, info.IsBold)
	require.True(t, info.IsItalic)
	require.False(t, info.IsCondensed)
}
