package header

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDirectory(scalerType uint32, records map[string]Record) []byte {
	var buf bytes.Buffer
	put32 := func(v uint32) { buf.WriteByte(byte(v >> 24)); buf.WriteByte(byte(v >> 16)); buf.WriteByte(byte(v >> 8)); buf.WriteByte(byte(v)) }
	put16 := func(v uint16) { buf.WriteByte(byte(v >> 8)); buf.WriteByte(byte(v)) }

	put32(scalerType)
	put16(uint16(len(records)))
	put16(0) // searchRange
	put16(0) // entrySelector
	put16(0) // rangeShift

	for name, rec := range records {
		buf.WriteString(name)
		put32(0) // checksum, ignored
		put32(rec.Offset)
		put32(rec.Length)
	}
	return buf.Bytes()
}

func TestReadLastTagWins(t *testing.T) {
	// Two records for the same tag "head": the directory lists it twice
	// with different offsets, and the later one should win.
	var buf bytes.Buffer
	put32 := func(v uint32) { buf.WriteByte(byte(v >> 24)); buf.WriteByte(byte(v >> 16)); buf.WriteByte(byte(v >> 8)); buf.WriteByte(byte(v)) }
	put16 := func(v uint16) { buf.WriteByte(byte(v >> 8)); buf.WriteByte(byte(v)) }

	put32(ScalerTypeTrueType)
	put16(2)
	put16(0)
	put16(0)
	put16(0)

	buf.WriteString("head")
	put32(0)
	put32(44) // first (stale) offset
	put32(10)

	buf.WriteString("head")
	put32(0)
	put32(64) // second (winning) offset
	put32(20)

	data := make([]byte, 84)
	copy(data, buf.Bytes())

	info, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, info.Toc, 1)
	require.Equal(t, Record{Offset: 64, Length: 20}, info.Toc["head"])
}

func TestReadRejectsUnknownScalerType(t *testing.T) {
	data := buildDirectory(0xdeadbeef, nil)
	_, err := Read(bytes.NewReader(data))
	require.Error(t, err)
}

func TestReadRejectsTruncatedDirectory(t *testing.T) {
	data := []byte{0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}
	_, err := Read(bytes.NewReader(data))
	require.Error(t, err)
}

func TestHasAndTableReader(t *testing.T) {
	raw := buildDirectory(ScalerTypeTrueType, map[string]Record{
		"head": {Offset: 28, Length: 4},
	})
	data := make([]byte, 32)
	copy(data, raw)
	info, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.True(t, info.Has("head"))
	require.False(t, info.Has("head", "glyf"))

	_, err = info.TableReader(bytes.NewReader(data), "glyf")
	require.Error(t, err)
	require.True(t, IsMissing(err))
}
