package hmtx

import (
	"testing"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/stretchr/testify/require"
)

func TestDecodeInheritsLastWidth(t *testing.T) {
	// 2 long metrics, then 3 bare LSBs: glyphs 2,3,4 must inherit glyph 1's
	// advance width of 600.
	data := []byte{
		0x01, 0x90, 0x00, 0x05, // width=400, lsb=5
		0x02, 0x58, 0x00, 0x0a, // width=600, lsb=10
		0x00, 0x0b, // bare lsb=11
		0x00, 0x0c, // bare lsb=12
		0x00, 0x0d, // bare lsb=13
	}
	info, err := Decode(data, 2, 5)
	require.NoError(t, err)
	require.Equal(t, []funit.Int16{400, 600, 600, 600, 600}, info.Width)
	require.Equal(t, []funit.Int16{5, 10, 11, 12, 13}, info.LSB)
}

func TestDecodeRejectsTruncatedTable(t *testing.T) {
	_, err := Decode([]byte{0, 1}, 2, 5)
	require.Error(t, err)
}

func TestDecodeRejectsBadNumLongHorMetrics(t *testing.T) {
	_, err := Decode(make([]byte, 40), 0, 5)
	require.Error(t, err)

	_, err = Decode(make([]byte, 40), 6, 5)
	require.Error(t, err)
}
