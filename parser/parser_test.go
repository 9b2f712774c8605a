package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type sizedReader struct {
	*bytes.Reader
	size int64
}

func (s sizedReader) Size() int64 { return s.size }

func newSized(data []byte) ReadSeekSizer {
	return sizedReader{Reader: bytes.NewReader(data), size: int64(len(data))}
}

func TestSequentialReads(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x00, 0x04}
	p := New(newSized(data))

	v8, err := p.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, byte(0), v8)

	v16, err := p.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v16)

	v24, err := p.ReadUint24()
	require.NoError(t, err)
	require.Equal(t, uint32(0x030004), v24)
}

func TestSeekPos(t *testing.T) {
	data := []byte{0, 0, 0, 0, 0xAB, 0xCD}
	p := New(newSized(data))
	require.NoError(t, p.SeekPos(4))
	v, err := p.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xABCD), v)
}

func TestSeekPosOutOfRange(t *testing.T) {
	p := New(newSized([]byte{1, 2, 3}))
	require.Error(t, p.SeekPos(10))
	require.Error(t, p.SeekPos(-1))
}

func TestReadUint16Slice(t *testing.T) {
	data := []byte{0, 2, 0, 10, 0, 20}
	p := New(newSized(data))
	vals, err := p.ReadUint16Slice()
	require.NoError(t, err)
	require.Equal(t, []uint16{10, 20}, vals)
}

func TestReadBytesErrorsOnTruncation(t *testing.T) {
	p := New(newSized([]byte{1, 2}))
	_, err := p.ReadBytes(5)
	require.Error(t, err)
}
