// Package parser provides a small cursor-based reader over random-access
// binary font data, used by the table decoders (cff, post) that need to
// seek between sections of a table rather than consume it strictly
// sequentially.
package parser

import (
	"encoding/binary"
	"io"
)

// ReadSeekSizer is the capability a Parser needs from its underlying data
// source: random access (for seeking to an INDEX or DICT offset) plus a
// known total size (for bounds-checking reads near the end of the file).
type ReadSeekSizer interface {
	io.ReaderAt
	Size() int64
}

// Parser reads big-endian binary data sequentially from an offset that can
// be repositioned with SeekPos, without re-reading everything already
// consumed.
type Parser struct {
	r   ReadSeekSizer
	pos int64
}

// New returns a Parser reading from the start of r.
func New(r ReadSeekSizer) *Parser {
	return &Parser{r: r}
}

// Read implements io.Reader, advancing the cursor.
func (p *Parser) Read(buf []byte) (int, error) {
	n, err := p.r.ReadAt(buf, p.pos)
	p.pos += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// Pos returns the current read position.
func (p *Parser) Pos() int64 {
	return p.pos
}

// SeekPos repositions the cursor to an absolute offset.
func (p *Parser) SeekPos(pos int64) error {
	if pos < 0 || pos > p.r.Size() {
		return io.ErrUnexpectedEOF
	}
	p.pos = pos
	return nil
}

// ReadBytes reads exactly n bytes from the current position.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(p, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint8 reads a single byte.
func (p *Parser) ReadUint8() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(p, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16.
func (p *Parser) ReadUint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(p, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadUint24 reads a big-endian 24-bit unsigned integer, as used by CFF
// offSize==3 INDEX offsets.
func (p *Parser) ReadUint24() (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(p, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// ReadUint32 reads a big-endian uint32.
func (p *Parser) ReadUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(p, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadUint16Slice reads a uint16 count n, followed by n big-endian uint16
// values, as used by the "post" table's glyph name index.
func (p *Parser) ReadUint16Slice() ([]uint16, error) {
	n, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		v, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
