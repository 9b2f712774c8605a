package cff

import (
	"github.com/lxman/fontoutline/parser"
)

// cffIndex is a decoded CFF INDEX structure: a sequence of variable-length
// byte blobs (Name INDEX entries, DICTs, CharStrings, Subrs, ...).
type cffIndex [][]byte

// readIndex reads a CFF INDEX starting at the parser's current position.
func readIndex(p *parser.Parser) (cffIndex, error) {
	count, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	if offSize < 1 || offSize > 4 {
		return nil, invalidSince("invalid INDEX offSize")
	}

	readOffset := func() (uint32, error) {
		switch offSize {
		case 1:
			v, err := p.ReadUint8()
			return uint32(v), err
		case 2:
			v, err := p.ReadUint16()
			return uint32(v), err
		case 3:
			return p.ReadUint24()
		default:
			return p.ReadUint32()
		}
	}

	offsets := make([]uint32, count+1)
	for i := range offsets {
		offsets[i], err = readOffset()
		if err != nil {
			return nil, err
		}
	}
	if offsets[0] != 1 {
		return nil, invalidSince("invalid INDEX offset table")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, invalidSince("invalid INDEX offset table")
		}
	}

	dataLen := int(offsets[count] - 1)
	data, err := p.ReadBytes(dataLen)
	if err != nil {
		return nil, err
	}

	res := make(cffIndex, count)
	for i := range res {
		start := offsets[i] - 1
		end := offsets[i+1] - 1
		res[i] = data[start:end]
	}
	return res, nil
}

// readIndexAt seeks to offs (which must be at least 4, the smallest
// possible header size) and reads the INDEX found there. name is used only
// to annotate error messages.
func readIndexAt(p *parser.Parser, offs int, name string) (cffIndex, error) {
	if offs < 4 {
		return nil, invalidSince("missing " + name + " INDEX")
	}
	if err := p.SeekPos(int64(offs)); err != nil {
		return nil, err
	}
	return readIndex(p)
}
