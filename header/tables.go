// Package header reads TrueType and OpenType file headers: the fixed sfnt
// header plus the table directory that follows it.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
package header

import (
	"fmt"
	"io"
	"sort"

	"github.com/lxman/fontoutline/internal/sfnterr"
)

const (
	// ScalerTypeTrueType is the scaler type for fonts which use TrueType
	// outlines.
	ScalerTypeTrueType uint32 = 0x00010000

	// ScalerTypeCFF is the scaler type for fonts which use CFF outlines
	// (bare CFF wrapped in an sfnt container, i.e. OpenType-CFF).
	ScalerTypeCFF uint32 = 0x4F54544F // "OTTO"

	// ScalerTypeApple is recognised as an alternative for ScalerTypeTrueType
	// on Apple systems.
	ScalerTypeApple uint32 = 0x74727565 // "true"
)

// Info contains information about the tables present in an sfnt font file.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// A Record contains the offset and length of a table in an sfnt font file.
type Record struct {
	Offset uint32
	Length uint32
}

// Read reads the file header of an sfnt font file: the 12-byte fixed header
// and the table-directory records that follow it. Checksums are ignored.
// When a table tag repeats, the last record for that tag wins; earlier
// records for the same tag are discarded.
func Read(r io.ReaderAt) (*Info, error) {
	var buf [16]byte
	_, err := r.ReadAt(buf[:6], 0)
	if err != nil {
		return nil, err
	}
	scalerType := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	numTables := int(buf[4])<<8 | int(buf[5])

	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, sfnterr.Unsupported("sfnt/header", fmt.Sprintf("scaler type 0x%08x", scalerType))
	}
	if numTables > 280 {
		// the largest value observed in real-world fonts is well under 100
		return nil, sfnterr.Invalid("sfnt/header", "too many tables")
	}

	h := &Info{
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
	}
	type alloc struct {
		Start uint32
		End   uint32
	}
	var coverage []alloc
	for i := 0; i < numTables; i++ {
		_, err := r.ReadAt(buf[:16], int64(12+i*16))
		if err != nil {
			return nil, err
		}
		for j := 0; j < 4; j++ {
			if buf[j] < 0x20 || buf[j] > 0x7e {
				return nil, sfnterr.Invalid("sfnt/header", "invalid table name")
			}
		}
		name := string(buf[:4])
		offset := uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11])
		length := uint32(buf[12])<<24 | uint32(buf[13])<<16 | uint32(buf[14])<<8 | uint32(buf[15])

		// Last one wins: a later directory record for a tag we've already
		// seen simply replaces the earlier one.
		h.Toc[name] = Record{
			Offset: offset,
			Length: length,
		}
	}
	if len(h.Toc) == 0 {
		return nil, sfnterr.Invalid("sfnt/header", "no tables")
	}

	// perform some sanity checks against the final (post last-one-wins) set
	coverage = coverage[:0]
	for _, rec := range h.Toc {
		coverage = append(coverage, alloc{Start: rec.Offset, End: rec.Offset + rec.Length})
	}
	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].Start != coverage[j].Start {
			return coverage[i].Start < coverage[j].Start
		}
		return coverage[i].End < coverage[j].End
	})
	if coverage[0].Start < 12 {
		return nil, sfnterr.Invalid("sfnt/header", "invalid table offset")
	}
	for i := 1; i < len(coverage); i++ {
		if coverage[i-1].End > coverage[i].Start {
			return nil, sfnterr.Invalid("sfnt/header", "overlapping tables")
		}
	}
	_, err = r.ReadAt(buf[:1], int64(coverage[len(coverage)-1].End)-1)
	if err == io.EOF {
		return nil, sfnterr.Invalid("sfnt/header", "table extends beyond EOF")
	} else if err != nil {
		return nil, err
	}

	return h, nil
}

// Has returns true if all of the given tables are present in the font, and
// none of them are empty.
func (h *Info) Has(tableNames ...string) bool {
	for _, name := range tableNames {
		if rec, ok := h.Toc[name]; !ok || rec.Length == 0 {
			return false
		}
	}
	return true
}

// TableReader returns an io.Reader for the given table.
func (h *Info) TableReader(r io.ReaderAt, tableName string) (*io.SectionReader, error) {
	rec, ok := h.Toc[tableName]
	if !ok {
		return nil, &ErrMissing{TableName: tableName}
	}
	return io.NewSectionReader(r, int64(rec.Offset), int64(rec.Length)), nil
}

// ReadTableBytes returns the un-decoded table contents.
func (h *Info) ReadTableBytes(r io.ReaderAt, tableName string) ([]byte, error) {
	tableFd, err := h.TableReader(r, tableName)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(tableFd)
}
