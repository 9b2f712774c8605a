// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sfnt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/lxman/fontoutline/cff"
	"github.com/lxman/fontoutline/cmap"
	"github.com/lxman/fontoutline/glyf"
	"github.com/lxman/fontoutline/head"
	"github.com/lxman/fontoutline/header"
	"github.com/lxman/fontoutline/hhea"
	"github.com/lxman/fontoutline/hmtx"
	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
	"github.com/lxman/fontoutline/maxp"
	"github.com/lxman/fontoutline/name"
	"github.com/lxman/fontoutline/os2"
	"github.com/lxman/fontoutline/post"
	"github.com/lxman/fontoutline/type1"
)

// ReadFile reads a TrueType or OpenType font from a file.
func ReadFile(fname string) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads a TrueType or OpenType font from an io.Reader. If r does not
// implement the io.ReaderAt interface, the whole font file is read into
// memory first.
func Read(r io.Reader) (*Font, error) {
	rr, ok := r.(io.ReaderAt)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		rr = bytes.NewReader(data)
	}

	dir, err := header.Read(rr)
	if err != nil {
		return nil, fmt.Errorf("sfnt header: %w", err)
	}

	if !(dir.Has("glyf", "loca") || dir.Has("CFF ")) {
		if dir.Has("CFF2") {
			return nil, sfnterr.Unsupported("sfnt", "CFF2-based fonts")
		}
		return nil, errors.New("sfnt: no TrueType/OpenType glyph data found")
	}

	// Tables are read in roughly the order recommended for optimized
	// loading: https://docs.microsoft.com/en-us/typography/opentype/spec/recom

	var headInfo *head.Info
	if headFd, err := dir.TableReader(rr, "head"); err == nil {
		headInfo, err = head.Read(headFd)
		if err != nil {
			return nil, fmt.Errorf("head table: %w", err)
		}
	} else if !header.IsMissing(err) {
		return nil, err
	}

	var hheaInfo *hhea.Info
	if hheaFd, err := dir.TableReader(rr, "hhea"); err == nil {
		hheaInfo, err = hhea.Read(hheaFd)
		if err != nil {
			return nil, fmt.Errorf("hhea table: %w", err)
		}
	} else if !header.IsMissing(err) {
		return nil, err
	}

	var maxpInfo *maxp.Info
	if maxpFd, err := dir.TableReader(rr, "maxp"); err == nil {
		maxpInfo, err = maxp.Read(maxpFd)
		if err != nil {
			return nil, fmt.Errorf("maxp table: %w", err)
		}
	} else if !header.IsMissing(err) {
		return nil, err
	}

	var os2Info *os2.Info
	if os2Fd, err := dir.TableReader(rr, "OS/2"); err == nil {
		os2Info, err = os2.Read(os2Fd)
		if err != nil {
			return nil, fmt.Errorf("OS/2 table: %w", err)
		}
	} else if !header.IsMissing(err) {
		return nil, err
	}

	var hmtxInfo *hmtx.Info
	if hheaInfo != nil && maxpInfo != nil {
		hmtxData, err := dir.ReadTableBytes(rr, "hmtx")
		if err != nil && !header.IsMissing(err) {
			return nil, err
		}
		if hmtxData != nil {
			hmtxInfo, err = hmtx.Decode(hmtxData, hheaInfo.NumOfLongHorMetrics, maxpInfo.NumGlyphs)
			if err != nil {
				return nil, fmt.Errorf("hmtx table: %w", err)
			}
		}
	}

	var cmapTable cmap.Table
	var cmapBest cmap.Subtable
	cmapData, err := dir.ReadTableBytes(rr, "cmap")
	if err != nil && !header.IsMissing(err) {
		return nil, err
	}
	if cmapData != nil {
		cmapTable, err = cmap.Decode(cmapData)
		if err != nil {
			return nil, fmt.Errorf("cmap table: %w", err)
		}
		cmapBest, _ = cmapTable.GetBest()
	}

	var nameTable *name.Table
	nameData, err := dir.ReadTableBytes(rr, "name")
	if err != nil && !header.IsMissing(err) {
		return nil, err
	}
	if nameData != nil {
		nameInfo, err := name.Decode(nameData)
		if err != nil {
			return nil, fmt.Errorf("name table: %w", err)
		}
		winTab, winConf := nameInfo.Windows.Choose(language.AmericanEnglish)
		macTab, macConf := nameInfo.Mac.Choose(language.AmericanEnglish)
		nameTable = winTab
		if winConf < language.High && macConf > winConf || nameTable == nil {
			nameTable = macTab
		}
	}

	var postInfo *post.Info
	if postFd, err := dir.TableReader(rr, "post"); err == nil {
		postInfo, err = post.Read(postFd)
		if err != nil {
			return nil, fmt.Errorf("post table: %w", err)
		}
	} else if !header.IsMissing(err) {
		return nil, err
	}

	var numGlyphs int
	if maxpInfo != nil {
		numGlyphs = maxpInfo.NumGlyphs
	}
	if hmtxInfo != nil && len(hmtxInfo.Width) > 0 {
		if numGlyphs == 0 {
			numGlyphs = len(hmtxInfo.Width)
		} else if len(hmtxInfo.Width) > numGlyphs {
			// some fonts carry a few extra trailing entries
			hmtxInfo.Width = hmtxInfo.Width[:numGlyphs]
		} else if len(hmtxInfo.Width) != numGlyphs {
			return nil, errors.New("sfnt: hmtx and maxp glyph count mismatch")
		}
	}

	var outlines Outlines
	var fontInfo *type1.FontInfo
	switch dir.ScalerType {
	case header.ScalerTypeCFF:
		cffFd, err := dir.TableReader(rr, "CFF ")
		if err != nil {
			return nil, err
		}
		cffFont, err := cff.Read(cffFd)
		if err != nil {
			return nil, fmt.Errorf("CFF table: %w", err)
		}
		fontInfo = cffFont.FontInfo
		outlines = cffFont.Outlines

		if numGlyphs != 0 && len(cffFont.Glyphs) != numGlyphs {
			return nil, errors.New("sfnt: cff glyph count mismatch")
		} else if hmtxInfo != nil && len(hmtxInfo.Width) > 0 {
			for i, w := range hmtxInfo.Width {
				cffFont.Glyphs[i].Width = float64(w)
			}
		}

	case header.ScalerTypeTrueType, header.ScalerTypeApple:
		if headInfo == nil {
			return nil, &header.ErrMissing{TableName: "head"}
		}
		if maxpInfo == nil {
			return nil, &header.ErrMissing{TableName: "maxp"}
		}

		locaData, err := dir.ReadTableBytes(rr, "loca")
		if err != nil {
			return nil, err
		}
		glyfData, err := dir.ReadTableBytes(rr, "glyf")
		if err != nil {
			return nil, err
		}
		locaFormat := int16(0)
		if headInfo.HasLongOffsets {
			locaFormat = 1
		}
		ttGlyphs, err := glyf.Decode(&glyf.Encoded{
			GlyfData:   glyfData,
			LocaData:   locaData,
			LocaFormat: locaFormat,
		})
		if err != nil {
			return nil, fmt.Errorf("glyf table: %w", err)
		}

		if numGlyphs != 0 && len(ttGlyphs) != numGlyphs {
			return nil, errors.New("sfnt: ttf glyph count mismatch")
		}

		var widths []funit.Int16
		if hmtxInfo != nil && len(hmtxInfo.Width) > 0 {
			widths = hmtxInfo.Width
		}
		var names []string
		if postInfo != nil {
			names = postInfo.Names
		}
		outlines = &glyfOutlines{
			Glyphs: ttGlyphs,
			Widths: widths,
			Names:  names,
		}

	default:
		return nil, sfnterr.Unsupported("sfnt", fmt.Sprintf("scaler type 0x%08x", dir.ScalerType))
	}

	info := &Font{
		Outlines:  outlines,
		CMapTable: cmapTable,
	}

	if nameTable != nil {
		info.FamilyName = nameTable.Family
	}
	if info.FamilyName == "" && fontInfo != nil {
		info.FamilyName = fontInfo.FamilyName
	}

	if os2Info != nil {
		info.Width = os2Info.WidthClass
		info.Weight = os2Info.WeightClass
	}
	if info.Weight == 0 && fontInfo != nil {
		info.Weight = os2.WeightFromString(fontInfo.Weight)
	}

	if nameTable != nil {
		info.Description = nameTable.Description
		info.SampleText = nameTable.SampleText
	}

	switch {
	case nameTable != nil && nameTable.Version != "":
		info.Version = nameTable.Version
	case headInfo != nil:
		info.Version = formatFontRevision(headInfo.FontRevision)
	case fontInfo != nil:
		info.Version = fontInfo.Version
	}

	if headInfo != nil {
		info.CreationTime = headInfo.Created
		info.ModificationTime = headInfo.Modified
	}

	if nameTable != nil {
		info.Copyright = nameTable.Copyright
		info.Trademark = nameTable.Trademark
		info.License = nameTable.License
		info.LicenseURL = nameTable.LicenseURL
	} else if fontInfo != nil {
		info.Copyright = fontInfo.Copyright
		info.Trademark = fontInfo.Notice
	}
	if os2Info != nil {
		info.PermUse = os2Info.PermUse
	}

	if headInfo != nil {
		info.UnitsPerEm = headInfo.UnitsPerEm
	} else if fontInfo != nil && len(fontInfo.FontMatrix) == 6 && fontInfo.FontMatrix[0] != 0 {
		info.UnitsPerEm = uint16(math.Round(1 / fontInfo.FontMatrix[0]))
	} else {
		info.UnitsPerEm = 1000
	}
	if fontInfo != nil && len(fontInfo.FontMatrix) == 6 {
		info.FontMatrix = matrixFromSlice(fontInfo.FontMatrix)
	} else {
		q := 1 / float64(info.UnitsPerEm)
		info.FontMatrix = matrixFromSlice([]float64{q, 0, 0, q, 0, 0})
	}

	if os2Info != nil {
		info.Ascent = os2Info.Ascent
		info.Descent = os2Info.Descent
		info.LineGap = os2Info.LineGap
	} else if hheaInfo != nil {
		info.Ascent = hheaInfo.Ascent
		info.Descent = hheaInfo.Descent
		info.LineGap = hheaInfo.LineGap
	}

	if os2Info != nil {
		info.CapHeight = os2Info.CapHeight
		info.XHeight = os2Info.XHeight
	}
	if info.CapHeight == 0 && cmapBest != nil {
		gid := cmapBest.Lookup('H')
		if gid != 0 && int(gid) < info.NumGlyphs() {
			info.CapHeight = info.glyphHeight(gid)
		}
	}
	if info.XHeight == 0 && cmapBest != nil {
		gid := cmapBest.Lookup('x')
		if gid != 0 && int(gid) < info.NumGlyphs() {
			info.XHeight = info.glyphHeight(gid)
		}
	}

	if postInfo != nil {
		info.ItalicAngle = postInfo.ItalicAngle
	} else if fontInfo != nil {
		info.ItalicAngle = fontInfo.ItalicAngle
	}
	// round so the value can be exactly represented in a 'post' table
	info.ItalicAngle = math.Round(info.ItalicAngle*65536) / 65536

	if postInfo != nil {
		info.UnderlinePosition = postInfo.UnderlinePosition
		info.UnderlineThickness = postInfo.UnderlineThickness
	} else if fontInfo != nil {
		info.UnderlinePosition = fontInfo.UnderlinePosition
		info.UnderlineThickness = fontInfo.UnderlineThickness
	}

	info.IsItalic = info.ItalicAngle != 0
	if headInfo != nil && headInfo.IsItalic {
		info.IsItalic = true
	}
	if os2Info != nil && (os2Info.IsItalic || os2Info.IsOblique) {
		info.IsItalic = true
	}
	if nameTable != nil && strings.Contains(nameTable.Subfamily, "Italic") {
		info.IsItalic = true
	}

	if os2Info != nil {
		info.IsOblique = os2Info.IsOblique
	}

	if os2Info != nil {
		info.IsBold = os2Info.IsBold
	} else if headInfo != nil {
		info.IsBold = headInfo.IsBold
	}
	if nameTable != nil &&
		strings.Contains(nameTable.Subfamily, "Bold") &&
		!strings.Contains(nameTable.Subfamily, "Semi Bold") &&
		!strings.Contains(nameTable.Subfamily, "Extra Bold") {
		info.IsBold = true
	}

	if !(info.IsItalic || info.IsBold) && os2Info != nil {
		info.IsRegular = os2Info.IsRegular
	}

	if os2Info != nil {
		switch os2Info.FamilyClass >> 8 {
		case 1, 2, 3, 4, 5, 7:
			info.IsSerif = true
		case 10:
			info.IsScript = true
		}
	}

	if os2Info != nil {
		info.CodePageRange = os2Info.CodePageRange
	}

	return info, nil
}

// formatFontRevision renders a 'head' table FontRevision fixed-point value
// the way a font's 'name' table Version string normally does ("Version
// 1.234").
func formatFontRevision(rev funit.Fixed16) string {
	return "Version " + strconv.FormatFloat(rev.Float64(), 'f', 3, 64)
}
