// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package dxf

// This file holds the symbol table records of the TABLES section: layers,
// linetypes, text styles and dimension styles.  Like entities they are
// plain structs driven by field tables.

// A Layer is one layer table record.
type Layer struct {
	Handle Handle
	Name   string

	// Flags is a bit field: 1 frozen, 2 frozen in new viewports, 4 locked.
	Flags int16

	// Color is the layer's color index.  A negative value means the layer
	// is off.
	Color int16

	// Linetype names the layer's default linetype.
	Linetype string
}

func NewLayer(name string) *Layer {
	l := &Layer{}
	applyDefaults(layerTable, l)
	l.Name = name
	return l
}

func (l *Layer) check() error {
	if l.Name == "" {
		return &InvalidEntityError{Type: "LAYER", Reason: "layer name must not be empty"}
	}
	return nil
}

var layerTable = &entityTable{
	name: "LAYER",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbSymbolTableRecord", Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbLayerTableRecord", Min: R2000},
		{Code: 2, Field: "Name", Kind: KindString, Default: "0"},
		{Code: 70, Field: "Flags", Kind: KindInt16},
		{Code: 62, Field: "Color", Kind: KindInt16, Default: 7},
		{Code: 6, Field: "Linetype", Kind: KindString, Default: "CONTINUOUS"},
	},
}

// A Linetype is one linetype table record.  The dash pattern is a list of
// element lengths: positive for dashes, negative for gaps, zero for dots.
type Linetype struct {
	Handle      Handle
	Name        string
	Flags       int16
	Description string

	// Alignment is always 65, the ASCII code of "A".
	Alignment int16

	// PatternLength is the total length of one pattern repetition.
	PatternLength float64

	// Pattern holds the element lengths.  The element count group in the
	// file is advisory and recomputed when writing.
	Pattern []float64
}

func NewLinetype(name string) *Linetype {
	lt := &Linetype{}
	applyDefaults(linetypeTable, lt)
	lt.Name = name
	return lt
}

func (lt *Linetype) check() error {
	if lt.Name == "" {
		return &InvalidEntityError{Type: "LTYPE", Reason: "linetype name must not be empty"}
	}
	return nil
}

var linetypeTable = &entityTable{
	name: "LTYPE",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbSymbolTableRecord", Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbLinetypeTableRecord", Min: R2000},
		{Code: 2, Field: "Name", Kind: KindString},
		{Code: 70, Field: "Flags", Kind: KindInt16},
		{Code: 3, Field: "Description", Kind: KindString, Omit: true},
		{Code: 72, Field: "Alignment", Kind: KindInt16, Default: 65},
		{Code: 73, CountOf: "Pattern", Kind: KindInt16},
		{Code: 40, Field: "PatternLength", Kind: KindDouble},
		{Code: 49, Field: "Pattern", Kind: KindDouble, Repeatable: true},
	},
}

// A Style is one text style table record.
type Style struct {
	Handle Handle
	Name   string
	Flags  int16

	// FixedHeight is the text height, or 0 if the height is not fixed.
	FixedHeight float64

	// WidthFactor stretches or compresses the glyphs.
	WidthFactor float64

	// Oblique is the slant angle in degrees.
	Oblique float64

	// Font is the name of the font file.
	Font string
}

func NewStyle(name string) *Style {
	st := &Style{}
	applyDefaults(styleTable, st)
	st.Name = name
	return st
}

func (st *Style) check() error {
	if st.Name == "" {
		return &InvalidEntityError{Type: "STYLE", Reason: "style name must not be empty"}
	}
	return nil
}

var styleTable = &entityTable{
	name: "STYLE",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbSymbolTableRecord", Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbTextStyleTableRecord", Min: R2000},
		{Code: 2, Field: "Name", Kind: KindString, Default: "STANDARD"},
		{Code: 70, Field: "Flags", Kind: KindInt16},
		{Code: 40, Field: "FixedHeight", Kind: KindDouble},
		{Code: 41, Field: "WidthFactor", Kind: KindDouble, Default: 1.0},
		{Code: 50, Field: "Oblique", Kind: KindDouble},
		{Code: 3, Field: "Font", Kind: KindString, Default: "txt"},
	},
}

// A DimStyle is one dimension style table record.  Unusually, its handle
// uses group code 105 instead of 5.
type DimStyle struct {
	Handle Handle
	Name   string
	Flags  int16

	// Scale is the overall dimensioning scale factor ($DIMSCALE).
	Scale float64

	// ArrowSize is the dimension arrow size ($DIMASZ).
	ArrowSize float64

	// ExtLineOffset is the distance between the measured point and the
	// start of the extension line ($DIMEXO).
	ExtLineOffset float64

	// ExtLineExtend is how far the extension line runs past the dimension
	// line ($DIMEXE).
	ExtLineExtend float64

	// TextHeight is the dimension text height ($DIMTXT).
	TextHeight float64
}

func NewDimStyle(name string) *DimStyle {
	ds := &DimStyle{}
	applyDefaults(dimStyleTable, ds)
	ds.Name = name
	return ds
}

func (ds *DimStyle) check() error {
	if ds.Name == "" {
		return &InvalidEntityError{Type: "DIMSTYLE", Reason: "dimension style name must not be empty"}
	}
	return nil
}

var dimStyleTable = &entityTable{
	name: "DIMSTYLE",
	fields: []FieldSpec{
		{Code: 105, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbSymbolTableRecord", Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbDimStyleTableRecord", Min: R2000},
		{Code: 2, Field: "Name", Kind: KindString, Default: "STANDARD"},
		{Code: 70, Field: "Flags", Kind: KindInt16},
		{Code: 40, Field: "Scale", Kind: KindDouble, Default: 1.0},
		{Code: 41, Field: "ArrowSize", Kind: KindDouble, Default: 0.18},
		{Code: 42, Field: "ExtLineOffset", Kind: KindDouble, Default: 0.0625},
		{Code: 44, Field: "ExtLineExtend", Kind: KindDouble, Default: 0.18},
		{Code: 140, Field: "TextHeight", Kind: KindDouble, Default: 0.18},
	},
}
