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

// A Text is a single line of text.
type Text struct {
	Common

	// Value is the text itself.
	Value string

	// Insert is the first alignment point.
	Insert Point

	// Height is the text height in drawing units.
	Height float64

	// Rotation is the rotation angle in degrees.
	Rotation float64

	// WidthFactor stretches or compresses the glyphs.  The default is 1.
	WidthFactor float64

	// Oblique is the slant angle in degrees.
	Oblique float64

	// Style names the text style record.  The default is "STANDARD".
	Style string

	// HAlign and VAlign select the justification.  When both are zero the
	// text is aligned at Insert; otherwise Align is used.
	HAlign int16
	VAlign int16

	// Align is the second alignment point, used when HAlign or VAlign is
	// nonzero.
	Align Point

	Thickness float64
	Extrusion Point
}

func NewText() *Text {
	t := &Text{}
	applyDefaults(textTable, t)
	return t
}

// EntityType returns "TEXT".
func (t *Text) EntityType() string { return "TEXT" }

func (t *Text) check() error {
	if t.Height <= 0 {
		return &InvalidEntityError{Type: "TEXT", Reason: "height must be positive"}
	}
	return nil
}

var textTable = &entityTable{
	name: "TEXT",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbText", Min: R2000},
		FieldSpec{Code: 39, Field: "Thickness", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 10, Field: "Insert", Kind: KindPoint},
		FieldSpec{Code: 40, Field: "Height", Kind: KindDouble},
		FieldSpec{Code: 1, Field: "Value", Kind: KindString},
		FieldSpec{Code: 50, Field: "Rotation", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 41, Field: "WidthFactor", Kind: KindDouble, Default: 1.0, Omit: true},
		FieldSpec{Code: 51, Field: "Oblique", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 7, Field: "Style", Kind: KindString, Default: "STANDARD", Omit: true},
		FieldSpec{Code: 72, Field: "HAlign", Kind: KindInt16, Omit: true},
		FieldSpec{Code: 11, Field: "Align", Kind: KindPoint, Omit: true},
		FieldSpec{Code: 210, Field: "Extrusion", Kind: KindPoint, Default: Point{0, 0, 1}, Omit: true},
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbText", Min: R2000},
		FieldSpec{Code: 73, Field: "VAlign", Kind: KindInt16, Omit: true},
	),
}
