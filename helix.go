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

// A Helix is a spiral curve, available from AC1021 files onwards.
type Helix struct {
	Common

	// MajorVersion and MaintVersion identify the helix class revision;
	// current files use 29 and 63.
	MajorVersion int32
	MaintVersion int32

	// AxisBase is the base point of the helix axis.
	AxisBase Point

	// Start is the start point of the curve.
	Start Point

	// AxisVector is the direction of the axis.
	AxisVector Point

	// Radius is the radius of the helix.
	Radius float64

	// Turns is the number of turns.
	Turns float64

	// TurnHeight is the height of one full turn.
	TurnHeight float64

	// LeftHanded is nonzero for a left-handed helix.
	LeftHanded int16

	// ConstraintType records which of turn height, number of turns and
	// total height is derived from the other two: 0, 1 or 2.
	ConstraintType int16
}

func NewHelix() *Helix {
	h := &Helix{}
	applyDefaults(helixTable, h)
	return h
}

// EntityType returns "HELIX".
func (h *Helix) EntityType() string { return "HELIX" }

func (h *Helix) check() error {
	switch {
	case h.Radius <= 0:
		return &InvalidEntityError{Type: "HELIX", Reason: "radius must be positive"}
	case h.Turns <= 0:
		return &InvalidEntityError{Type: "HELIX", Reason: "number of turns must be positive"}
	}
	return nil
}

var helixTable = &entityTable{
	name: "HELIX",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbHelix", Min: R2000},
		FieldSpec{Code: 90, Field: "MajorVersion", Kind: KindInt32, Default: 29},
		FieldSpec{Code: 91, Field: "MaintVersion", Kind: KindInt32, Default: 63},
		FieldSpec{Code: 10, Field: "AxisBase", Kind: KindPoint},
		FieldSpec{Code: 11, Field: "Start", Kind: KindPoint},
		FieldSpec{Code: 12, Field: "AxisVector", Kind: KindPoint, Default: Point{0, 0, 1}},
		FieldSpec{Code: 40, Field: "Radius", Kind: KindDouble},
		FieldSpec{Code: 41, Field: "Turns", Kind: KindDouble, Default: 1.0},
		FieldSpec{Code: 42, Field: "TurnHeight", Kind: KindDouble},
		FieldSpec{Code: 290, Field: "LeftHanded", Kind: KindInt16, Omit: true},
		FieldSpec{Code: 280, Field: "ConstraintType", Kind: KindInt16, Default: 1},
	),
}
