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

// A Line is a straight line segment between two points.
type Line struct {
	Common

	Start Point
	End   Point

	Thickness float64
	Extrusion Point
}

func NewLine() *Line {
	l := &Line{}
	applyDefaults(lineTable, l)
	return l
}

// EntityType returns "LINE".
func (l *Line) EntityType() string { return "LINE" }

var lineTable = &entityTable{
	name: "LINE",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbLine", Min: R2000},
		FieldSpec{Code: 39, Field: "Thickness", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 10, Field: "Start", Kind: KindPoint},
		FieldSpec{Code: 11, Field: "End", Kind: KindPoint},
		FieldSpec{Code: 210, Field: "Extrusion", Kind: KindPoint, Default: Point{0, 0, 1}, Omit: true},
	),
}
