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

// A PointMarker is a POINT entity: a single location, displayed as a
// marker whose shape and size follow the $PDMODE and $PDSIZE header
// variables.
type PointMarker struct {
	Common

	Location Point

	// Rotation is the angle of the local X axis used when drawing the
	// marker, in degrees.
	Rotation float64

	Thickness float64
	Extrusion Point
}

func NewPointMarker() *PointMarker {
	p := &PointMarker{}
	applyDefaults(pointTable, p)
	return p
}

// EntityType returns "POINT".
func (p *PointMarker) EntityType() string { return "POINT" }

var pointTable = &entityTable{
	name: "POINT",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbPoint", Min: R2000},
		FieldSpec{Code: 39, Field: "Thickness", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 10, Field: "Location", Kind: KindPoint},
		FieldSpec{Code: 50, Field: "Rotation", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 210, Field: "Extrusion", Kind: KindPoint, Default: Point{0, 0, 1}, Omit: true},
	),
}
