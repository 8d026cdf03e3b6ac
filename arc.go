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

// An Arc is a circular arc, drawn counter-clockwise from StartAngle to
// EndAngle around Center.
type Arc struct {
	Common

	Center Point

	// Radius is the radius of the arc.  It must be positive; a degenerate
	// arc cannot be represented and is rejected when writing.
	Radius float64

	// StartAngle and EndAngle are in degrees, in the range [0, 360).
	// They must differ; a closed curve is a [Circle], not an Arc.
	StartAngle float64
	EndAngle   float64

	// Thickness extrudes the arc along its normal vector.
	Thickness float64

	// Extrusion is the normal vector of the arc's plane.
	Extrusion Point
}

func NewArc() *Arc {
	a := &Arc{}
	applyDefaults(arcTable, a)
	return a
}

// EntityType returns "ARC".
func (a *Arc) EntityType() string { return "ARC" }

func (a *Arc) check() error {
	switch {
	case a.Radius <= 0:
		return &InvalidEntityError{Type: "ARC", Reason: "radius must be positive"}
	case a.StartAngle == a.EndAngle:
		return &InvalidEntityError{Type: "ARC", Reason: "start and end angle coincide"}
	case a.StartAngle < 0 || a.StartAngle >= 360:
		return &InvalidEntityError{Type: "ARC", Reason: "start angle outside [0, 360)"}
	case a.EndAngle < 0 || a.EndAngle >= 360:
		return &InvalidEntityError{Type: "ARC", Reason: "end angle outside [0, 360)"}
	}
	return nil
}

var arcTable = &entityTable{
	name: "ARC",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbCircle", Min: R2000},
		FieldSpec{Code: 39, Field: "Thickness", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 10, Field: "Center", Kind: KindPoint},
		FieldSpec{Code: 40, Field: "Radius", Kind: KindDouble},
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbArc", Min: R2000},
		FieldSpec{Code: 50, Field: "StartAngle", Kind: KindDouble},
		FieldSpec{Code: 51, Field: "EndAngle", Kind: KindDouble},
		FieldSpec{Code: 210, Field: "Extrusion", Kind: KindPoint, Default: Point{0, 0, 1}, Omit: true},
	),
}
