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

// A Circle is a full circle around Center.
type Circle struct {
	Common

	Center    Point
	Radius    float64
	Thickness float64
	Extrusion Point
}

func NewCircle() *Circle {
	c := &Circle{}
	applyDefaults(circleTable, c)
	return c
}

// EntityType returns "CIRCLE".
func (c *Circle) EntityType() string { return "CIRCLE" }

func (c *Circle) check() error {
	if c.Radius <= 0 {
		return &InvalidEntityError{Type: "CIRCLE", Reason: "radius must be positive"}
	}
	return nil
}

var circleTable = &entityTable{
	name: "CIRCLE",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbCircle", Min: R2000},
		FieldSpec{Code: 39, Field: "Thickness", Kind: KindDouble, Omit: true},
		FieldSpec{Code: 10, Field: "Center", Kind: KindPoint},
		FieldSpec{Code: 40, Field: "Radius", Kind: KindDouble},
		FieldSpec{Code: 210, Field: "Extrusion", Kind: KindPoint, Default: Point{0, 0, 1}, Omit: true},
	),
}
