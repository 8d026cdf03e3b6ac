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

// A Class registers an application-defined record type in the CLASSES
// section.  Classes have no handles.
type Class struct {
	// Record is the class DXF record name, e.g. "ACDBDICTIONARYWDFLT".
	Record string

	// Name is the C++ class name of the owning application.
	Name string

	// App describes the application.
	App string

	// ProxyFlags describes the capabilities of the proxy.
	ProxyFlags int32

	// Instances is the number of instances of this class in the drawing.
	Instances int32

	// WasProxy is nonzero if the class was not loaded when the drawing
	// was last saved.
	WasProxy int16

	// IsEntity is nonzero when instances of the class live in the
	// ENTITIES section.
	IsEntity int16
}

func NewClass() *Class {
	c := &Class{}
	applyDefaults(classTable, c)
	return c
}

func (c *Class) check() error {
	if c.Record == "" {
		return &InvalidEntityError{Type: "CLASS", Reason: "record name must not be empty"}
	}
	return nil
}

var classTable = &entityTable{
	name: "CLASS",
	fields: []FieldSpec{
		{Code: 1, Field: "Record", Kind: KindString},
		{Code: 2, Field: "Name", Kind: KindString},
		{Code: 3, Field: "App", Kind: KindString},
		{Code: 90, Field: "ProxyFlags", Kind: KindInt32},
		{Code: 91, Field: "Instances", Kind: KindInt32, Min: R2004},
		{Code: 280, Field: "WasProxy", Kind: KindInt16},
		{Code: 281, Field: "IsEntity", Kind: KindInt16},
	},
}
