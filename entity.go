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

import (
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entity is implemented by all drawing entities.  Entities are plain
// structs; the per-type field tables, not methods, describe how they are
// stored in the file.
type Entity interface {
	// EntityType returns the upper-case type name used in 0-coded tags,
	// e.g. "ARC".
	EntityType() string

	common() *Common
}

// Common holds the fields shared by all entities.  It is embedded at the
// start of every entity struct.
type Common struct {
	// Handle is the identifier of the entity.  Entities created by this
	// library can leave the handle at zero; the file writer allocates one
	// when needed.
	Handle Handle

	// Owner is the handle of the owning block record, if known.
	Owner Handle

	// Paperspace is nonzero for entities in paper space.
	Paperspace int16

	// Layer is the name of the entity's layer.  An absent or empty layer
	// defaults to layer "0".
	Layer string

	// Linetype is the name of the entity's linetype, or "BYLAYER".
	Linetype string

	// Color is the AutoCAD color index.  0 means BYBLOCK, 256 BYLAYER.
	Color int16

	// LinetypeScale scales the linetype pattern.  The default is 1.
	LinetypeScale float64
}

func (c *Common) common() *Common { return c }

// commonFields returns the table prefix shared by all entities.  Entity
// tables append their own rows, including any further subclass markers.
func commonFields() []FieldSpec {
	return []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 330, Field: "Owner", Kind: KindHandle, Omit: true, Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbEntity", Min: R2000},
		{Code: 67, Field: "Paperspace", Kind: KindInt16, Omit: true},
		{Code: 8, Field: "Layer", Kind: KindString, Default: "0"},
		{Code: 6, Field: "Linetype", Kind: KindString, Default: "BYLAYER", Omit: true},
		{Code: 62, Field: "Color", Kind: KindInt16, Default: 256, Omit: true},
		{Code: 48, Field: "LinetypeScale", Kind: KindDouble, Default: 1.0, Omit: true, Min: R2000},
	}
}

// entityDef ties an entity type name to its field table and constructor.
type entityDef struct {
	table *entityTable
	make  func() Entity
}

var entityDefs = map[string]entityDef{
	"ARC":    {arcTable, func() Entity { return NewArc() }},
	"CIRCLE": {circleTable, func() Entity { return NewCircle() }},
	"LINE":   {lineTable, func() Entity { return NewLine() }},
	"POINT":  {pointTable, func() Entity { return NewPointMarker() }},
	"TEXT":   {textTable, func() Entity { return NewText() }},
	"SPLINE": {splineTable, func() Entity { return NewSpline() }},
	"HELIX":  {helixTable, func() Entity { return NewHelix() }},
	"TABLE":  {acadTableTable, func() Entity { return NewTable() }},
}

// EntityTypes returns the names of all entity types this library decodes,
// in sorted order.  Entities of other types are skipped with a diagnostic
// when reading.
func EntityTypes() []string {
	names := maps.Keys(entityDefs)
	slices.Sort(names)
	return names
}

// applyDefaults initialises rec according to its field table, so that
// freshly constructed records and freshly decoded empty records are equal.
func applyDefaults(tab *entityTable, rec any) {
	setDefaults(reflect.Indirect(reflect.ValueOf(rec)), tab.fields)
}
