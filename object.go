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

// Object is implemented by the non-graphical records of the OBJECTS
// section.
type Object interface {
	// ObjectType returns the upper-case type name used in 0-coded tags,
	// e.g. "DICTIONARY".
	ObjectType() string
}

// A Dictionary maps names to handles of other objects.  The OBJECTS
// section of every AC1012 or later file starts with the root dictionary.
type Dictionary struct {
	Handle Handle
	Owner  Handle

	// Cloning is the duplicate record cloning flag; 1 means "keep
	// existing".
	Cloning int16

	Entries []DictEntry
}

// A DictEntry is one name/handle pair of a [Dictionary].
type DictEntry struct {
	Name string
	Ref  Handle
}

var dictEntryFields = []FieldSpec{
	{Code: 3, Field: "Name", Kind: KindString},
	{Code: 350, Field: "Ref", Kind: KindHandle},
}

func NewDictionary() *Dictionary {
	d := &Dictionary{}
	applyDefaults(dictionaryTable, d)
	return d
}

// ObjectType returns "DICTIONARY".
func (d *Dictionary) ObjectType() string { return "DICTIONARY" }

var dictionaryTable = &entityTable{
	name: "DICTIONARY",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 330, Field: "Owner", Kind: KindHandle, Omit: true},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbDictionary", Min: R2000},
		{Code: 281, Field: "Cloning", Kind: KindInt16, Default: 1, Min: R2000},
		{Code: 3, Field: "Entries", Sub: dictEntryFields},
	},
}

var objectDefs = map[string]struct {
	table *entityTable
	make  func() Object
}{
	"DICTIONARY": {dictionaryTable, func() Object { return NewDictionary() }},
}
