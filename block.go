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

// A Block is a named group of entities, defined once in the BLOCKS section
// and placed by INSERT entities.  The name is stored twice in the file
// (groups 2 and 3); both groups are written from and decoded into Name.
type Block struct {
	Common

	Name string

	// Flags is a bit field, see the Block flag constants.
	Flags int16

	// Base is the block's base point.
	Base Point

	// XrefPath is the path of the referenced drawing for xref blocks.
	XrefPath string

	// Entities holds the content of the block.
	Entities []Entity

	// End is the ENDBLK record closing the block.
	End EndBlk
}

// Block flag bits.
const (
	BlockAnonymous     = 1 << 0
	BlockHasAttributes = 1 << 1
	BlockIsXref        = 1 << 2
	BlockIsXrefOverlay = 1 << 3
	BlockIsExternal    = 1 << 4
	BlockIsResolved    = 1 << 5
	BlockIsReferenced  = 1 << 6
)

func NewBlock(name string) *Block {
	b := &Block{}
	applyDefaults(blockTable, b)
	applyDefaults(endBlkTable, &b.End)
	b.Name = name
	return b
}

// EntityType returns "BLOCK".
func (b *Block) EntityType() string { return "BLOCK" }

// IsAnonymous reports whether the block is anonymous.
func (b *Block) IsAnonymous() bool { return b.Flags&BlockAnonymous != 0 }

// IsXref reports whether the block is an external reference.
func (b *Block) IsXref() bool { return b.Flags&BlockIsXref != 0 }

func (b *Block) check() error {
	if b.Name == "" {
		return &InvalidEntityError{Type: "BLOCK", Reason: "block name must not be empty"}
	}
	if b.IsXref() && b.XrefPath == "" {
		return &InvalidEntityError{Type: "BLOCK", Reason: "xref block without path"}
	}
	return nil
}

var blockTable = &entityTable{
	name: "BLOCK",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 330, Field: "Owner", Kind: KindHandle, Omit: true, Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbEntity", Min: R2000},
		{Code: 8, Field: "Layer", Kind: KindString, Default: "0"},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbBlockBegin", Min: R2000},
		{Code: 2, Field: "Name", Kind: KindString},
		{Code: 70, Field: "Flags", Kind: KindInt16},
		{Code: 10, Field: "Base", Kind: KindPoint},
		{Code: 3, Field: "Name", Kind: KindString},
		{Code: 1, Field: "XrefPath", Kind: KindString, Omit: true},
	},
}

// An EndBlk closes a block definition.  It has no fields of its own beyond
// the common ones.
type EndBlk struct {
	Common
}

// EntityType returns "ENDBLK".
func (e *EndBlk) EntityType() string { return "ENDBLK" }

var endBlkTable = &entityTable{
	name: "ENDBLK",
	fields: []FieldSpec{
		{Code: 5, Field: "Handle", Kind: KindHandle, Omit: true},
		{Code: 330, Field: "Owner", Kind: KindHandle, Omit: true, Min: R2000},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbEntity", Min: R2000},
		{Code: 8, Field: "Layer", Kind: KindString, Default: "0"},
		{Code: 100, Kind: KindSubclass, Subclass: "AcDbBlockEnd", Min: R2000},
	},
}
