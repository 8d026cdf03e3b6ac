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

// A Drawing is the in-memory form of one DXF file.  Each section of the
// file becomes one field; the Drawing owns all records reachable from it.
type Drawing struct {
	Header *Header

	Classes []*Class

	// The symbol tables of the TABLES section.
	Layers     []*Layer
	Linetypes  []*Linetype
	TextStyles []*Style
	DimStyles  []*DimStyle

	Blocks []*Block

	Entities []Entity

	Objects []Object

	// Thumbnail is the preview image, or nil if the drawing has none.
	Thumbnail *Thumbnail
}

// NewDrawing returns an empty drawing for the given format version, with
// all header variables at their defaults.
func NewDrawing(ver Version) *Drawing {
	return &Drawing{Header: NewHeader(ver)}
}

// Version returns the drawing's format version.  Drawings without a
// version default to [R2000].
func (d *Drawing) Version() Version {
	if d.Header != nil && d.Header.Version != 0 {
		return d.Header.Version
	}
	return R2000
}

// Layer returns the layer record with the given name, or nil.
func (d *Drawing) Layer(name string) *Layer {
	for _, l := range d.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Block returns the block with the given name, or nil.
func (d *Drawing) Block(name string) *Block {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}
