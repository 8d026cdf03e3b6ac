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

// A Table is a grid of cells, read and written row by row.  The row and
// column counts stored in the file are advisory; the lengths of RowHeights
// and ColumnWidths are authoritative when writing.
type Table struct {
	Common

	// BlockName names the anonymous block which holds the rendered
	// geometry of the table.
	BlockName string

	// Insert is the insertion point of the table.
	Insert Point

	RowHeights   []float64
	ColumnWidths []float64

	// Cells lists the cells in row-major order.
	Cells []TableCell
}

// A TableCell is one cell of a [Table].  In the file, each cell is a run
// of groups starting with the cell type.
type TableCell struct {
	// Type is 1 for a text cell and 2 for a block cell.
	Type int16

	// Flags is a bit field of cell properties.
	Flags int16

	// Merged is nonzero for cells hidden by a merge.
	Merged int16

	// Text is the content of a text cell.
	Text string
}

var tableCellFields = []FieldSpec{
	{Code: 171, Field: "Type", Kind: KindInt16, Default: 1},
	{Code: 172, Field: "Flags", Kind: KindInt16, Omit: true},
	{Code: 173, Field: "Merged", Kind: KindInt16, Omit: true},
	{Code: 1, Field: "Text", Kind: KindString, Omit: true},
}

func NewTable() *Table {
	t := &Table{}
	applyDefaults(acadTableTable, t)
	return t
}

// EntityType returns "TABLE".
func (t *Table) EntityType() string { return "TABLE" }

func (t *Table) check() error {
	rows, cols := len(t.RowHeights), len(t.ColumnWidths)
	if rows == 0 || cols == 0 {
		return &InvalidEntityError{Type: "TABLE", Reason: "table must have at least one row and one column"}
	}
	if len(t.Cells) > rows*cols {
		return &InvalidEntityError{Type: "TABLE", Reason: "more cells than grid positions"}
	}
	return nil
}

var acadTableTable = &entityTable{
	name: "TABLE",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbBlockReference", Min: R2000},
		FieldSpec{Code: 2, Field: "BlockName", Kind: KindString, Omit: true},
		FieldSpec{Code: 10, Field: "Insert", Kind: KindPoint},
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbTable", Min: R2000},
		FieldSpec{Code: 91, CountOf: "RowHeights", Kind: KindInt32},
		FieldSpec{Code: 92, CountOf: "ColumnWidths", Kind: KindInt32},
		FieldSpec{Code: 141, Field: "RowHeights", Kind: KindDouble, Repeatable: true},
		FieldSpec{Code: 142, Field: "ColumnWidths", Kind: KindDouble, Repeatable: true},
		FieldSpec{Code: 171, Field: "Cells", Sub: tableCellFields},
	),
}
