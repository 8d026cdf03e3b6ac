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

// Package dxf provides support for reading and writing AutoCAD DXF files.
//
// A DXF file is a sequence of tags.  Each tag occupies two lines of the
// file: a numeric group code, followed by a value whose type and meaning
// are determined by the group code and by the record being read.  This
// package treats a file as a stream of such tags and decodes them into
// typed records using declarative per-type field tables, instead of
// hand-written parsing loops.
//
// Use [ReadFile] or [Read] to decode a complete drawing:
//
//	drawing, diags, err := dxf.ReadFile("in.dxf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Println(d)
//	}
//	... inspect drawing.Entities ...
//
// Use [WriteFile] or [Write] to encode one:
//
//	drawing := dxf.NewDrawing(dxf.R2000)
//	arc := dxf.NewArc()
//	arc.Radius = 5
//	arc.EndAngle = 180
//	drawing.Entities = append(drawing.Entities, arc)
//	err := dxf.WriteFile("out.dxf", drawing)
//
// Structural problems (a non-numeric group code, a file truncated in the
// middle of a tag) abort reading with an error.  Everything else, in
// particular unrecognised tags and values of the wrong type, is recovered:
// the affected field keeps its default value and a [Diagnostic] is recorded,
// so that a single malformed field never discards an otherwise usable
// drawing.
package dxf
