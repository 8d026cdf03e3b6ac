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
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding"
)

// A TagWriter emits the two-line-per-tag textual DXF format.  Group codes
// are right-aligned in a three character column, the way AutoCAD writes
// them; readers only require the code to be a decimal integer.
type TagWriter struct {
	w io.Writer

	// enc transcodes string values into the drawing codepage when writing
	// pre-AC1021 files.  It is nil when values are written as UTF-8.
	enc *encoding.Encoder
}

// NewTagWriter prepares a TagWriter writing to w.
func NewTagWriter(w io.Writer) *TagWriter {
	return &TagWriter{w: w}
}

// WriteTag writes one tag.  The value is written verbatim on its own line.
func (w *TagWriter) WriteTag(code int, value string) error {
	if w.enc != nil && !isASCII(value) {
		if enc, err := w.enc.String(value); err == nil {
			value = enc
		}
	}
	_, err := fmt.Fprintf(w.w, "%3d\n%s\n", code, value)
	return err
}

// WriteInt writes a tag with an integer value.
func (w *TagWriter) WriteInt(code int, x int64) error {
	return w.WriteTag(code, strconv.FormatInt(x, 10))
}

// WriteFloat writes a tag with a floating point value.  Values are written
// with six decimal digits, the precision DXF consumers expect, using "."
// as the decimal separator regardless of locale.
func (w *TagWriter) WriteFloat(code int, x float64) error {
	return w.WriteTag(code, formatFloat(x))
}

// WritePoint writes the ordinates of p as a group of tags: X with the
// given code, Y with code+10, and, if threeD is set, Z with code+20.
func (w *TagWriter) WritePoint(code int, p Point, threeD bool) error {
	if err := w.WriteFloat(code, p.X); err != nil {
		return err
	}
	if err := w.WriteFloat(code+10, p.Y); err != nil {
		return err
	}
	if threeD {
		return w.WriteFloat(code+20, p.Z)
	}
	return nil
}

// SetEncoding installs a character encoder for string values.  The file
// driver calls this when writing a drawing whose version predates native
// UTF-8 support.
func (w *TagWriter) SetEncoding(enc *encoding.Encoder) {
	w.enc = enc
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
