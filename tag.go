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
	"strconv"
	"strings"
)

// A Tag is the atomic unit of the DXF wire format: a small integer group
// code together with the raw, uninterpreted value line which followed it.
// The group code determines the conventional type of the value; the field
// table of the record being decoded determines its meaning.
type Tag struct {
	Code  int
	Value string
}

// IsEntry reports whether the tag introduces a new record or section
// marker.  Such tags belong to the following record and must not be
// consumed while decoding the current one.
func (t Tag) IsEntry() bool {
	return t.Code == 0
}

// IsComment reports whether the tag is a 999-coded comment.  Comments may
// appear anywhere a tag is expected and carry no structure.
func (t Tag) IsComment() bool {
	return t.Code == 999
}

// A Handle is the hexadecimal identifier which AC1012 and later files use
// to cross-reference objects and entities.  The zero Handle means "not
// assigned"; the file writer allocates a fresh handle for records which
// still carry the zero value.
type Handle uint64

// ParseHandle parses the hexadecimal string representation of a handle.
func ParseHandle(s string) (Handle, error) {
	x, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, err
	}
	return Handle(x), nil
}

// String returns the upper-case hexadecimal form used in the file.
func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// A Point is a coordinate triple.  Two-dimensional groups leave Z at zero.
//
// A point occupies up to three tags in the file: the X ordinate uses the
// group code declared in the field table, Y uses that code plus 10, and Z
// uses that code plus 20.
type Point struct {
	X, Y, Z float64
}
