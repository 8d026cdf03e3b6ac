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
	"errors"
	"fmt"
	"strconv"
)

var (
	errVersion = errors.New("unsupported DXF version")
)

// MalformedTagError indicates that the tag stream could not be parsed.
// This covers non-numeric group code lines as well as streams which end in
// the middle of a tag (in which case Err wraps [io.ErrUnexpectedEOF]).
type MalformedTagError struct {
	Line int
	Err  error
}

func (err *MalformedTagError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (at line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid DXF tag stream" + middle + tail
}

func (err *MalformedTagError) Unwrap() error {
	return err.Err
}

// InvalidEntityError indicates that a record failed validation before
// writing.  No output is produced for the offending record.
type InvalidEntityError struct {
	Type   string
	Reason string
}

func (err *InvalidEntityError) Error() string {
	return "invalid " + err.Type + ": " + err.Reason
}

// A Diagnostic describes a problem which was recovered during reading:
// an unrecognised tag, a value which did not parse as the declared field
// type, or a stray comment.  Diagnostics never abort decoding; the affected
// field keeps its default value.
type Diagnostic struct {
	// Entity is the type name of the record being decoded when the problem
	// occurred, e.g. "ARC", or "HEADER" for header variables.
	Entity string

	// Code is the group code of the offending tag.
	Code int

	// Line is the line number of the group code within the input.
	Line int

	Msg string
}

func (d Diagnostic) String() string {
	where := d.Entity
	if where == "" {
		where = "DXF"
	}
	return fmt.Sprintf("line %d: %s, group %d: %s", d.Line, where, d.Code, d.Msg)
}
