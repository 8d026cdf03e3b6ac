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
	"reflect"
	"strconv"
	"strings"
)

// Kind describes how a field's value is represented in the tag stream.
// The field table is authoritative: a value is decoded according to the
// Kind declared for its table row, not according to the usual convention
// for its group code.
type Kind int

const (
	// KindString stores the value line verbatim.
	KindString Kind = iota

	// KindInt16 is a 16-bit integer, also used for flag words.
	KindInt16

	// KindInt32 is a 32-bit integer.
	KindInt32

	// KindDouble is a floating point number.
	KindDouble

	// KindHandle is a hexadecimal object identifier.
	KindHandle

	// KindPoint is a coordinate triple.  The X ordinate uses the declared
	// group code, Y uses code+10 and Z uses code+20.
	KindPoint

	// KindPoint2D is like KindPoint but without a Z ordinate.
	KindPoint2D

	// KindSubclass marks the position of a group 100 subclass marker.
	// Subclass rows have no struct field; the marker text is in the
	// Subclass field of the FieldSpec.
	KindSubclass
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindDouble:
		return "double"
	case KindHandle:
		return "handle"
	case KindPoint:
		return "point"
	case KindPoint2D:
		return "2d point"
	case KindSubclass:
		return "subclass marker"
	}
	return "dxf.Kind(" + strconv.Itoa(int(k)) + ")"
}

// A FieldSpec is one row of a record type's field table.  The table drives
// both decoding and encoding: rows are matched against incoming tags when
// reading, and walked in declared order when writing.  Group order in the
// file is a format contract and can differ from the order of the fields in
// the Go struct.
type FieldSpec struct {
	// Code is the group code of the field.  Point rows additionally own
	// the codes Code+10 and Code+20 for the Y and Z ordinates.
	Code int

	// Field names the Go struct field the value is stored in.  It is
	// empty for subclass markers and advisory counts.
	Field string

	Kind Kind

	// Default is the documented default of the field.  The decoder
	// initialises the field to this value before reading; the encoder
	// compares against it when Omit is set.  A nil Default means the zero
	// value of the field type.
	Default any

	// Omit suppresses the tag on write when the value equals Default.
	// This mirrors the format's convention of not writing, for example,
	// a BYLAYER linetype or a zero thickness.
	Omit bool

	// Min and Max delimit the versions the field is written for.  A zero
	// bound is open.  Fields gated out of the target version are not
	// emitted; the decoder accepts them regardless, since files produced
	// by other software are not always consistent.
	Min, Max Version

	// Repeatable rows append to a slice field.  A repeatable group
	// terminates when a tag matches some other row, never by a count.
	Repeatable bool

	// Subclass is the marker text of a KindSubclass row, e.g. "AcDbEntity".
	Subclass string

	// CountOf names a slice field whose length is written as the value of
	// this row.  Counts like "number of control points" are advisory
	// metadata in DXF; the value found when reading is discarded, since
	// repetition in the tag stream is authoritative.
	CountOf string

	// Sub is the field table of a nested composite, e.g. one table cell.
	// The row's Field must name a slice of structs; a tag matching the
	// first row of Sub starts a new element, and following tags which
	// match rows of Sub are stored into that element.
	Sub []FieldSpec
}

// validFor reports whether the field is written at version ver.
func (f *FieldSpec) validFor(ver Version) bool {
	if f.Min != 0 && ver < f.Min {
		return false
	}
	if f.Max != 0 && ver > f.Max {
		return false
	}
	return true
}

// matches reports whether the row owns the given group code.
func (f *FieldSpec) matches(code int) bool {
	switch f.Kind {
	case KindPoint:
		return code == f.Code || code == f.Code+10 || code == f.Code+20
	case KindPoint2D:
		return code == f.Code || code == f.Code+10
	default:
		return code == f.Code
	}
}

// decodeScalar converts a value line according to the declared Kind.
// Point components are parsed as doubles by the caller.
func (f *FieldSpec) decodeScalar(value string) (any, error) {
	trimmed := strings.TrimSpace(value)
	switch f.Kind {
	case KindString:
		return value, nil
	case KindInt16:
		x, err := strconv.ParseInt(trimmed, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid %s", trimmed, f.Kind)
		}
		return int16(x), nil
	case KindInt32:
		x, err := strconv.ParseInt(trimmed, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid %s", trimmed, f.Kind)
		}
		return int32(x), nil
	case KindDouble:
		x, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid %s", trimmed, f.Kind)
		}
		return x, nil
	case KindHandle:
		h, err := ParseHandle(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid %s", trimmed, f.Kind)
		}
		return h, nil
	}
	panic("unexpected kind " + f.Kind.String())
}

// defaultValue returns the declared default, converted to the type of the
// struct field.
func (f *FieldSpec) defaultValue(fieldType reflect.Type) reflect.Value {
	if f.Default == nil {
		return reflect.Zero(fieldType)
	}
	return reflect.ValueOf(f.Default).Convert(fieldType)
}

// writeScalar emits the value of a non-repeatable row, or nothing if the
// value is suppressed.
func (f *FieldSpec) writeScalar(w *TagWriter, val reflect.Value) error {
	if f.Kind == KindString && val.String() == "" && f.Default != nil {
		// an unset name means its documented default, e.g. layer "0"
		val = f.defaultValue(val.Type())
	}
	if f.Omit && val.Equal(f.defaultValue(val.Type())) {
		return nil
	}
	return f.writeValue(w, val)
}

// writeValue emits one value, repeatable or not, without suppression.
func (f *FieldSpec) writeValue(w *TagWriter, val reflect.Value) error {
	switch f.Kind {
	case KindString:
		return w.WriteTag(f.Code, val.String())
	case KindInt16, KindInt32:
		return w.WriteInt(f.Code, val.Int())
	case KindDouble:
		return w.WriteFloat(f.Code, val.Float())
	case KindHandle:
		return w.WriteTag(f.Code, val.Interface().(Handle).String())
	case KindPoint, KindPoint2D:
		return w.WritePoint(f.Code, val.Interface().(Point), f.Kind == KindPoint)
	}
	panic("unexpected kind " + f.Kind.String())
}
