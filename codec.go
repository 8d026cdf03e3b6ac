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
	"reflect"
)

// An entityTable is the complete field table of one record type.  Tables
// are data: adding a record type to the library means writing a struct and
// a table literal, not a parsing loop.
type entityTable struct {
	name   string
	fields []FieldSpec
}

// checker is implemented by records which have hard validity constraints.
// The encoder calls check before emitting any output and skips the record
// entirely when validation fails.
type checker interface {
	check() error
}

// decodeFields consumes tags for one record from s and stores them into
// rec, which must be a pointer to a struct.  Decoding stops at the next
// 0-coded tag, which is pushed back: it introduces the following record
// and does not belong to this one.  End of input also stops decoding.
//
// Tags which match no table row, and values which do not parse as the
// declared kind, are recorded as diagnostics; the affected field keeps its
// default and decoding continues.
func decodeFields(s *Scanner, tab *entityTable, rec any, diags *[]Diagnostic) error {
	v := reflect.Indirect(reflect.ValueOf(rec))
	setDefaults(v, tab.fields)

	// cursor implements positional disambiguation: when the same group
	// code is owned by several rows (repeated point groups, nested
	// composites), the row at or after the last match wins.
	cursor := 0
	var nested *FieldSpec

	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if tag.IsEntry() {
			s.PushBack(tag)
			break
		}
		line := s.Line() - 1

		if tag.IsComment() {
			*diags = append(*diags, Diagnostic{
				Entity: tab.name, Code: tag.Code, Line: line,
				Msg: "comment: " + tag.Value,
			})
			continue
		}

		// A run of nested composite groups stays active until a tag
		// matches none of its rows.
		if nested != nil {
			sub := nested.Sub
			if tag.Code == sub[0].Code {
				appendElement(v, nested)
				storeTag(lastElement(v, nested), &sub[0], tag, tab.name, line, diags)
				continue
			}
			if spec := findRow(sub, tag.Code); spec != nil {
				storeTag(lastElement(v, nested), spec, tag, tab.name, line, diags)
				continue
			}
			nested = nil
		}

		spec := findRowAt(tab.fields, &cursor, tag.Code)
		if spec == nil {
			*diags = append(*diags, Diagnostic{
				Entity: tab.name, Code: tag.Code, Line: line,
				Msg: "unknown tag " + fmt.Sprintf("%q", tag.Value),
			})
			continue
		}

		switch {
		case spec.Kind == KindSubclass:
			// markers carry no data
		case spec.CountOf != "":
			// advisory count; repetition in the stream is authoritative
		case spec.Sub != nil:
			nested = spec
			appendElement(v, spec)
			storeTag(lastElement(v, spec), &spec.Sub[0], tag, tab.name, line, diags)
		default:
			storeTag(v, spec, tag, tab.name, line, diags)
		}
	}

	// An empty string value in the file means the same as an absent tag:
	// the field takes its documented default (layer "0", linetype
	// "BYLAYER").
	for i := range tab.fields {
		spec := &tab.fields[i]
		if spec.Kind != KindString || spec.Field == "" ||
			spec.Repeatable || spec.Default == nil {
			continue
		}
		f := v.FieldByName(spec.Field)
		if f.String() == "" {
			f.Set(spec.defaultValue(f.Type()))
		}
	}

	return nil
}

// encodeRecord validates rec, then writes its introductory 0-coded tag
// followed by all fields in table order.  When validation fails, nothing
// at all is written and an [*InvalidEntityError] is returned.
func encodeRecord(w *TagWriter, tab *entityTable, rec any, ver Version) error {
	if c, ok := rec.(checker); ok {
		if err := c.check(); err != nil {
			return err
		}
	}
	if err := w.WriteTag(0, tab.name); err != nil {
		return err
	}
	return encodeFields(w, tab.fields, reflect.Indirect(reflect.ValueOf(rec)), ver)
}

// encodeFields walks a field table in declared order and emits one tag
// group per row, honouring version gates and default suppression.
func encodeFields(w *TagWriter, fields []FieldSpec, v reflect.Value, ver Version) error {
	for i := range fields {
		spec := &fields[i]
		if !spec.validFor(ver) {
			continue
		}

		var err error
		switch {
		case spec.Kind == KindSubclass:
			err = w.WriteTag(100, spec.Subclass)
		case spec.CountOf != "":
			n := v.FieldByName(spec.CountOf).Len()
			if n == 0 && spec.Omit {
				continue
			}
			err = w.WriteInt(spec.Code, int64(n))
		case spec.Sub != nil:
			sl := v.FieldByName(spec.Field)
			for j := 0; j < sl.Len() && err == nil; j++ {
				err = encodeFields(w, spec.Sub, sl.Index(j), ver)
			}
		case spec.Repeatable:
			sl := v.FieldByName(spec.Field)
			for j := 0; j < sl.Len() && err == nil; j++ {
				err = spec.writeValue(w, sl.Index(j))
			}
		default:
			err = spec.writeScalar(w, v.FieldByName(spec.Field))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// setDefaults initialises all scalar fields of the record to their
// documented defaults.  Slice fields start empty.
func setDefaults(v reflect.Value, fields []FieldSpec) {
	for i := range fields {
		spec := &fields[i]
		if spec.Field == "" || spec.Repeatable || spec.Sub != nil {
			continue
		}
		f := v.FieldByName(spec.Field)
		f.Set(spec.defaultValue(f.Type()))
	}
}

// storeTag decodes one tag according to spec and stores it into the record
// v.  Parse failures become diagnostics; the field keeps its previous
// value.
func storeTag(v reflect.Value, spec *FieldSpec, tag Tag, entity string, line int, diags *[]Diagnostic) {
	f := v.FieldByName(spec.Field)

	if spec.Kind == KindPoint || spec.Kind == KindPoint2D {
		double := FieldSpec{Kind: KindDouble}
		x, err := double.decodeScalar(tag.Value)
		if err != nil {
			*diags = append(*diags, Diagnostic{
				Entity: entity, Code: tag.Code, Line: line, Msg: err.Error(),
			})
			return
		}
		ord := (tag.Code - spec.Code) / 10
		if spec.Repeatable {
			if ord == 0 || f.Len() == 0 {
				// A Y or Z ordinate without a preceding X starts a new
				// point as well; real files do not do this, but the
				// decoder must not crash on them.
				f.Set(reflect.Append(f, reflect.ValueOf(Point{})))
			}
			f = f.Index(f.Len() - 1)
		}
		f.Field(ord).SetFloat(x.(float64))
		return
	}

	val, err := spec.decodeScalar(tag.Value)
	if err != nil {
		*diags = append(*diags, Diagnostic{
			Entity: entity, Code: tag.Code, Line: line, Msg: err.Error(),
		})
		return
	}
	rv := reflect.ValueOf(val)
	if spec.Repeatable {
		f.Set(reflect.Append(f, rv.Convert(f.Type().Elem())))
	} else {
		f.Set(rv.Convert(f.Type()))
	}
}

// findRowAt locates the table row owning code, preferring rows at or after
// the cursor.  The cursor is left on the matched row, so that repeated
// groups keep matching the same row and a code reused later in the table
// resolves to the later row once the stream has moved past the earlier
// one.
func findRowAt(fields []FieldSpec, cursor *int, code int) *FieldSpec {
	for i := *cursor; i < len(fields); i++ {
		if fields[i].matches(code) {
			*cursor = i
			return &fields[i]
		}
	}
	for i := 0; i < *cursor && i < len(fields); i++ {
		if fields[i].matches(code) {
			*cursor = i
			return &fields[i]
		}
	}
	return nil
}

// findRow locates a row by group code, with no positional preference.
func findRow(fields []FieldSpec, code int) *FieldSpec {
	for i := range fields {
		if fields[i].matches(code) {
			return &fields[i]
		}
	}
	return nil
}

// appendElement grows the slice field of a nested composite row by one
// zero element, initialised to the sub-table's defaults.
func appendElement(v reflect.Value, spec *FieldSpec) {
	f := v.FieldByName(spec.Field)
	elem := reflect.New(f.Type().Elem()).Elem()
	setDefaults(elem, spec.Sub)
	f.Set(reflect.Append(f, elem))
}

// lastElement returns the most recently appended element of a nested
// composite row's slice field.
func lastElement(v reflect.Value, spec *FieldSpec) reflect.Value {
	f := v.FieldByName(spec.Field)
	return f.Index(f.Len() - 1)
}
