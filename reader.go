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
	"io"
	"os"
)

// ReadFile reads the named DXF file.  Diagnostics describe recovered
// problems and are returned even when the error is non-nil.
func ReadFile(name string) (*Drawing, []Diagnostic, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads a DXF file from r.  Structural errors (a malformed group
// code, a truncated tag) abort reading; everything else is recovered and
// reported in the returned diagnostics.
func Read(r io.Reader) (*Drawing, []Diagnostic, error) {
	s := NewScanner(r)
	d := &Drawing{Header: NewHeader(0)}
	var diags []Diagnostic

	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			// The final 0/EOF tag is missing; tolerate this.
			return d, diags, nil
		}
		if err != nil {
			return d, diags, err
		}
		line := s.Line() - 1

		if tag.IsComment() {
			diags = append(diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "comment: " + tag.Value,
			})
			continue
		}
		if !tag.IsEntry() {
			diags = append(diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "tag outside any section",
			})
			continue
		}

		switch tag.Value {
		case "EOF":
			return d, diags, nil
		case "ENDSEC":
			// stray section end; ignore
		case "SECTION":
			if err := readSection(s, d, &diags); err != nil {
				return d, diags, err
			}
		default:
			diags = append(diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "record outside any section: " + tag.Value,
			})
			if err := skipRecord(s); err != nil {
				return d, diags, err
			}
		}
	}
}

// readSection dispatches one SECTION, whose introducing tag has already
// been consumed, to the per-section reader.  The closing ENDSEC is
// consumed by the caller's main loop.
func readSection(s *Scanner, d *Drawing, diags *[]Diagnostic) error {
	nameTag, err := s.NextTag()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if nameTag.Code != 2 {
		*diags = append(*diags, Diagnostic{
			Code: nameTag.Code, Line: s.Line() - 1, Msg: "section without a name",
		})
		s.PushBack(nameTag)
		return nil
	}

	switch nameTag.Value {
	case "HEADER":
		if err := decodeHeader(s, d.Header, diags); err != nil {
			return err
		}
		// From here on string values are transcoded from the drawing
		// codepage, unless the file is recent enough to use UTF-8.
		if d.Header.Version != 0 && d.Header.Version < R2007 {
			if enc, ok := codepageEncoding(d.Header.Codepage); ok {
				s.SetEncoding(enc.NewDecoder())
			}
		}
		return nil
	case "CLASSES":
		return readClasses(s, d, diags)
	case "TABLES":
		return readTables(s, d, diags)
	case "BLOCKS":
		return readBlocks(s, d, diags)
	case "ENTITIES":
		list, err := readEntities(s, false, diags)
		d.Entities = append(d.Entities, list...)
		return err
	case "OBJECTS":
		return readObjects(s, d, diags)
	case "THUMBNAILIMAGE":
		t, err := decodeThumbnail(s, diags)
		d.Thumbnail = t
		return err
	default:
		*diags = append(*diags, Diagnostic{
			Code: 2, Line: s.Line(), Msg: "skipping unknown section " + nameTag.Value,
		})
		return skipSection(s)
	}
}

// readEntities decodes entity records until ENDSEC or, when inBlock is
// set, until the ENDBLK record.  The terminating tag is pushed back for
// the caller.
func readEntities(s *Scanner, inBlock bool, diags *[]Diagnostic) ([]Entity, error) {
	var list []Entity
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return list, nil
		}
		if err != nil {
			return list, err
		}
		line := s.Line() - 1

		if tag.IsComment() {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "comment: " + tag.Value,
			})
			continue
		}
		if !tag.IsEntry() {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "tag between entities",
			})
			continue
		}
		if tag.Value == "ENDSEC" || tag.Value == "EOF" ||
			inBlock && (tag.Value == "ENDBLK" || tag.Value == "BLOCK") {
			s.PushBack(tag)
			return list, nil
		}

		def, ok := entityDefs[tag.Value]
		if !ok {
			*diags = append(*diags, Diagnostic{
				Entity: tag.Value, Code: tag.Code, Line: line,
				Msg: "skipping unknown entity type",
			})
			if err := skipRecord(s); err != nil {
				return list, err
			}
			continue
		}
		e := def.make()
		if err := decodeFields(s, def.table, e, diags); err != nil {
			return list, err
		}
		list = append(list, e)
	}
}

// readBlocks decodes the BLOCKS section: a sequence of BLOCK records,
// each followed by its entities and one ENDBLK.
func readBlocks(s *Scanner, d *Drawing, diags *[]Diagnostic) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := s.Line() - 1

		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
		if !tag.IsEntry() || tag.Value != "BLOCK" {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "expected BLOCK record",
			})
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		b := &Block{}
		if err := decodeFields(s, blockTable, b, diags); err != nil {
			return err
		}
		b.Entities, err = readEntities(s, true, diags)
		if err != nil {
			return err
		}

		endTag, err := s.NextTag()
		if err == io.EOF {
			d.Blocks = append(d.Blocks, b)
			return nil
		}
		if err != nil {
			return err
		}
		if endTag.IsEntry() && endTag.Value == "ENDBLK" {
			if err := decodeFields(s, endBlkTable, &b.End, diags); err != nil {
				return err
			}
		} else {
			*diags = append(*diags, Diagnostic{
				Entity: "BLOCK", Code: endTag.Code, Line: s.Line() - 1,
				Msg: "block " + b.Name + " is not closed by ENDBLK",
			})
			s.PushBack(endTag)
		}
		d.Blocks = append(d.Blocks, b)
	}
}

// readTables decodes the TABLES section.  Table types this library does
// not model (VPORT, VIEW, UCS, APPID, BLOCK_RECORD) are skipped with one
// diagnostic per record.
func readTables(s *Scanner, d *Drawing, diags *[]Diagnostic) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := s.Line() - 1

		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
		if !tag.IsEntry() || tag.Value != "TABLE" {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "expected TABLE record",
			})
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		// table header: the name is in the 2-coded tag; the record count
		// is advisory and ignored
		name := ""
		for {
			t, err := s.NextTag()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if t.IsEntry() {
				s.PushBack(t)
				break
			}
			if t.Code == 2 {
				name = t.Value
			}
		}

		if err := readTableRecords(s, d, name, diags); err != nil {
			return err
		}
	}
}

// readTableRecords decodes the records of one symbol table, up to and
// including the closing ENDTAB.
func readTableRecords(s *Scanner, d *Drawing, name string, diags *[]Diagnostic) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := s.Line() - 1

		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
		if !tag.IsEntry() {
			*diags = append(*diags, Diagnostic{
				Entity: name, Code: tag.Code, Line: line,
				Msg: "tag between table records",
			})
			continue
		}
		if tag.Value == "ENDTAB" {
			return skipRecord(s)
		}

		switch {
		case tag.Value == "LAYER" && name == "LAYER":
			l := &Layer{}
			if err := decodeFields(s, layerTable, l, diags); err != nil {
				return err
			}
			d.Layers = append(d.Layers, l)
		case tag.Value == "LTYPE" && name == "LTYPE":
			lt := &Linetype{}
			if err := decodeFields(s, linetypeTable, lt, diags); err != nil {
				return err
			}
			d.Linetypes = append(d.Linetypes, lt)
		case tag.Value == "STYLE" && name == "STYLE":
			st := &Style{}
			if err := decodeFields(s, styleTable, st, diags); err != nil {
				return err
			}
			d.TextStyles = append(d.TextStyles, st)
		case tag.Value == "DIMSTYLE" && name == "DIMSTYLE":
			ds := &DimStyle{}
			if err := decodeFields(s, dimStyleTable, ds, diags); err != nil {
				return err
			}
			d.DimStyles = append(d.DimStyles, ds)
		default:
			*diags = append(*diags, Diagnostic{
				Entity: name, Code: tag.Code, Line: line,
				Msg: "skipping table record " + tag.Value,
			})
			if err := skipRecord(s); err != nil {
				return err
			}
		}
	}
}

// readClasses decodes the CLASSES section.
func readClasses(s *Scanner, d *Drawing, diags *[]Diagnostic) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
		if !tag.IsEntry() || tag.Value != "CLASS" {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: s.Line() - 1, Msg: "expected CLASS record",
			})
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		c := &Class{}
		if err := decodeFields(s, classTable, c, diags); err != nil {
			return err
		}
		d.Classes = append(d.Classes, c)
	}
}

// readObjects decodes the OBJECTS section.
func readObjects(s *Scanner, d *Drawing, diags *[]Diagnostic) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line := s.Line() - 1

		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
		if !tag.IsEntry() {
			*diags = append(*diags, Diagnostic{
				Code: tag.Code, Line: line, Msg: "tag between objects",
			})
			continue
		}

		def, ok := objectDefs[tag.Value]
		if !ok {
			*diags = append(*diags, Diagnostic{
				Entity: tag.Value, Code: tag.Code, Line: line,
				Msg: "skipping unknown object type",
			})
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}
		obj := def.make()
		if err := decodeFields(s, def.table, obj, diags); err != nil {
			return err
		}
		d.Objects = append(d.Objects, obj)
	}
}

// skipRecord consumes tags up to, but not including, the next 0-coded
// tag.
func skipRecord(s *Scanner) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.IsEntry() {
			s.PushBack(tag)
			return nil
		}
	}
}

// skipSection consumes tags up to, but not including, the ENDSEC tag of
// the current section.
func skipSection(s *Scanner) error {
	for {
		tag, err := s.NextTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.IsEntry() && (tag.Value == "ENDSEC" || tag.Value == "EOF") {
			s.PushBack(tag)
			return nil
		}
	}
}
