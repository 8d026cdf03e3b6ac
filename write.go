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
	"io"
	"os"
)

// WriteFile writes the drawing to the named file, creating or truncating
// it.
func WriteFile(name string, d *Drawing) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Write(fd, d)
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Write writes the drawing to w, at the version stored in the drawing's
// header.  Records which fail validation are skipped entirely; the
// remaining records are still written, and the validation failures are
// joined into the returned error.  I/O errors abort writing.
func Write(w io.Writer, d *Drawing) error {
	if d == nil {
		return errors.New("dxf: nil drawing")
	}
	ver := d.Version()
	if _, err := ver.ToString(); err != nil {
		return err
	}
	h := d.Header
	if h == nil {
		h = NewHeader(ver)
	}

	tw := NewTagWriter(w)
	if ver < R2007 {
		if enc, ok := codepageEncoding(h.Codepage); ok {
			tw.SetEncoding(enc.NewEncoder())
		}
	}

	// Handles are mandatory from AC1012 onwards; give one to every record
	// which does not have one yet.
	if ver >= R13 {
		h.HandSeed = allocateHandles(d)
	}

	wr := &fileWriter{tw: tw, ver: ver}

	wr.beginSection("HEADER")
	if wr.err == nil {
		wr.err = encodeHeader(tw, h, ver)
	}
	wr.endSection()

	if ver >= R13 && len(d.Classes) > 0 {
		wr.beginSection("CLASSES")
		for _, c := range d.Classes {
			wr.record(classTable, c)
		}
		wr.endSection()
	}

	if len(d.Layers)+len(d.Linetypes)+len(d.TextStyles)+len(d.DimStyles) > 0 {
		wr.beginSection("TABLES")
		wr.table("LTYPE", len(d.Linetypes), func() {
			for _, lt := range d.Linetypes {
				wr.record(linetypeTable, lt)
			}
		})
		wr.table("LAYER", len(d.Layers), func() {
			for _, l := range d.Layers {
				wr.record(layerTable, l)
			}
		})
		wr.table("STYLE", len(d.TextStyles), func() {
			for _, st := range d.TextStyles {
				wr.record(styleTable, st)
			}
		})
		wr.table("DIMSTYLE", len(d.DimStyles), func() {
			for _, ds := range d.DimStyles {
				wr.record(dimStyleTable, ds)
			}
		})
		wr.endSection()
	}

	if len(d.Blocks) > 0 {
		wr.beginSection("BLOCKS")
		for _, b := range d.Blocks {
			if !wr.record(blockTable, b) {
				// skip the whole definition, not just its header
				continue
			}
			for _, e := range b.Entities {
				wr.entity(e)
			}
			wr.record(endBlkTable, &b.End)
		}
		wr.endSection()
	}

	wr.beginSection("ENTITIES")
	for _, e := range d.Entities {
		wr.entity(e)
	}
	wr.endSection()

	if ver >= R13 && len(d.Objects) > 0 {
		wr.beginSection("OBJECTS")
		for _, obj := range d.Objects {
			if def, ok := objectDefs[obj.ObjectType()]; ok {
				wr.record(def.table, obj)
			}
		}
		wr.endSection()
	}

	if ver >= R2000 && d.Thumbnail != nil {
		wr.beginSection("THUMBNAILIMAGE")
		if wr.err == nil {
			wr.err = encodeThumbnail(tw, d.Thumbnail)
		}
		wr.endSection()
	}

	if wr.err == nil {
		wr.err = tw.WriteTag(0, "EOF")
	}
	if wr.err != nil {
		return wr.err
	}
	return errors.Join(wr.invalid...)
}

// fileWriter tracks the first I/O error and collects validation failures,
// so that one degenerate record does not abort the whole file.
type fileWriter struct {
	tw  *TagWriter
	ver Version

	err     error
	invalid []error
}

func (wr *fileWriter) beginSection(name string) {
	if wr.err != nil {
		return
	}
	if err := wr.tw.WriteTag(0, "SECTION"); err != nil {
		wr.err = err
		return
	}
	wr.err = wr.tw.WriteTag(2, name)
}

func (wr *fileWriter) endSection() {
	if wr.err != nil {
		return
	}
	wr.err = wr.tw.WriteTag(0, "ENDSEC")
}

// table writes one symbol table: the TABLE/ENDTAB frame, the record
// count, and the records emitted by body.  Empty tables are not written.
func (wr *fileWriter) table(name string, n int, body func()) {
	if wr.err != nil || n == 0 {
		return
	}
	if wr.err = wr.tw.WriteTag(0, "TABLE"); wr.err != nil {
		return
	}
	if wr.err = wr.tw.WriteTag(2, name); wr.err != nil {
		return
	}
	if wr.err = wr.tw.WriteInt(70, int64(n)); wr.err != nil {
		return
	}
	body()
	if wr.err == nil {
		wr.err = wr.tw.WriteTag(0, "ENDTAB")
	}
}

// record writes one record and reports whether it was written.
func (wr *fileWriter) record(tab *entityTable, rec any) bool {
	if wr.err != nil {
		return false
	}
	err := encodeRecord(wr.tw, tab, rec, wr.ver)
	var invalid *InvalidEntityError
	if errors.As(err, &invalid) {
		wr.invalid = append(wr.invalid, err)
		return false
	}
	wr.err = err
	return err == nil
}

func (wr *fileWriter) entity(e Entity) {
	def, ok := entityDefs[e.EntityType()]
	if !ok {
		wr.invalid = append(wr.invalid, &InvalidEntityError{
			Type: e.EntityType(), Reason: "no field table registered",
		})
		return
	}
	wr.record(def.table, e)
}

// allocateHandles gives a fresh handle to every record which has none and
// returns the next free handle, to be stored in $HANDSEED.
func allocateHandles(d *Drawing) Handle {
	next := Handle(1)
	bump := func(h Handle) {
		if h >= next {
			next = h + 1
		}
	}
	each := func(visit func(h *Handle)) {
		for _, l := range d.Layers {
			visit(&l.Handle)
		}
		for _, lt := range d.Linetypes {
			visit(&lt.Handle)
		}
		for _, st := range d.TextStyles {
			visit(&st.Handle)
		}
		for _, ds := range d.DimStyles {
			visit(&ds.Handle)
		}
		for _, b := range d.Blocks {
			visit(&b.Handle)
			visit(&b.End.Handle)
			for _, e := range b.Entities {
				visit(&e.common().Handle)
			}
		}
		for _, e := range d.Entities {
			visit(&e.common().Handle)
		}
		for _, obj := range d.Objects {
			if dict, ok := obj.(*Dictionary); ok {
				visit(&dict.Handle)
			}
		}
	}

	each(func(h *Handle) { bump(*h) })
	each(func(h *Handle) {
		if *h == 0 {
			*h = next
			next++
		}
	})
	return next
}
