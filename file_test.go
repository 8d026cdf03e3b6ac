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
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// makeDrawing builds a drawing exercising every section of the file.
func makeDrawing() *Drawing {
	d := NewDrawing(R2000)

	d.Classes = append(d.Classes, &Class{
		Record:   "ACDBDICTIONARYWDFLT",
		Name:     "AcDbDictionaryWithDefault",
		App:      "ObjectDBX Classes",
		IsEntity: 0,
	})

	layer := NewLayer("Walls")
	layer.Color = 3
	d.Layers = append(d.Layers, NewLayer("0"), layer)

	dashed := NewLinetype("DASHED")
	dashed.Description = "Dashed _ _ _ _"
	dashed.PatternLength = 0.75
	dashed.Pattern = []float64{0.5, -0.25}
	d.Linetypes = append(d.Linetypes, NewLinetype("CONTINUOUS"), dashed)

	d.TextStyles = append(d.TextStyles, NewStyle("STANDARD"))
	d.DimStyles = append(d.DimStyles, NewDimStyle("STANDARD"))

	b := NewBlock("DOOR")
	inner := NewLine()
	inner.End = Point{X: 1, Y: 0, Z: 0}
	b.Entities = append(b.Entities, inner)
	d.Blocks = append(d.Blocks, b)

	a := NewArc()
	a.Layer = "Walls"
	a.Center = Point{X: 10, Y: 10}
	a.Radius = 5
	a.EndAngle = 90
	c := NewCircle()
	c.Radius = 2.5
	txt := NewText()
	txt.Value = "scale 1:100"
	txt.Height = 2.5
	d.Entities = append(d.Entities, a, c, txt)

	dict := NewDictionary()
	dict.Entries = []DictEntry{
		{Name: "ACAD_GROUP", Ref: 0xD},
		{Name: "ACAD_LAYOUT", Ref: 0x1A},
	}
	d.Objects = append(d.Objects, dict)

	return d
}

func TestWriteReadRoundTrip(t *testing.T) {
	d := makeDrawing()

	buf := &bytes.Buffer{}
	if err := Write(buf, d); err != nil {
		t.Fatal(err)
	}

	back, diags, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics: %v", diags)
	}

	// Write allocates handles into d, so the two drawings must now agree
	// exactly.
	if diff := cmp.Diff(d, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestWriteSectionLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, makeDrawing()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "  0\nSECTION\n  2\nHEADER\n") {
		t.Errorf("file does not start with the HEADER section:\n%.80s", out)
	}
	if !strings.HasSuffix(out, "  0\nEOF\n") {
		t.Error("file does not end with 0/EOF")
	}

	for _, name := range []string{
		"CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS",
	} {
		if !strings.Contains(out, "  0\nSECTION\n  2\n"+name+"\n") {
			t.Errorf("missing section %s", name)
		}
	}

	// empty symbol tables are not written
	if strings.Contains(out, "VPORT") {
		t.Error("unexpected VPORT table")
	}
}

func TestWriteR12(t *testing.T) {
	d := makeDrawing()
	d.Header.Version = R12

	buf := &bytes.Buffer{}
	if err := Write(buf, d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// AC1009 predates classes, objects, handles and subclass markers
	if strings.Contains(out, "CLASSES") || strings.Contains(out, "OBJECTS") {
		t.Error("AC1009 output contains post-R12 sections")
	}
	if strings.Contains(out, "AcDb") {
		t.Error("AC1009 output contains subclass markers")
	}
	if strings.Contains(out, "$HANDSEED") {
		t.Error("AC1009 output contains $HANDSEED")
	}
}

func TestWriteSkipsInvalid(t *testing.T) {
	d := NewDrawing(R2000)
	bad := NewArc() // zero radius
	good := NewLine()
	good.End = Point{X: 1, Y: 1, Z: 0}
	d.Entities = append(d.Entities, bad, good)

	buf := &bytes.Buffer{}
	err := Write(buf, d)

	var invalid *InvalidEntityError
	if !errors.As(err, &invalid) {
		t.Fatalf("got error %v, want InvalidEntityError", err)
	}

	// the valid entity is still written, the invalid one leaves no trace
	out := buf.String()
	if strings.Contains(out, "\nARC\n") {
		t.Error("invalid ARC was written")
	}
	if !strings.Contains(out, "\nLINE\n") {
		t.Error("valid LINE is missing")
	}

	back, _, readErr := Read(bytes.NewReader(buf.Bytes()))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(back.Entities) != 1 {
		t.Errorf("read %d entities, want 1", len(back.Entities))
	}
}

func TestHandleAllocation(t *testing.T) {
	d := NewDrawing(R2000)
	a := NewArc()
	a.Handle = 0x10
	a.Radius = 1
	a.EndAngle = 180
	c := NewCircle()
	c.Radius = 1
	d.Entities = append(d.Entities, a, c)

	buf := &bytes.Buffer{}
	if err := Write(buf, d); err != nil {
		t.Fatal(err)
	}

	if a.Handle != 0x10 {
		t.Errorf("existing handle changed to %v", a.Handle)
	}
	if c.Handle == 0 {
		t.Error("no handle allocated")
	}
	if c.Handle <= 0x10 {
		t.Errorf("allocated handle %v collides with existing handles", c.Handle)
	}
	if d.Header.HandSeed <= c.Handle {
		t.Errorf("$HANDSEED %v is not past the last handle %v",
			d.Header.HandSeed, c.Handle)
	}
}

func TestReadRecovery(t *testing.T) {
	in := "999\nhand-written test file\n" +
		"  0\nSECTION\n  2\nENTITIES\n" +
		"  0\nSOLID\n 10\n1.0\n 20\n2.0\n" + // not a supported entity type
		"  0\nARC\n 40\n5.0\n 51\n90.0\n" +
		"  0\nENDSEC\n" +
		"  0\nSECTION\n  2\nACDSDATA\n" + // unknown section
		" 70\n2\n" +
		"  0\nENDSEC\n" +
		"  0\nEOF\n"

	d, diags, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Entities) != 1 {
		t.Fatalf("read %d entities, want 1", len(d.Entities))
	}
	a, ok := d.Entities[0].(*Arc)
	if !ok || a.Radius != 5 {
		t.Errorf("decoded %#v", d.Entities[0])
	}

	// one diagnostic each for the comment, the skipped POINT and the
	// skipped section
	if len(diags) != 3 {
		t.Errorf("got %d diagnostics, want 3: %v", len(diags), diags)
	}
}

func TestReadTruncated(t *testing.T) {
	in := "  0\nSECTION\n  2\nENTITIES\n  0\nARC\n 40\n"
	_, _, err := Read(strings.NewReader(in))
	var mErr *MalformedTagError
	if !errors.As(err, &mErr) {
		t.Fatalf("got error %v, want MalformedTagError", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error %v does not wrap io.ErrUnexpectedEOF", err)
	}
}

func TestReadCodepage(t *testing.T) {
	// layer name in codepage 1251, as written by a Russian AutoCAD
	in := "  0\nSECTION\n  2\nHEADER\n" +
		"  9\n$ACADVER\n  1\nAC1015\n" +
		"  9\n$DWGCODEPAGE\n  3\nANSI_1251\n" +
		"  0\nENDSEC\n" +
		"  0\nSECTION\n  2\nTABLES\n" +
		"  0\nTABLE\n  2\nLAYER\n 70\n1\n" +
		"  0\nLAYER\n  2\n\xd1\xf2\xe5\xed\xfb\n 62\n3\n" +
		"  0\nENDTAB\n" +
		"  0\nENDSEC\n" +
		"  0\nEOF\n"

	d, diags, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics %v", diags)
	}
	if len(d.Layers) != 1 {
		t.Fatalf("read %d layers", len(d.Layers))
	}
	if d.Layers[0].Name != "Стены" {
		t.Errorf("layer name %q", d.Layers[0].Name)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	d := NewDrawing(R2000)
	b := NewBlock("*U1")
	b.Flags = BlockAnonymous
	b.Base = Point{X: 1, Y: 2, Z: 0}
	inner := NewCircle()
	inner.Radius = 0.5
	b.Entities = append(b.Entities, inner)
	d.Blocks = append(d.Blocks, b)

	buf := &bytes.Buffer{}
	if err := Write(buf, d); err != nil {
		t.Fatal(err)
	}

	back, diags, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics %v", diags)
	}

	got := back.Block("*U1")
	if got == nil {
		t.Fatal("block not found")
	}
	if !got.IsAnonymous() {
		t.Error("anonymous flag lost")
	}
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}
}

func TestDrawingLookups(t *testing.T) {
	d := makeDrawing()
	if d.Layer("Walls") == nil || d.Layer("missing") != nil {
		t.Error("layer lookup")
	}
	if d.Block("DOOR") == nil || d.Block("missing") != nil {
		t.Error("block lookup")
	}
	if d.Version() != R2000 {
		t.Errorf("version %s", d.Version())
	}
}
