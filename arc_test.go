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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArcEncodeR14(t *testing.T) {
	a := NewArc()
	a.Handle = 1
	a.Center = Point{X: 1, Y: 2}
	a.Radius = 5
	a.StartAngle = 0
	a.EndAngle = 90

	buf := &bytes.Buffer{}
	if err := encodeRecord(NewTagWriter(buf), arcTable, a, R14); err != nil {
		t.Fatal(err)
	}

	// AC1014 output has no subclass markers, and fields at their
	// documented defaults are suppressed.
	expected := "  0\nARC\n" +
		"  5\n1\n" +
		"  8\n0\n" +
		" 10\n1.000000\n" +
		" 20\n2.000000\n" +
		" 30\n0.000000\n" +
		" 40\n5.000000\n" +
		" 50\n0.000000\n" +
		" 51\n90.000000\n"
	if got := buf.String(); got != expected {
		t.Errorf("got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestArcEncodeR2000(t *testing.T) {
	a := NewArc()
	a.Handle = 0x2A
	a.Layer = "Walls"
	a.Radius = 2
	a.StartAngle = 30
	a.EndAngle = 60

	buf := &bytes.Buffer{}
	if err := encodeRecord(NewTagWriter(buf), arcTable, a, R2000); err != nil {
		t.Fatal(err)
	}

	expected := "  0\nARC\n" +
		"  5\n2A\n" +
		"100\nAcDbEntity\n" +
		"  8\nWalls\n" +
		"100\nAcDbCircle\n" +
		" 10\n0.000000\n" +
		" 20\n0.000000\n" +
		" 30\n0.000000\n" +
		" 40\n2.000000\n" +
		"100\nAcDbArc\n" +
		" 50\n30.000000\n" +
		" 51\n60.000000\n"
	if got := buf.String(); got != expected {
		t.Errorf("got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestArcCheck(t *testing.T) {
	cases := []struct {
		name string
		mod  func(a *Arc)
		ok   bool
	}{
		{"valid", func(a *Arc) {}, true},
		{"zero radius", func(a *Arc) { a.Radius = 0 }, false},
		{"negative radius", func(a *Arc) { a.Radius = -1 }, false},
		{"degenerate angles", func(a *Arc) { a.EndAngle = a.StartAngle }, false},
		{"start angle too large", func(a *Arc) { a.StartAngle = 360 }, false},
		{"negative end angle", func(a *Arc) { a.EndAngle = -90 }, false},
	}
	for _, test := range cases {
		a := NewArc()
		a.Radius = 5
		a.EndAngle = 90
		test.mod(a)

		buf := &bytes.Buffer{}
		err := encodeRecord(NewTagWriter(buf), arcTable, a, R2000)
		if test.ok {
			if err != nil {
				t.Errorf("%s: %v", test.name, err)
			}
			continue
		}

		var invalid *InvalidEntityError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: got error %v, want InvalidEntityError", test.name, err)
		}
		// nothing at all may be written for an invalid record
		if buf.Len() != 0 {
			t.Errorf("%s: partial output %q", test.name, buf.String())
		}
	}
}

func TestArcDecodeEmptyLayer(t *testing.T) {
	cases := []string{
		" 40\n5.0\n 51\n90.0\n",          // no layer tag at all
		"  8\n\n 40\n5.0\n 51\n90.0\n",   // empty layer value
		"  8\n0\n 40\n5.0\n 51\n90.0\n",  // explicit default
	}
	for i, in := range cases {
		s := NewScanner(strings.NewReader(in))
		a := &Arc{}
		var diags []Diagnostic
		if err := decodeFields(s, arcTable, a, &diags); err != nil {
			t.Fatal(err)
		}
		if a.Layer != "0" {
			t.Errorf("%d: layer %q, want %q", i, a.Layer, "0")
		}
	}
}

func TestArcEncodeEmptyLayer(t *testing.T) {
	a := NewArc()
	a.Layer = ""
	a.Radius = 5
	a.EndAngle = 90

	buf := &bytes.Buffer{}
	if err := encodeRecord(NewTagWriter(buf), arcTable, a, R14); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  8\n0\n") {
		t.Errorf("empty layer not written as %q:\n%s", "0", buf.String())
	}
}

func TestArcRoundTrip(t *testing.T) {
	a := NewArc()
	a.Handle = 7
	a.Layer = "Dimensions"
	a.Color = 3
	a.Center = Point{X: -1.5, Y: 2.25, Z: 0.5}
	a.Radius = 12.5
	a.StartAngle = 15
	a.EndAngle = 345
	a.Thickness = 2

	for _, ver := range []Version{R12, R2000, R2018} {
		buf := &bytes.Buffer{}
		if err := encodeRecord(NewTagWriter(buf), arcTable, a, ver); err != nil {
			t.Fatal(err)
		}

		s := NewScanner(strings.NewReader(buf.String()))
		if _, err := s.NextTag(); err != nil {
			t.Fatal(err)
		}
		back := &Arc{}
		var diags []Diagnostic
		if err := decodeFields(s, arcTable, back, &diags); err != nil {
			t.Fatal(err)
		}
		if len(diags) != 0 {
			t.Errorf("%s: diagnostics %v", ver, diags)
		}
		if d := cmp.Diff(a, back); d != "" {
			t.Errorf("%s: round trip (-want +got):\n%s", ver, d)
		}
	}
}
