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
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestWriteTag(t *testing.T) {
	cases := []struct {
		write    func(w *TagWriter) error
		expected string
	}{
		{
			func(w *TagWriter) error { return w.WriteTag(0, "ARC") },
			"  0\nARC\n",
		},
		{
			func(w *TagWriter) error { return w.WriteTag(100, "AcDbEntity") },
			"100\nAcDbEntity\n",
		},
		{
			func(w *TagWriter) error { return w.WriteTag(1, "") },
			"  1\n\n",
		},
		{
			func(w *TagWriter) error { return w.WriteInt(70, 8) },
			" 70\n8\n",
		},
		{
			func(w *TagWriter) error { return w.WriteFloat(40, 5) },
			" 40\n5.000000\n",
		},
		{
			func(w *TagWriter) error { return w.WriteFloat(50, -12.25) },
			" 50\n-12.250000\n",
		},
		{
			func(w *TagWriter) error {
				return w.WritePoint(10, Point{X: 1, Y: 2, Z: 3}, false)
			},
			" 10\n1.000000\n 20\n2.000000\n",
		},
		{
			func(w *TagWriter) error {
				return w.WritePoint(10, Point{X: 1, Y: 2, Z: 3}, true)
			},
			" 10\n1.000000\n 20\n2.000000\n 30\n3.000000\n",
		},
	}
	for i, test := range cases {
		buf := &bytes.Buffer{}
		w := NewTagWriter(buf)
		if err := test.write(w); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if got := buf.String(); got != test.expected {
			t.Errorf("%d: got %q, want %q", i, got, test.expected)
		}
	}
}

func TestTagWriterEncoding(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTagWriter(buf)
	w.SetEncoding(charmap.Windows1252.NewEncoder())
	if err := w.WriteTag(1, "café"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "  1\ncaf\xe9\n" {
		t.Errorf("got %q", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTagWriter(buf)
	tags := []Tag{
		{0, "SECTION"},
		{2, "ENTITIES"},
		{8, "my layer"},
		{40, "1.000000"},
		{0, "ENDSEC"},
	}
	for _, tag := range tags {
		if err := w.WriteTag(tag.Code, tag.Value); err != nil {
			t.Fatal(err)
		}
	}

	s := NewScanner(strings.NewReader(buf.String()))
	for i, want := range tags {
		got, err := s.NextTag()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("tag %d: got %v, want %v", i, got, want)
		}
	}
}
