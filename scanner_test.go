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
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestNextTag(t *testing.T) {
	cases := []struct {
		in   string
		tags []Tag
		err  error
	}{
		{"", nil, io.EOF},
		{"0\nARC\n", []Tag{{0, "ARC"}}, io.EOF},
		{"  0\nARC\n", []Tag{{0, "ARC"}}, io.EOF},
		{"0\nARC", []Tag{{0, "ARC"}}, io.EOF},
		{"0\r\nARC\r\n", []Tag{{0, "ARC"}}, io.EOF},
		{"999\na comment\n", []Tag{{999, "a comment"}}, io.EOF},
		{"10\n1.5\n20\n-2.5\n", []Tag{{10, "1.5"}, {20, "-2.5"}}, io.EOF},

		// values are read verbatim, including leading spaces
		{"1\n  indented\n", []Tag{{1, "  indented"}}, io.EOF},
		{"1\n\n", []Tag{{1, ""}}, io.EOF},

		// blank lines before a group code are skipped
		{"\n\n0\nEOF\n\n", []Tag{{0, "EOF"}}, io.EOF},

		// structural errors
		{"zero\nARC\n", nil, &MalformedTagError{}},
		{"0\n", nil, &MalformedTagError{}},
		{"10\n1.0\n40\n", []Tag{{10, "1.0"}}, &MalformedTagError{}},
	}
	for i, test := range cases {
		s := NewScanner(strings.NewReader(test.in))
		var tags []Tag
		var err error
		for {
			var tag Tag
			tag, err = s.NextTag()
			if err != nil {
				break
			}
			tags = append(tags, tag)
		}

		if len(tags) != len(test.tags) {
			t.Errorf("%d: got %d tags, want %d", i, len(tags), len(test.tags))
			continue
		}
		for j := range tags {
			if tags[j] != test.tags[j] {
				t.Errorf("%d: tag %d: got %v, want %v", i, j, tags[j], test.tags[j])
			}
		}

		if test.err == io.EOF {
			if err != io.EOF {
				t.Errorf("%d: got error %v, want io.EOF", i, err)
			}
		} else {
			var target *MalformedTagError
			if !errors.As(err, &target) {
				t.Errorf("%d: got error %v, want MalformedTagError", i, err)
			}
		}
	}
}

func TestPushBack(t *testing.T) {
	s := NewScanner(strings.NewReader("0\nARC\n8\nWalls\n"))

	tag, err := s.NextTag()
	if err != nil {
		t.Fatal(err)
	}
	s.PushBack(tag)

	again, err := s.NextTag()
	if err != nil {
		t.Fatal(err)
	}
	if again != tag {
		t.Errorf("pushed back tag changed: got %v, want %v", again, tag)
	}

	next, err := s.NextTag()
	if err != nil {
		t.Fatal(err)
	}
	if next != (Tag{8, "Walls"}) {
		t.Errorf("got %v after pushback", next)
	}
}

func TestPushBackTwicePanics(t *testing.T) {
	s := NewScanner(strings.NewReader("0\nARC\n"))
	s.PushBack(Tag{0, "ARC"})
	defer func() {
		if recover() == nil {
			t.Error("second PushBack did not panic")
		}
	}()
	s.PushBack(Tag{0, "ARC"})
}

func TestLineNumbers(t *testing.T) {
	s := NewScanner(strings.NewReader("0\nARC\n40\n5.0\n"))
	if s.Line() != 0 {
		t.Errorf("initial line number %d", s.Line())
	}
	if _, err := s.NextTag(); err != nil {
		t.Fatal(err)
	}
	if s.Line() != 2 {
		t.Errorf("after one tag: line %d, want 2", s.Line())
	}
	if _, err := s.NextTag(); err != nil {
		t.Fatal(err)
	}
	if s.Line() != 4 {
		t.Errorf("after two tags: line %d, want 4", s.Line())
	}
}

func TestScannerClosedAfterError(t *testing.T) {
	s := NewScanner(strings.NewReader("not a code\nvalue\n0\nARC\n"))
	_, err1 := s.NextTag()
	if err1 == nil {
		t.Fatal("expected an error")
	}
	_, err2 := s.NextTag()
	if err2 != err1 {
		t.Errorf("scanner not closed: second error %v, first %v", err2, err1)
	}
}

func TestMalformedTagErrorLine(t *testing.T) {
	s := NewScanner(strings.NewReader("0\nARC\nbad\nvalue\n"))
	if _, err := s.NextTag(); err != nil {
		t.Fatal(err)
	}
	_, err := s.NextTag()
	var mErr *MalformedTagError
	if !errors.As(err, &mErr) {
		t.Fatalf("got %v, want MalformedTagError", err)
	}
	if mErr.Line != 3 {
		t.Errorf("error reported for line %d, want 3", mErr.Line)
	}
}

func TestScannerEncoding(t *testing.T) {
	s := NewScanner(strings.NewReader("1\ncaf\xe9\n"))
	s.SetEncoding(charmap.Windows1252.NewDecoder())
	tag, err := s.NextTag()
	if err != nil {
		t.Fatal(err)
	}
	if tag.Value != "café" {
		t.Errorf("got %q, want %q", tag.Value, "café")
	}
}
