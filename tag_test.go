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

import "testing"

func TestHandle(t *testing.T) {
	cases := []struct {
		in  string
		h   Handle
		out string
	}{
		{"0", 0, "0"},
		{"1", 1, "1"},
		{"2a", 0x2A, "2A"},
		{"  FF  ", 0xFF, "FF"},
		{"10AB", 0x10AB, "10AB"},
	}
	for _, test := range cases {
		h, err := ParseHandle(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if h != test.h {
			t.Errorf("%q: got %d, want %d", test.in, h, test.h)
		}
		if got := h.String(); got != test.out {
			t.Errorf("%q: String() = %q, want %q", test.in, got, test.out)
		}
	}

	for _, bad := range []string{"", "xyz", "-1", "0x10"} {
		if _, err := ParseHandle(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

func TestTagPredicates(t *testing.T) {
	if !(Tag{0, "ARC"}).IsEntry() {
		t.Error("0-coded tag not recognised as entry")
	}
	if (Tag{8, "0"}).IsEntry() {
		t.Error("8-coded tag recognised as entry")
	}
	if !(Tag{999, "note"}).IsComment() {
		t.Error("999-coded tag not recognised as comment")
	}
}
