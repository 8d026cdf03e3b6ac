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

import "strconv"

// Version represents a DXF format version, named after the AutoCAD release
// which introduced it.  The zero value is invalid; [NewDrawing] and the
// file driver substitute [R2000] where no version has been set.
type Version int

// DXF versions supported by this library.
const (
	_ Version = iota
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
	tooHighVersion
)

// versionNames maps each version to the identifier stored in the $ACADVER
// header variable.
var versionNames = map[Version]string{
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// ParseVersion parses an AutoCAD version identifier, e.g. "AC1015".
func ParseVersion(verString string) (Version, error) {
	for ver, name := range versionNames {
		if name == verString {
			return ver, nil
		}
	}
	return 0, errVersion
}

// ToString returns the AutoCAD identifier for ver, e.g. "AC1015".
// If ver does not correspond to a supported DXF version, an error is
// returned.
func (ver Version) ToString() (string, error) {
	if name, ok := versionNames[ver]; ok {
		return name, nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	versionString, err := ver.ToString()
	if err != nil {
		versionString = "dxf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return versionString
}
