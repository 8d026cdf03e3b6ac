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
	"reflect"
)

// A Header holds the global drawing variables of the HEADER section.
// Every drawing has exactly one.  Variables not in this list are skipped
// with a diagnostic when reading; unknown variables are common and
// harmless.
type Header struct {
	// Version is the drawing's format version ($ACADVER).
	Version Version

	// Codepage is the character encoding of string values in pre-AC1021
	// files ($DWGCODEPAGE), e.g. "ANSI_1252".
	Codepage string

	// InsBase is the base point for insertions ($INSBASE).
	InsBase Point

	// ExtMin and ExtMax are the corners of the drawing extents.
	ExtMin Point
	ExtMax Point

	// LimMin and LimMax are the model space limits.
	LimMin Point
	LimMax Point

	// PLimMin and PLimMax are the paper space limits.
	PLimMin Point
	PLimMax Point

	OrthoMode int16
	FillMode  int16
	MirrText  int16

	// LtScale is the global linetype scale.
	LtScale float64

	// TextSize is the default text height.
	TextSize float64

	// TextStyle is the current text style name.
	TextStyle string

	// CLayer is the current layer.
	CLayer string

	// CELType is the current entity linetype.
	CELType string

	// CEColor is the current entity color index.
	CEColor int16

	DimScale         float64
	DimArrowSize     float64
	DimExtLineOffset float64
	DimExtLineExtend float64
	DimTextHeight    float64
	DimStyle         string

	// LUnits and LUPrec select the linear unit format and precision.
	LUnits int16
	LUPrec int16

	// AUnits and AUPrec select the angular unit format and precision.
	AUnits int16
	AUPrec int16

	FilletRadius float64

	// PointMode and PointSize control how POINT entities are displayed.
	PointMode int16
	PointSize float64

	SplineSegs int16

	// Measurement is 0 for imperial and 1 for metric hatch and linetype
	// files.
	Measurement int16

	// HandSeed is the next available handle.  The file writer maintains
	// this; it is overwritten when handles are allocated.
	HandSeed Handle
}

// headerVars is the field table of the HEADER section, keyed by variable
// name instead of group code: each variable is introduced by a 9-coded tag
// holding its name, followed by its value groups.
var headerVars = []struct {
	name string
	spec FieldSpec
}{
	{"$DWGCODEPAGE", FieldSpec{Code: 3, Field: "Codepage", Kind: KindString, Default: "ANSI_1252", Max: R2004}},
	{"$INSBASE", FieldSpec{Code: 10, Field: "InsBase", Kind: KindPoint}},
	{"$EXTMIN", FieldSpec{Code: 10, Field: "ExtMin", Kind: KindPoint}},
	{"$EXTMAX", FieldSpec{Code: 10, Field: "ExtMax", Kind: KindPoint}},
	{"$LIMMIN", FieldSpec{Code: 10, Field: "LimMin", Kind: KindPoint2D}},
	{"$LIMMAX", FieldSpec{Code: 10, Field: "LimMax", Kind: KindPoint2D}},
	{"$PLIMMIN", FieldSpec{Code: 10, Field: "PLimMin", Kind: KindPoint2D}},
	{"$PLIMMAX", FieldSpec{Code: 10, Field: "PLimMax", Kind: KindPoint2D}},
	{"$ORTHOMODE", FieldSpec{Code: 70, Field: "OrthoMode", Kind: KindInt16}},
	{"$FILLMODE", FieldSpec{Code: 70, Field: "FillMode", Kind: KindInt16, Default: 1}},
	{"$MIRRTEXT", FieldSpec{Code: 70, Field: "MirrText", Kind: KindInt16}},
	{"$LTSCALE", FieldSpec{Code: 40, Field: "LtScale", Kind: KindDouble, Default: 1.0}},
	{"$TEXTSIZE", FieldSpec{Code: 40, Field: "TextSize", Kind: KindDouble, Default: 0.2}},
	{"$TEXTSTYLE", FieldSpec{Code: 7, Field: "TextStyle", Kind: KindString, Default: "STANDARD"}},
	{"$CLAYER", FieldSpec{Code: 8, Field: "CLayer", Kind: KindString, Default: "0"}},
	{"$CELTYPE", FieldSpec{Code: 6, Field: "CELType", Kind: KindString, Default: "BYLAYER"}},
	{"$CECOLOR", FieldSpec{Code: 62, Field: "CEColor", Kind: KindInt16, Default: 256}},
	{"$DIMSCALE", FieldSpec{Code: 40, Field: "DimScale", Kind: KindDouble, Default: 1.0}},
	{"$DIMASZ", FieldSpec{Code: 40, Field: "DimArrowSize", Kind: KindDouble, Default: 0.18}},
	{"$DIMEXO", FieldSpec{Code: 40, Field: "DimExtLineOffset", Kind: KindDouble, Default: 0.0625}},
	{"$DIMEXE", FieldSpec{Code: 40, Field: "DimExtLineExtend", Kind: KindDouble, Default: 0.18}},
	{"$DIMTXT", FieldSpec{Code: 40, Field: "DimTextHeight", Kind: KindDouble, Default: 0.18}},
	{"$DIMSTYLE", FieldSpec{Code: 2, Field: "DimStyle", Kind: KindString, Default: "STANDARD"}},
	{"$LUNITS", FieldSpec{Code: 70, Field: "LUnits", Kind: KindInt16, Default: 2}},
	{"$LUPREC", FieldSpec{Code: 70, Field: "LUPrec", Kind: KindInt16, Default: 4}},
	{"$AUNITS", FieldSpec{Code: 70, Field: "AUnits", Kind: KindInt16}},
	{"$AUPREC", FieldSpec{Code: 70, Field: "AUPrec", Kind: KindInt16}},
	{"$FILLETRAD", FieldSpec{Code: 40, Field: "FilletRadius", Kind: KindDouble}},
	{"$PDMODE", FieldSpec{Code: 70, Field: "PointMode", Kind: KindInt16}},
	{"$PDSIZE", FieldSpec{Code: 40, Field: "PointSize", Kind: KindDouble}},
	{"$SPLINESEGS", FieldSpec{Code: 70, Field: "SplineSegs", Kind: KindInt16, Default: 8}},
	{"$MEASUREMENT", FieldSpec{Code: 70, Field: "Measurement", Kind: KindInt16, Min: R14}},
	{"$HANDSEED", FieldSpec{Code: 5, Field: "HandSeed", Kind: KindHandle, Default: 1, Min: R13}},
}

// NewHeader returns a header with all variables at their defaults and the
// given version.
func NewHeader(ver Version) *Header {
	h := &Header{Version: ver}
	v := reflect.Indirect(reflect.ValueOf(h))
	for i := range headerVars {
		spec := &headerVars[i].spec
		f := v.FieldByName(spec.Field)
		f.Set(spec.defaultValue(f.Type()))
	}
	return h
}

// decodeHeader reads the body of the HEADER section, up to but not
// including the closing ENDSEC tag.
func decodeHeader(s *Scanner, h *Header, diags *[]Diagnostic) error {
	v := reflect.Indirect(reflect.ValueOf(h))

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
		line := s.Line() - 1

		if tag.IsComment() {
			*diags = append(*diags, Diagnostic{
				Entity: "HEADER", Code: tag.Code, Line: line,
				Msg: "comment: " + tag.Value,
			})
			continue
		}
		if tag.Code != 9 {
			*diags = append(*diags, Diagnostic{
				Entity: "HEADER", Code: tag.Code, Line: line,
				Msg: "tag outside a header variable",
			})
			continue
		}

		isVersion := tag.Value == "$ACADVER"
		var spec *FieldSpec
		if !isVersion {
			spec = findHeaderVar(tag.Value)
			if spec == nil {
				*diags = append(*diags, Diagnostic{
					Entity: "HEADER", Code: tag.Code, Line: line,
					Msg: "unknown header variable " + tag.Value,
				})
			}
		}

		// consume the value groups of this variable
		for {
			t, err := s.NextTag()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if t.IsEntry() || t.Code == 9 {
				s.PushBack(t)
				break
			}
			switch {
			case isVersion:
				ver, err := ParseVersion(t.Value)
				if err != nil {
					*diags = append(*diags, Diagnostic{
						Entity: "HEADER", Code: t.Code, Line: s.Line() - 1,
						Msg: err.Error() + " " + t.Value,
					})
				} else {
					h.Version = ver
				}
			case spec != nil && spec.matches(t.Code):
				storeTag(v, spec, t, "HEADER", s.Line()-1, diags)
			case spec != nil:
				*diags = append(*diags, Diagnostic{
					Entity: "HEADER", Code: t.Code, Line: s.Line() - 1,
					Msg: "unexpected group in " + tag.Value,
				})
			}
		}
	}
}

// encodeHeader writes the body of the HEADER section.  Header variables
// are always written, even at their default values; AutoCAD does the same.
func encodeHeader(w *TagWriter, h *Header, ver Version) error {
	verString, err := ver.ToString()
	if err != nil {
		return err
	}
	if err := w.WriteTag(9, "$ACADVER"); err != nil {
		return err
	}
	if err := w.WriteTag(1, verString); err != nil {
		return err
	}

	v := reflect.Indirect(reflect.ValueOf(h))
	for i := range headerVars {
		hv := &headerVars[i]
		if !hv.spec.validFor(ver) {
			continue
		}
		if err := w.WriteTag(9, hv.name); err != nil {
			return err
		}
		if err := hv.spec.writeValue(w, v.FieldByName(hv.spec.Field)); err != nil {
			return err
		}
	}
	return nil
}

func findHeaderVar(name string) *FieldSpec {
	for i := range headerVars {
		if headerVars[i].name == name {
			return &headerVars[i].spec
		}
	}
	return nil
}
