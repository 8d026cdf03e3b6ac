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

// A Spline is a NURBS curve.  The file stores the number of knots, control
// points and fit points redundantly; when reading, the repetition of the
// groups themselves is authoritative and the stored counts are ignored.
// When writing, the counts are computed from the slice lengths.
type Spline struct {
	Common

	// Flags is a bit field: 1 closed, 2 periodic, 4 rational, 8 planar,
	// 16 linear.
	Flags int16

	// Degree is the degree of the curve.
	Degree int16

	KnotTolerance    float64
	ControlTolerance float64
	FitTolerance     float64

	Knots []float64

	// Weights holds one weight per control point for rational splines.
	// Non-rational splines leave it empty.
	Weights []float64

	ControlPoints []Point
	FitPoints     []Point
}

// Spline flag bits.
const (
	SplineClosed   = 1 << 0
	SplinePeriodic = 1 << 1
	SplineRational = 1 << 2
	SplinePlanar   = 1 << 3
	SplineLinear   = 1 << 4
)

func NewSpline() *Spline {
	s := &Spline{}
	applyDefaults(splineTable, s)
	return s
}

// EntityType returns "SPLINE".
func (s *Spline) EntityType() string { return "SPLINE" }

func (s *Spline) check() error {
	switch {
	case s.Degree < 1:
		return &InvalidEntityError{Type: "SPLINE", Reason: "degree must be at least 1"}
	case len(s.Weights) > 0 && len(s.Weights) != len(s.ControlPoints):
		return &InvalidEntityError{Type: "SPLINE", Reason: "one weight per control point required"}
	}
	return nil
}

var splineTable = &entityTable{
	name: "SPLINE",
	fields: append(commonFields(),
		FieldSpec{Code: 100, Kind: KindSubclass, Subclass: "AcDbSpline", Min: R2000},
		FieldSpec{Code: 70, Field: "Flags", Kind: KindInt16, Default: 8},
		FieldSpec{Code: 71, Field: "Degree", Kind: KindInt16, Default: 3},
		FieldSpec{Code: 72, CountOf: "Knots", Kind: KindInt16},
		FieldSpec{Code: 73, CountOf: "ControlPoints", Kind: KindInt16},
		FieldSpec{Code: 74, CountOf: "FitPoints", Kind: KindInt16},
		FieldSpec{Code: 42, Field: "KnotTolerance", Kind: KindDouble, Default: 1e-7, Omit: true},
		FieldSpec{Code: 43, Field: "ControlTolerance", Kind: KindDouble, Default: 1e-7, Omit: true},
		FieldSpec{Code: 44, Field: "FitTolerance", Kind: KindDouble, Default: 1e-9, Omit: true},
		FieldSpec{Code: 40, Field: "Knots", Kind: KindDouble, Repeatable: true},
		FieldSpec{Code: 41, Field: "Weights", Kind: KindDouble, Repeatable: true},
		FieldSpec{Code: 10, Field: "ControlPoints", Kind: KindPoint, Repeatable: true},
		FieldSpec{Code: 11, Field: "FitPoints", Kind: KindPoint, Repeatable: true},
	),
}
