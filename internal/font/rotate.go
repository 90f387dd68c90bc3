package font

import "math"

// Matrix2x2 is a font instance's 2x2 transform matrix, plus the sin/cos of
// its rotation angle so backends can do inline trig without recomputing it
// (spec.md §4.1).
type Matrix2x2 struct {
	A, B, C, D float64
	Sin, Cos   float64
}

// Instance binds a *Struct to a size and an optional rotation matrix.
type Instance struct {
	Font *Struct
	Size int32 // millipoints
	Matrix Matrix2x2
}

// identityMatrix is the unrotated font matrix.
var identityMatrix = Matrix2x2{A: 1, D: 1, Sin: 0, Cos: 1}

// NewInstance returns an unrotated instance of f at the given size.
func NewInstance(f *Struct, size int32) Instance {
	return Instance{Font: f, Size: size, Matrix: identityMatrix}
}

// Rotate produces a new instance whose matrix is inst's matrix multiplied
// by a rotation of angleMilliDeg thousandths of a degree.
func Rotate(inst Instance, angleMilliDeg int32) Instance {
	theta := float64(angleMilliDeg) / 1000 * math.Pi / 180
	s, c := math.Sin(theta), math.Cos(theta)

	m := inst.Matrix
	out := Matrix2x2{
		A: m.A*c - m.B*s,
		B: m.A*s + m.B*c,
		C: m.C*c - m.D*s,
		D: m.C*s + m.D*c,
		Sin: s,
		Cos: c,
	}
	return Instance{Font: inst.Font, Size: inst.Size, Matrix: out}
}
