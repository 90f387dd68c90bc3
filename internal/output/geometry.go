package output

// BeamThickness computes beamthickness × fontsize × stavemagn / sec(slope)
// (spec.md §4.10 beam), using a per-mille cosine approximation for
// sec(slope) since beam slopes stay within MaxBeamSlope's small range.
func BeamThickness(beamThicknessPerMille, fontSizeMillipt, staveMagnPerMille, slopeMilli int32) int32 {
	base := beamThicknessPerMille * fontSizeMillipt / 1000 * staveMagnPerMille / 1000
	secPerMille := secMilli(slopeMilli)
	return base * 1000 / secPerMille
}

// accRitThicknessScalePerMille is the 85% thickness reduction an
// accelerando/ritardando beam segment gets.
const accRitThicknessScalePerMille int32 = 850

// AccRitBeamThickness applies the acc/rit reduction to a base thickness.
func AccRitBeamThickness(base int32) int32 {
	return base * accRitThicknessScalePerMille / 1000
}

// secMilli approximates 1/cos(slope) in per-mille units for the small
// slope range a beam can have (|slope| <= 350 thousandths, per
// internal/beam.MaxBeamSlope); a full trig implementation belongs to the
// eventual rendering of arbitrary rotated text, not beams.
func secMilli(slopeMilli int32) int32 {
	if slopeMilli < 0 {
		slopeMilli = -slopeMilli
	}
	// sec(x) ~= 1 + x^2/2 for small x (slope given as tan-like thousandths).
	return 1000 + (slopeMilli*slopeMilli)/2000
}

// BarlineHalfThickness returns the half-thickness (millipoints) for a
// drawn (non-music-font) barline of the given kind at magnification magn
// (spec.md §4.10 barline).
func BarlineHalfThickness(kind BarlineKind, magnPerMille int32) int32 {
	switch kind {
	case BarlineThick:
		return magnPerMille
	case BarlineDotted:
		return magnPerMille / 5
	default:
		return 3 * magnPerMille / 20
	}
}

// DottedBarlineDashPeriod is the dash period (7× half-thickness) for a
// dotted barline.
func DottedBarlineDashPeriod(halfThickness int32) int32 {
	return 7 * halfThickness
}

// BraceScale returns the Bezier brace body's vertical scale factor,
// clipped at 110 (per-mille units relative to the unscaled body),
// per (y_bot-y_top+16*magn)*23/12000.
func BraceScale(yTop, yBot, magnPerMille int32) int32 {
	scale := (yBot - yTop + 16*magnPerMille) * 23 / 12000
	if scale > 110 {
		scale = 110
	}
	return scale
}

// onePointMillipt is one point in millipoints (spec's "pt" unit).
const onePointMillipt int32 = 1000

// BracketStride returns the vertical stride between repeated middle
// bracket-glyph placements: min(systemDepth, 16*magn) - 1pt.
func BracketStride(systemDepth, magnPerMille int32) int32 {
	stride := systemDepth
	if 16*magnPerMille < stride {
		stride = 16 * magnPerMille
	}
	return stride - onePointMillipt
}

// SlurControlOffset returns the control-point y-offset for a canonical
// single-segment slur: co + (length>20pt ? 6pt : length*6/20pt), signed
// negative when below is set.
func SlurControlOffset(co, length int32, below bool) int32 {
	var extra int32
	if length > 20*onePointMillipt {
		extra = 6 * onePointMillipt
	} else {
		extra = length * 6 / 20
	}
	off := co + extra
	if below {
		return -off
	}
	return off
}

// DashedLinePeriod recomputes a dashed line's dash period (3pt ×
// stavemagn) so the dashes fit evenly across length, returning the
// adjusted period and the resulting dash count.
func DashedLinePeriod(length, staveMagnPerMille int32) (period int32, count int) {
	base := 3 * onePointMillipt * staveMagnPerMille / 1000
	if base <= 0 || length <= 0 {
		return base, 0
	}
	count = int(length / base)
	if count < 1 {
		count = 1
	}
	return length / int32(count), count
}
