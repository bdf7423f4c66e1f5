package timeconv

import (
	"math"

	"github.com/soniakeys/unit"
)

// DMS is an angle in degrees, arcminutes and arcseconds. A negative angle
// carries the sign on every nonzero component: -35°15'53.63" is
// DMS{-35, -15, -53.63}.
type DMS struct {
	Degrees    float64 `json:"degrees" yaml:"degrees"`
	Arcminutes float64 `json:"arcminutes" yaml:"arcminutes"`
	Arcseconds float64 `json:"arcseconds" yaml:"arcseconds"`
}

// HMS is an hour angle or a time of day in hours, minutes and seconds.
type HMS struct {
	Hours   float64 `json:"hours" yaml:"hours"`
	Minutes float64 `json:"minutes" yaml:"minutes"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

// DMSToRadians converts degrees, arcminutes and arcseconds to radians.
func DMSToRadians(d DMS) (float64, error) {
	if err := checkSexagesimal("degrees", "arcminutes", "arcseconds", d.Degrees, d.Arcminutes, d.Arcseconds); err != nil {
		return 0, err
	}

	deg := d.Degrees + d.Arcminutes/60.0 + d.Arcseconds/3600.0
	return unit.AngleFromDeg(deg).Rad(), nil
}

// RadiansToDMS converts radians to degrees, arcminutes and arcseconds.
// Degrees and arcminutes are truncated toward zero, never rounded, so that
// the decomposition mirrors the order DMSToRadians builds the angle in.
func RadiansToDMS(rad float64) DMS {
	deg, arcmin, arcsec := decompose(unit.Angle(rad).Deg())
	return DMS{Degrees: deg, Arcminutes: arcmin, Arcseconds: arcsec}
}

// HMSToRadians converts hours, minutes and seconds of hour angle to radians
// at 15 degrees per hour.
func HMSToRadians(h HMS) (float64, error) {
	if err := checkSexagesimal("hours", "minutes", "seconds", h.Hours, h.Minutes, h.Seconds); err != nil {
		return 0, err
	}

	hours := h.Hours + h.Minutes/60.0 + h.Seconds/3600.0
	return unit.HourAngleFromHour(hours).Rad(), nil
}

// RadiansToHMS converts radians to hours, minutes and seconds of hour angle.
func RadiansToHMS(rad float64) HMS {
	hr, mins, secs := decompose(unit.HourAngle(rad).Hour())
	return HMS{Hours: hr, Minutes: mins, Seconds: secs}
}

// NormalizeRadians wraps an angle into [0, 2π).
func NormalizeRadians(rad float64) float64 {
	return unit.Angle(rad).Mod1().Rad()
}

// residueEpsilon is the largest remainder, in 3600ths, treated as rounding
// residue of the truncating decomposition.
const residueEpsilon = 1e-9

// decompose splits a value in base units into whole units, whole sixtieths
// and the remaining 3600ths, truncating toward zero at each stage.
//
// The remainder always carries the sign of v and stays below 60 in
// magnitude, so the parts are accepted again by the composing functions.
func decompose(v float64) (whole, sixtieths, rest float64) {
	whole = math.Trunc(v)
	sixtieths = math.Trunc((v - whole) * 60.0)
	rest = (v - whole - sixtieths/60.0) * 3600.0

	sign := math.Copysign(1, v)
	switch {
	case math.Abs(rest) < residueEpsilon, rest*sign < 0:
		rest = 0
	case math.Abs(rest) > 60-residueEpsilon:
		// (v-whole)*60 fell just short of a whole sixtieth
		rest = 0
		sixtieths += sign
		if math.Abs(sixtieths) >= 60 {
			sixtieths = 0
			whole += sign
		}
	}
	return whole, sixtieths, rest
}

// checkSexagesimal validates a (unit, minute, second) triple: finite values,
// minutes and seconds below 60 in magnitude, and one shared sign.
func checkSexagesimal(unitName, minName, secName string, u, m, s float64) error {
	for _, c := range []struct {
		name  string
		value float64
	}{{unitName, u}, {minName, m}, {secName, s}} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalid(c.name, c.value, "must be finite")
		}
	}

	if math.Abs(m) >= 60 {
		return invalid(minName, m, "magnitude must be below 60")
	}
	if math.Abs(s) >= 60 {
		return invalid(secName, s, "magnitude must be below 60")
	}

	var neg, pos bool
	for _, v := range []float64{u, m, s} {
		neg = neg || v < 0
		pos = pos || v > 0
	}
	if neg && pos {
		return invalid(unitName, u, "components must share the same sign")
	}

	return nil
}
