package timeconv

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/floats/scalar"
)

// JD1900 is the Julian date of 1900 January 0.0 (1899-12-31 00:00 UT), the
// origin of the inverse conversion's year count.
const JD1900 = 2415019.5

// YMDHMSToJulianDate converts a calendar date and time to a Julian date.
// The closed form is valid for March 1900 through February 2100. Its integer
// divisions truncate, and the order of operations is kept so results agree
// with published reference values to the last bit.
func YMDHMSToJulianDate(dt DateTime) (float64, error) {
	if _, err := YMDHMSToDayOfYear(dt); err != nil {
		return 0, err
	}

	y, m := dt.Year, dt.Month
	jd := 367.0*float64(y) -
		float64((7*(y+(m+9)/12))/4) +
		float64(275*m/9) +
		float64(dt.Day) + 1721013.5 +
		((dt.Second/60.0+float64(dt.Minute))/60.0+float64(dt.Hour))/24.0

	return jd, nil
}

// JulianDateToYMDHMS converts a Julian date to a calendar date and time.
//
// The year is estimated from a mean year of 365.25 days and corrected at
// most once, so this is an approximate inverse: close to a year boundary it
// can disagree with YMDHMSToJulianDate by up to a day. Dates in 1900 after
// February 28 decode one day early because the leap rule counts 1900 as a
// leap year. Use VerifyJulianRoundTrip when exactness matters.
func JulianDateToYMDHMS(jd float64) (DateTime, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return DateTime{}, invalid("julian date", jd, "must be finite")
	}

	temp := jd - JD1900
	year := 1900 + int(temp/365.25)
	doy := dayOfYearSince1900(temp, year)

	// Truncation can overshoot into the following year
	if doy < 1.0 {
		year--
		doy = dayOfYearSince1900(temp, year)
	}

	if err := defaultCal.checkYear(year); err != nil {
		return DateTime{}, fmt.Errorf("julian date %v: %w", jd, err)
	}

	return defaultCal.dayOfYearToYMDHMS(year, doy), nil
}

// dayOfYearSince1900 returns the day of year in year of a date given as
// days since JD1900, counting one leap day every four years after 1900.
func dayOfYearSince1900(days float64, year int) float64 {
	leapDays := int(float64(year-1901) * 0.25)
	return days - (float64(year-1900)*365.0 + float64(leapDays))
}

// JulianDateFromTime returns the Julian date of t, taken in UTC
func JulianDateFromTime(t time.Time) (float64, error) {
	u := t.UTC()
	return YMDHMSToJulianDate(DateTime{
		Year:   u.Year(),
		Month:  int(u.Month()),
		Day:    u.Day(),
		Hour:   u.Hour(),
		Minute: u.Minute(),
		Second: float64(u.Second()) + float64(u.Nanosecond())/1e9,
	})
}

// TimeFromJulianDate returns the UTC time of a Julian date, rounded to the
// nearest microsecond.
func TimeFromJulianDate(jd float64) (time.Time, error) {
	dt, err := JulianDateToYMDHMS(jd)
	if err != nil {
		return time.Time{}, err
	}

	whole := math.Floor(dt.Second)
	t := time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, int(whole), 0, time.UTC)
	return t.Add(time.Duration(math.Round((dt.Second-whole)*1e6)) * time.Microsecond), nil
}

// ReferenceJulianDate computes the Julian date of dt with Meeus' Gregorian
// calendar algorithm. It shares no code with YMDHMSToJulianDate and serves
// as an independent cross-check.
func ReferenceJulianDate(dt DateTime) float64 {
	frac := (float64(dt.Hour) + float64(dt.Minute)/60.0 + dt.Second/3600.0) / 24.0
	return julian.CalendarGregorianToJD(dt.Year, dt.Month, float64(dt.Day)+frac)
}

// VerifyJulianRoundTrip converts dt to a Julian date and back, then forward
// again, and fails with ErrRoundTrip when the two Julian dates differ by
// more than tol days.
func VerifyJulianRoundTrip(dt DateTime, tol float64) error {
	jd, err := YMDHMSToJulianDate(dt)
	if err != nil {
		return err
	}

	back, err := JulianDateToYMDHMS(jd)
	if err != nil {
		return fmt.Errorf("%w: %s decoded with error: %v", ErrRoundTrip, dt, err)
	}

	again, err := YMDHMSToJulianDate(back)
	if err != nil {
		return fmt.Errorf("%w: %s decoded to invalid %s: %v", ErrRoundTrip, dt, back, err)
	}

	if !scalar.EqualWithinAbs(jd, again, tol) {
		return fmt.Errorf("%w: %s decoded to %s (%.9f vs %.9f)", ErrRoundTrip, dt, back, jd, again)
	}
	return nil
}
