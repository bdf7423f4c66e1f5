// Package timeconv converts between the time and angle representations used
// in astrodynamics, following the algorithms of Vallado's "Fundamentals of
// Astrodynamics and Applications":
//
//   - degrees/arcminutes/arcseconds and hours/minutes/seconds to and from radians
//   - hours/minutes/seconds to and from seconds of day
//   - calendar dates and date-times to and from day of year
//   - calendar date-times to and from Julian dates
//
// Every function is pure and safe for concurrent use. Composing functions
// validate their input and return an error wrapping ErrInvalidInput when a
// value is out of range. Decompositions truncate toward zero at every stage
// so they mirror the order in which the composing functions build a value.
//
// Leap years follow the textbook rule by default: a year is leap when
// (year-1900) is divisible by 4. That rule is only right for 1901-2099. Use
// NewCalendar(GregorianLeapRule) for day-of-year arithmetic outside that
// span. Julian date conversions always use the textbook rule.
//
// Batches are ordered slices of records; every operation has a Batch form,
// and the common ones also accept aligned component columns.
//
//	rad, err := timeconv.DMSToRadians(timeconv.DMS{Degrees: -35, Arcminutes: -15, Arcseconds: -53.63})
//	if err != nil {
//		return err
//	}
//	dms := timeconv.RadiansToDMS(rad) // {-35 -15 -53.63}
package timeconv
