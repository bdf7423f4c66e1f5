package timeconv

import "math"

// SecondsPerDay is the length of a day without leap seconds
const SecondsPerDay = 86400.0

// HMSToSeconds converts a time of day in hours, minutes and seconds to
// seconds since midnight.
func HMSToSeconds(h HMS) (float64, error) {
	if err := checkClock(h.Hours, h.Minutes, h.Seconds); err != nil {
		return 0, err
	}
	return h.Hours*3600.0 + h.Minutes*60.0 + h.Seconds, nil
}

// SecondsToHMS converts seconds since midnight to hours, minutes and seconds.
func SecondsToHMS(sec float64) HMS {
	hr, mins, secs := decompose(sec / 3600.0)
	return HMS{Hours: hr, Minutes: mins, Seconds: secs}
}

func checkClock(hr, mins, secs float64) error {
	switch {
	case math.IsNaN(hr) || hr < 0 || hr >= 24:
		return invalid("hour", hr, "must be in [0, 24)")
	case math.IsNaN(mins) || mins < 0 || mins >= 60:
		return invalid("minute", mins, "must be in [0, 60)")
	case math.IsNaN(secs) || secs < 0 || secs >= 60:
		return invalid("second", secs, "must be in [0, 60)")
	}
	return nil
}
