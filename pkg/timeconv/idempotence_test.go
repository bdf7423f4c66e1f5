package timeconv

import (
	"math"
	"testing"
)

// Whole-minute values put (v-whole)*60 on an integer, where the truncating
// breakdown used to leave a remainder of about -2e-13.
var wholeMinuteHMS = []HMS{
	{1, 23, 0},
	{2, 23, 0},
	{1, 46, 0},
	{0, 0, 0},
	{0, 59, 0},
	{12, 0, 0},
	{23, 59, 0},
	{13, 22, 45.98},
}

func TestDMSIdempotent(t *testing.T) {
	tests := []DMS{
		{1, 23, 0},
		{2, 23, 0},
		{1, 46, 0},
		{-1, -23, 0},
		{-2, -46, 0},
		{359, 59, 0},
		{-35, -15, -53.63},
	}

	for _, in := range tests {
		rad, err := DMSToRadians(in)
		if err != nil {
			t.Fatalf("DMSToRadians(%v) returned error: %v", in, err)
		}
		first := RadiansToDMS(rad)

		rad2, err := DMSToRadians(first)
		if err != nil {
			t.Fatalf("DMSToRadians(%v) on decomposed output returned error: %v", first, err)
		}
		if math.Abs(rad2-rad) > 1e-12 {
			t.Errorf("second pass of %v = %v rad, expected %v", in, rad2, rad)
		}
		if second := RadiansToDMS(rad2); !dmsClose(first, second, 1e-9) {
			t.Errorf("second pass of %v gave %v, expected %v", in, second, first)
		}
	}
}

func TestDMSIdempotentWholeMinutes(t *testing.T) {
	for deg := 0.0; deg < 360; deg++ {
		for arcmin := 0.0; arcmin < 60; arcmin++ {
			for _, sign := range []float64{1, -1} {
				in := DMS{sign * deg, sign * arcmin, 0}
				rad, err := DMSToRadians(in)
				if err != nil {
					t.Fatalf("DMSToRadians(%v) returned error: %v", in, err)
				}
				out := RadiansToDMS(rad)
				if _, err := DMSToRadians(out); err != nil {
					t.Fatalf("DMSToRadians(%v) on decomposed output returned error: %v", out, err)
				}
				if !dmsClose(in, out, 1e-6) {
					t.Errorf("round trip of %v gave %v", in, out)
				}
			}
		}
	}
}

func TestHMSRadiansIdempotent(t *testing.T) {
	for _, in := range wholeMinuteHMS {
		rad, err := HMSToRadians(in)
		if err != nil {
			t.Fatalf("HMSToRadians(%v) returned error: %v", in, err)
		}
		first := RadiansToHMS(rad)

		rad2, err := HMSToRadians(first)
		if err != nil {
			t.Fatalf("HMSToRadians(%v) on decomposed output returned error: %v", first, err)
		}
		if math.Abs(rad2-rad) > 1e-12 {
			t.Errorf("second pass of %v = %v rad, expected %v", in, rad2, rad)
		}
		if second := RadiansToHMS(rad2); !hmsClose(first, second, 1e-9) {
			t.Errorf("second pass of %v gave %v, expected %v", in, second, first)
		}
	}
}

func TestClockIdempotent(t *testing.T) {
	for _, in := range wholeMinuteHMS {
		sec, err := HMSToSeconds(in)
		if err != nil {
			t.Fatalf("HMSToSeconds(%v) returned error: %v", in, err)
		}
		first := SecondsToHMS(sec)

		sec2, err := HMSToSeconds(first)
		if err != nil {
			t.Fatalf("HMSToSeconds(%v) on decomposed output returned error: %v", first, err)
		}
		if math.Abs(sec2-sec) > 1e-9 {
			t.Errorf("second pass of %v = %v s, expected %v", in, sec2, sec)
		}
		if second := SecondsToHMS(sec2); !hmsClose(first, second, 1e-9) {
			t.Errorf("second pass of %v gave %v, expected %v", in, second, first)
		}
	}
}

func TestClockIdempotentEverySecond(t *testing.T) {
	for sec := 0.0; sec < SecondsPerDay; sec++ {
		out := SecondsToHMS(sec)
		got, err := HMSToSeconds(out)
		if err != nil {
			t.Fatalf("HMSToSeconds(%v) for %v s returned error: %v", out, sec, err)
		}
		if math.Abs(got-sec) > 1e-9 {
			t.Errorf("round trip of %v s gave %v", sec, got)
		}
	}
}

func TestDayOfYearIdempotent(t *testing.T) {
	tests := []DateTime{
		{1992, 5, 8, 1, 23, 0},
		{1992, 5, 8, 2, 23, 0},
		{1992, 5, 8, 1, 46, 0},
		{1992, 5, 8, 13, 22, 45.98},
		{1993, 1, 1, 0, 0, 0},
		{1993, 12, 31, 23, 59, 0},
	}

	for _, in := range tests {
		doy, err := YMDHMSToDayOfYear(in)
		if err != nil {
			t.Fatalf("YMDHMSToDayOfYear(%s) returned error: %v", in, err)
		}
		first, err := DayOfYearToYMDHMS(in.Year, doy)
		if err != nil {
			t.Fatalf("DayOfYearToYMDHMS(%d, %v) returned error: %v", in.Year, doy, err)
		}

		doy2, err := YMDHMSToDayOfYear(first)
		if err != nil {
			t.Fatalf("YMDHMSToDayOfYear(%s) on decomposed output returned error: %v", first, err)
		}
		if math.Abs(doy2-doy) > 1e-9 {
			t.Errorf("second pass of %s = %v, expected %v", in, doy2, doy)
		}
		second, err := DayOfYearToYMDHMS(in.Year, doy2)
		if err != nil {
			t.Fatalf("DayOfYearToYMDHMS(%d, %v) returned error: %v", in.Year, doy2, err)
		}
		if !dateTimeClose(first, second, 1e-4) {
			t.Errorf("second pass of %s gave %s, expected %s", in, second, first)
		}
	}
}
