package timeconv

import (
	"errors"
	"math"
	"testing"
)

func TestHMSToSeconds(t *testing.T) {
	tests := []struct {
		name     string
		hms      HMS
		expected float64
	}{
		// Vallado example 3-10
		{"afternoon", HMS{13, 22, 45.98}, 48165.98},
		{"one second later", HMS{13, 22, 46.98}, 48166.98},
		{"midnight", HMS{0, 0, 0}, 0},
		{"last second", HMS{23, 59, 59.5}, 86399.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, err := HMSToSeconds(tt.hms)
			if err != nil {
				t.Fatalf("HMSToSeconds(%v) returned error: %v", tt.hms, err)
			}
			if math.Abs(sec-tt.expected) > 1e-9 {
				t.Errorf("HMSToSeconds(%v) = %v, expected %v", tt.hms, sec, tt.expected)
			}

			if out := SecondsToHMS(sec); tt.expected > 0 && !hmsClose(tt.hms, out, 1e-6) {
				t.Errorf("SecondsToHMS(%v) = %+v, expected %+v", sec, out, tt.hms)
			}
		})
	}
}

func TestSecondsToHMS(t *testing.T) {
	hms := SecondsToHMS(48165.98)
	if hms.Hours != 13 {
		t.Errorf("Hours = %v, expected 13", hms.Hours)
	}
	if hms.Minutes != 22 {
		t.Errorf("Minutes = %v, expected 22", hms.Minutes)
	}
	if math.Abs(hms.Seconds-45.98) > 1e-6 {
		t.Errorf("Seconds = %v, expected 45.98", hms.Seconds)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for hr := 0.0; hr < 24; hr += 3 {
		for mins := 1.0; mins < 60; mins += 7 {
			for _, secs := range []float64{0.25, 30.5, 59.75} {
				in := HMS{hr, mins, secs}
				sec, err := HMSToSeconds(in)
				if err != nil {
					t.Fatalf("HMSToSeconds(%v) returned error: %v", in, err)
				}
				if out := SecondsToHMS(sec); !hmsClose(in, out, 1e-6) {
					t.Errorf("round trip of %v gave %v", in, out)
				}
			}
		}
	}
}

func TestHMSToSecondsValidation(t *testing.T) {
	for _, hms := range []HMS{
		{24, 0, 0},
		{-1, 0, 0},
		{12, 60, 0},
		{12, -1, 0},
		{12, 0, 60},
		{12, 0, math.NaN()},
	} {
		if _, err := HMSToSeconds(hms); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("HMSToSeconds(%v) error = %v, expected ErrInvalidInput", hms, err)
		}
	}
}
