package examples

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/chrissnell/astrotime/pkg/config"
	"github.com/chrissnell/astrotime/pkg/timeconv"
)

func TestRunDefaultConfig(t *testing.T) {
	runner, err := New(config.DefaultConfig(), zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}

	report, err := runner.Run()
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if report.LeapRule != "vallado" {
		t.Errorf("LeapRule = %q, expected vallado", report.LeapRule)
	}
	if len(report.Angles) != 2 || math.Abs(report.Angles[0].Radians-(-0.6154885669051803)) > 1e-12 {
		t.Errorf("Angles = %+v", report.Angles)
	}
	if len(report.Clocks) != 2 || math.Abs(report.Clocks[0].Seconds-48165.98) > 1e-9 {
		t.Errorf("Clocks = %+v", report.Clocks)
	}
	if len(report.Dates) != 2 || report.Dates[0].DayOfYear != 129 || report.Dates[1].DayOfYear != 130 {
		t.Errorf("Dates = %+v", report.Dates)
	}
	for i, d := range report.Dates {
		if d.Output != d.Input {
			t.Errorf("Dates[%d] round trip gave %s, expected %s", i, d.Output, d.Input)
		}
	}
	if len(report.DateTimes) != 2 {
		t.Fatalf("DateTimes = %+v", report.DateTimes)
	}
	if jd := report.DateTimes[0].JulianDate; math.Abs(jd-2448751.05747662) > 1e-8 {
		t.Errorf("JulianDate = %.8f, expected 2448751.05747662", jd)
	}
	for i, dt := range report.DateTimes {
		if !dt.RoundTripOK {
			t.Errorf("DateTimes[%d] round trip flagged as mismatch", i)
		}
		if dt.FromJulianDate.Date() != dt.Input.Date() {
			t.Errorf("DateTimes[%d] from Julian date = %s, expected %s", i, dt.FromJulianDate, dt.Input)
		}
	}
}

func TestRunGregorianRule(t *testing.T) {
	cfg := &config.ConfigData{
		LeapRule: "gregorian",
		Dates:    []timeconv.Date{{Year: 1900, Month: 3, Day: 1}},
	}
	runner, err := New(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}

	report, err := runner.Run()
	if err != nil {
		t.Fatal(err)
	}
	if report.Dates[0].DayOfYear != 60 {
		t.Errorf("DayOfYear = %d, expected 60", report.Dates[0].DayOfYear)
	}
}

func TestRunInvalidInput(t *testing.T) {
	cfg := &config.ConfigData{
		Clocks: []timeconv.HMS{{Hours: 25}},
	}
	runner, err := New(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := runner.Run(); !errors.Is(err, timeconv.ErrInvalidInput) {
		t.Errorf("Run error = %v, expected ErrInvalidInput", err)
	}

	if _, err := New(&config.ConfigData{LeapRule: "julian"}, zap.NewNop().Sugar()); err == nil {
		t.Error("New accepted an unknown leap rule")
	}
}

func TestWriteText(t *testing.T) {
	runner, err := New(config.DefaultConfig(), zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	report, err := runner.Run()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"leap rule: vallado",
		"-35 -15 -53.6300",
		"48165.9800",
		"1992-05-08  129",
		"2448751.05747662",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "MISMATCH") {
		t.Errorf("text output reports a mismatch:\n%s", out)
	}
}
