// Package examples runs every to-and-fro conversion pair of timeconv over the
// batches of a scenario and collects the results into a report.
package examples

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chrissnell/astrotime/pkg/config"
	"github.com/chrissnell/astrotime/pkg/timeconv"
)

// roundTripTolerance is the Julian date agreement, in days, required of
// each date-time's round trip
const roundTripTolerance = 1e-8

// AngleResult is one DMS -> radians -> DMS conversion
type AngleResult struct {
	Input   timeconv.DMS `json:"input"`
	Radians float64      `json:"radians"`
	Output  timeconv.DMS `json:"output"`
}

// HourAngleResult is one HMS -> radians -> HMS conversion
type HourAngleResult struct {
	Input   timeconv.HMS `json:"input"`
	Radians float64      `json:"radians"`
	Output  timeconv.HMS `json:"output"`
}

// ClockResult is one HMS -> seconds -> HMS conversion
type ClockResult struct {
	Input   timeconv.HMS `json:"input"`
	Seconds float64      `json:"seconds"`
	Output  timeconv.HMS `json:"output"`
}

// DateResult is one YMD -> day of year -> YMD conversion
type DateResult struct {
	Input     timeconv.Date `json:"input"`
	DayOfYear int           `json:"day_of_year"`
	Output    timeconv.Date `json:"output"`
}

// DateTimeResult is one YMDHMS conversion through both day of year and
// Julian date
type DateTimeResult struct {
	Input          timeconv.DateTime `json:"input"`
	DayOfYear      float64           `json:"day_of_year"`
	FromDayOfYear  timeconv.DateTime `json:"from_day_of_year"`
	JulianDate     float64           `json:"julian_date"`
	FromJulianDate timeconv.DateTime `json:"from_julian_date"`
	RoundTripOK    bool              `json:"round_trip_ok"`
}

// Report holds the results of every pair, in input order
type Report struct {
	LeapRule   string            `json:"leap_rule"`
	Angles     []AngleResult     `json:"angles,omitempty"`
	HourAngles []HourAngleResult `json:"hour_angles,omitempty"`
	Clocks     []ClockResult     `json:"clocks,omitempty"`
	Dates      []DateResult      `json:"dates,omitempty"`
	DateTimes  []DateTimeResult  `json:"date_times,omitempty"`
}

// Runner converts scenario batches
type Runner struct {
	cfg    *config.ConfigData
	cal    *timeconv.Calendar
	logger *zap.SugaredLogger
}

// New creates a runner for cfg. Day-of-year conversions follow the
// configured leap rule; Julian date conversions always use the textbook rule.
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) (*Runner, error) {
	rule, err := timeconv.ParseLeapRule(cfg.LeapRule)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:    cfg,
		cal:    timeconv.NewCalendar(rule),
		logger: logger,
	}, nil
}

// Run converts every batch of the scenario
func (r *Runner) Run() (*Report, error) {
	report := &Report{LeapRule: r.cal.Rule().String()}

	var err error
	if report.Angles, err = r.runAngles(); err != nil {
		return nil, fmt.Errorf("angles: %w", err)
	}
	if report.HourAngles, err = r.runHourAngles(); err != nil {
		return nil, fmt.Errorf("hour angles: %w", err)
	}
	if report.Clocks, err = r.runClocks(); err != nil {
		return nil, fmt.Errorf("clocks: %w", err)
	}
	if report.Dates, err = r.runDates(); err != nil {
		return nil, fmt.Errorf("dates: %w", err)
	}
	if report.DateTimes, err = r.runDateTimes(); err != nil {
		return nil, fmt.Errorf("date times: %w", err)
	}

	return report, nil
}

func (r *Runner) runAngles() ([]AngleResult, error) {
	rad, err := timeconv.DMSBatchToRadians(r.cfg.Angles)
	if err != nil {
		return nil, err
	}
	back := timeconv.RadiansBatchToDMS(rad)

	results := make([]AngleResult, len(rad))
	for i := range rad {
		results[i] = AngleResult{Input: r.cfg.Angles[i], Radians: rad[i], Output: back[i]}
	}
	r.logger.Debugw("converted angles", "count", len(results))
	return results, nil
}

func (r *Runner) runHourAngles() ([]HourAngleResult, error) {
	rad, err := timeconv.HMSBatchToRadians(r.cfg.HourAngles)
	if err != nil {
		return nil, err
	}
	back := timeconv.RadiansBatchToHMS(rad)

	results := make([]HourAngleResult, len(rad))
	for i := range rad {
		results[i] = HourAngleResult{Input: r.cfg.HourAngles[i], Radians: rad[i], Output: back[i]}
	}
	r.logger.Debugw("converted hour angles", "count", len(results))
	return results, nil
}

func (r *Runner) runClocks() ([]ClockResult, error) {
	sec, err := timeconv.HMSBatchToSeconds(r.cfg.Clocks)
	if err != nil {
		return nil, err
	}
	back := timeconv.SecondsBatchToHMS(sec)

	results := make([]ClockResult, len(sec))
	for i := range sec {
		results[i] = ClockResult{Input: r.cfg.Clocks[i], Seconds: sec[i], Output: back[i]}
	}
	r.logger.Debugw("converted clock times", "count", len(results))
	return results, nil
}

func (r *Runner) runDates() ([]DateResult, error) {
	doys, err := r.cal.YMDBatchToDayOfYear(r.cfg.Dates)
	if err != nil {
		return nil, err
	}

	yds := make([]timeconv.YearDay, len(doys))
	for i, doy := range doys {
		yds[i] = timeconv.YearDay{Year: r.cfg.Dates[i].Year, Day: float64(doy)}
	}
	back, err := r.cal.DayOfYearBatchToYMD(yds)
	if err != nil {
		return nil, err
	}

	results := make([]DateResult, len(doys))
	for i := range doys {
		results[i] = DateResult{Input: r.cfg.Dates[i], DayOfYear: doys[i], Output: back[i]}
	}
	r.logger.Debugw("converted dates", "count", len(results), "leap_rule", r.cal.Rule())
	return results, nil
}

func (r *Runner) runDateTimes() ([]DateTimeResult, error) {
	doys, err := r.cal.YMDHMSBatchToDayOfYear(r.cfg.DateTimes)
	if err != nil {
		return nil, err
	}

	yds := make([]timeconv.YearDay, len(doys))
	for i, doy := range doys {
		yds[i] = timeconv.YearDay{Year: r.cfg.DateTimes[i].Year, Day: doy}
	}
	fromDoy, err := r.cal.DayOfYearBatchToYMDHMS(yds)
	if err != nil {
		return nil, err
	}

	jds, err := timeconv.YMDHMSBatchToJulianDate(r.cfg.DateTimes)
	if err != nil {
		return nil, err
	}
	fromJD, err := timeconv.JulianDateBatchToYMDHMS(jds)
	if err != nil {
		return nil, err
	}

	results := make([]DateTimeResult, len(jds))
	for i, dt := range r.cfg.DateTimes {
		results[i] = DateTimeResult{
			Input:          dt,
			DayOfYear:      doys[i],
			FromDayOfYear:  fromDoy[i],
			JulianDate:     jds[i],
			FromJulianDate: fromJD[i],
			RoundTripOK:    true,
		}

		// The Julian date inverse is approximate near year boundaries
		if err := timeconv.VerifyJulianRoundTrip(dt, roundTripTolerance); err != nil {
			results[i].RoundTripOK = false
			r.logger.Warnw("julian date round trip mismatch", "input", dt.String(), "error", err)
		}
	}
	r.logger.Debugw("converted date times", "count", len(results))
	return results, nil
}
