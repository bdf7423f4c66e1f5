package timeconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/meeus/v3/julian"
)

// LeapRule selects how February's length is decided
type LeapRule int

const (
	// ValladoLeapRule treats a year as leap when (year-1900) is divisible by
	// 4. It has no centurial exceptions and is only correct for 1901-2099.
	ValladoLeapRule LeapRule = iota
	// GregorianLeapRule is the full 4/100/400 Gregorian rule.
	GregorianLeapRule
)

func (r LeapRule) String() string {
	switch r {
	case ValladoLeapRule:
		return "vallado"
	case GregorianLeapRule:
		return "gregorian"
	default:
		return fmt.Sprintf("LeapRule(%d)", int(r))
	}
}

// ParseLeapRule parses "vallado" or "gregorian". An empty string selects the
// Vallado rule.
func ParseLeapRule(s string) (LeapRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vallado":
		return ValladoLeapRule, nil
	case "gregorian":
		return GregorianLeapRule, nil
	default:
		return 0, fmt.Errorf("unknown leap rule %q: %w", s, ErrInvalidInput)
	}
}

// MonthDays holds the number of days in each month, January first
type MonthDays [12]int

var commonYear = MonthDays{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar date. Month is 1-based.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateTime is a calendar date with a time of day
type DateTime struct {
	Year   int     `json:"year" yaml:"year"`
	Month  int     `json:"month" yaml:"month"`
	Day    int     `json:"day" yaml:"day"`
	Hour   int     `json:"hour" yaml:"hour"`
	Minute int     `json:"minute" yaml:"minute"`
	Second float64 `json:"second" yaml:"second"`
}

// Date returns the calendar date part of dt
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%06.3f", dt.Date(), dt.Hour, dt.Minute, dt.Second)
}

// Calendar performs day-of-year arithmetic under one leap rule.
// A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	rule    LeapRule
	minYear int
	maxYear int
}

// NewCalendar returns a calendar using rule. Vallado calendars accept years
// 1900-2100, Gregorian calendars 1-9999.
func NewCalendar(rule LeapRule) *Calendar {
	if rule == GregorianLeapRule {
		return &Calendar{rule: rule, minYear: 1, maxYear: 9999}
	}
	return &Calendar{rule: ValladoLeapRule, minYear: 1900, maxYear: 2100}
}

// defaultCal backs the package-level calendar functions
var defaultCal = NewCalendar(ValladoLeapRule)

// Rule returns the calendar's leap rule
func (c *Calendar) Rule() LeapRule {
	return c.rule
}

// IsLeapYear reports whether February of year has 29 days
func (c *Calendar) IsLeapYear(year int) bool {
	if c.rule == GregorianLeapRule {
		return julian.LeapYearGregorian(year)
	}
	return (year-1900)%4 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise
func (c *Calendar) DaysInYear(year int) int {
	if c.IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthDayTable returns the day count of every month of year
func (c *Calendar) MonthDayTable(year int) MonthDays {
	md := commonYear
	if c.IsLeapYear(year) {
		md[1] = 29
	}
	return md
}

// MonthDayTables returns one month-day table per year, in order
func (c *Calendar) MonthDayTables(years []int) []MonthDays {
	tables := make([]MonthDays, len(years))
	for i, y := range years {
		tables[i] = c.MonthDayTable(y)
	}
	return tables
}

// YMDToDayOfYear returns the 1-based day of year of d
func (c *Calendar) YMDToDayOfYear(d Date) (int, error) {
	if err := c.checkDate(d); err != nil {
		return 0, err
	}

	md := c.MonthDayTable(d.Year)
	doy := d.Day
	for _, days := range md[:d.Month-1] {
		doy += days
	}
	return doy, nil
}

// DayOfYearToYMD converts a day of year to a calendar date in year. Any
// fractional part of doy is ignored.
func (c *Calendar) DayOfYearToYMD(year int, doy float64) (Date, error) {
	if err := c.checkDayOfYear(year, doy); err != nil {
		return Date{}, err
	}
	return c.dayOfYearToYMD(year, doy), nil
}

// YMDHMSToDayOfYear returns the fractional day of year of dt. The fraction
// encodes the time of day.
func (c *Calendar) YMDHMSToDayOfYear(dt DateTime) (float64, error) {
	doy, err := c.YMDToDayOfYear(dt.Date())
	if err != nil {
		return 0, err
	}
	if err := checkClock(float64(dt.Hour), float64(dt.Minute), dt.Second); err != nil {
		return 0, err
	}

	return float64(doy) + float64(dt.Hour)/24.0 + float64(dt.Minute)/1440.0 + dt.Second/86400.0, nil
}

// DayOfYearToYMDHMS converts a fractional day of year in year to a calendar
// date and time of day.
func (c *Calendar) DayOfYearToYMDHMS(year int, doy float64) (DateTime, error) {
	if err := c.checkDayOfYear(year, doy); err != nil {
		return DateTime{}, err
	}
	return c.dayOfYearToYMDHMS(year, doy), nil
}

// dayOfYearToYMD scans the month table until the running total would pass
// doy. The scan stops at December, so out-of-range input yields a day past
// the end of the month rather than a different year.
func (c *Calendar) dayOfYearToYMD(year int, doy float64) Date {
	md := c.MonthDayTable(year)
	whole := int(math.Floor(doy))

	total, month := 0, 0
	for month < 11 && whole > total+md[month] {
		total += md[month]
		month++
	}

	return Date{Year: year, Month: month + 1, Day: whole - total}
}

func (c *Calendar) dayOfYearToYMDHMS(year int, doy float64) DateTime {
	d := c.dayOfYearToYMD(year, doy)
	clock := SecondsToHMS((doy - math.Floor(doy)) * SecondsPerDay)

	return DateTime{
		Year:   d.Year,
		Month:  d.Month,
		Day:    d.Day,
		Hour:   int(clock.Hours),
		Minute: int(clock.Minutes),
		Second: clock.Seconds,
	}
}

func (c *Calendar) checkYear(year int) error {
	if year < c.minYear || year > c.maxYear {
		return invalid("year", float64(year), fmt.Sprintf("must be in [%d, %d] under the %s leap rule", c.minYear, c.maxYear, c.rule))
	}
	return nil
}

func (c *Calendar) checkDate(d Date) error {
	if err := c.checkYear(d.Year); err != nil {
		return err
	}
	if d.Month < 1 || d.Month > 12 {
		return invalid("month", float64(d.Month), "must be in [1, 12]")
	}
	if last := c.MonthDayTable(d.Year)[d.Month-1]; d.Day < 1 || d.Day > last {
		return invalid("day", float64(d.Day), fmt.Sprintf("must be in [1, %d] for %04d-%02d", last, d.Year, d.Month))
	}
	return nil
}

func (c *Calendar) checkDayOfYear(year int, doy float64) error {
	if err := c.checkYear(year); err != nil {
		return err
	}
	if limit := float64(c.DaysInYear(year) + 1); math.IsNaN(doy) || doy < 1 || doy >= limit {
		return invalid("day of year", doy, fmt.Sprintf("must be in [1, %v) for %d", limit, year))
	}
	return nil
}

// MonthDayTable returns the month-day table of year under the Vallado rule
func MonthDayTable(year int) MonthDays {
	return defaultCal.MonthDayTable(year)
}

// MonthDayTables returns one Vallado month-day table per year
func MonthDayTables(years []int) []MonthDays {
	return defaultCal.MonthDayTables(years)
}

// YMDToDayOfYear returns the day of year of d under the Vallado rule
func YMDToDayOfYear(d Date) (int, error) {
	return defaultCal.YMDToDayOfYear(d)
}

// DayOfYearToYMD converts a day of year to a date under the Vallado rule
func DayOfYearToYMD(year int, doy float64) (Date, error) {
	return defaultCal.DayOfYearToYMD(year, doy)
}

// YMDHMSToDayOfYear returns the fractional day of year of dt under the Vallado rule
func YMDHMSToDayOfYear(dt DateTime) (float64, error) {
	return defaultCal.YMDHMSToDayOfYear(dt)
}

// DayOfYearToYMDHMS converts a fractional day of year under the Vallado rule
func DayOfYearToYMDHMS(year int, doy float64) (DateTime, error) {
	return defaultCal.DayOfYearToYMDHMS(year, doy)
}
