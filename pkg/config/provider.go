package config

import "github.com/chrissnell/astrotime/pkg/timeconv"

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)
}

// ConfigData holds the batches the example driver converts plus its output
// settings. Every batch is converted there and back again.
type ConfigData struct {
	Format   string `json:"format,omitempty"`
	LeapRule string `json:"leap_rule,omitempty"`

	Angles     []timeconv.DMS      `json:"angles,omitempty"`
	HourAngles []timeconv.HMS      `json:"hour_angles,omitempty"`
	Clocks     []timeconv.HMS      `json:"clocks,omitempty"`
	Dates      []timeconv.Date     `json:"dates,omitempty"`
	DateTimes  []timeconv.DateTime `json:"date_times,omitempty"`
}

// DefaultConfig returns the worked examples 3-8 through 3-11 of Vallado's
// "Fundamentals of Astrodynamics and Applications", each paired with a
// second input one unit later, plus the Julian date of the example date.
func DefaultConfig() *ConfigData {
	return &ConfigData{
		Format:   "text",
		LeapRule: timeconv.ValladoLeapRule.String(),
		Angles: []timeconv.DMS{
			{Degrees: -35, Arcminutes: -15, Arcseconds: -53.63},
			{Degrees: -35, Arcminutes: -15, Arcseconds: -54.63},
		},
		HourAngles: []timeconv.HMS{
			{Hours: 15, Minutes: 15, Seconds: 53.63},
			{Hours: 15, Minutes: 15, Seconds: 54.63},
		},
		Clocks: []timeconv.HMS{
			{Hours: 13, Minutes: 22, Seconds: 45.98},
			{Hours: 13, Minutes: 22, Seconds: 46.98},
		},
		Dates: []timeconv.Date{
			{Year: 1992, Month: 5, Day: 8},
			{Year: 1992, Month: 5, Day: 9},
		},
		DateTimes: []timeconv.DateTime{
			{Year: 1992, Month: 5, Day: 8, Hour: 13, Minute: 22, Second: 45.98},
			{Year: 1992, Month: 5, Day: 9, Hour: 13, Minute: 22, Second: 45.98},
		},
	}
}
