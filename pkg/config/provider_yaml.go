package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/chrissnell/astrotime/pkg/timeconv"
)

// YAMLProvider implements ConfigProvider for YAML scenario files.
//
// Batches are written as lists of tuples, one tuple per element:
//
//	format: json
//	leap_rule: vallado
//	angles:      [[-35, -15, -53.63], [-35, -15, -54.63]]
//	hour_angles: [[15, 15, 53.63]]
//	clocks:      [[13, 22, 45.98]]
//	dates:       [[1992, 5, 8]]
//	date_times:  [[1992, 5, 8, 13, 22, 45.98]]
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig reads and converts the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}
	return ParseYAML(cfgFile)
}

// ParseYAML converts a YAML scenario document into ConfigData
func ParseYAML(data []byte) (*ConfigData, error) {
	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Format     string      `yaml:"format,omitempty"`
		LeapRule   string      `yaml:"leap_rule,omitempty"`
		Angles     [][]float64 `yaml:"angles,omitempty"`
		HourAngles [][]float64 `yaml:"hour_angles,omitempty"`
		Clocks     [][]float64 `yaml:"clocks,omitempty"`
		Dates      [][]float64 `yaml:"dates,omitempty"`
		DateTimes  [][]float64 `yaml:"date_times,omitempty"`
	}

	if err := yaml.UnmarshalStrict(data, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Format:     yamlConfig.Format,
		LeapRule:   yamlConfig.LeapRule,
		Angles:     make([]timeconv.DMS, len(yamlConfig.Angles)),
		HourAngles: make([]timeconv.HMS, len(yamlConfig.HourAngles)),
		Clocks:     make([]timeconv.HMS, len(yamlConfig.Clocks)),
		Dates:      make([]timeconv.Date, len(yamlConfig.Dates)),
		DateTimes:  make([]timeconv.DateTime, len(yamlConfig.DateTimes)),
	}

	for i, t := range yamlConfig.Angles {
		if err := checkTuple("angles", i, t, 3); err != nil {
			return nil, err
		}
		config.Angles[i] = timeconv.DMS{Degrees: t[0], Arcminutes: t[1], Arcseconds: t[2]}
	}

	for i, t := range yamlConfig.HourAngles {
		if err := checkTuple("hour_angles", i, t, 3); err != nil {
			return nil, err
		}
		config.HourAngles[i] = timeconv.HMS{Hours: t[0], Minutes: t[1], Seconds: t[2]}
	}

	for i, t := range yamlConfig.Clocks {
		if err := checkTuple("clocks", i, t, 3); err != nil {
			return nil, err
		}
		config.Clocks[i] = timeconv.HMS{Hours: t[0], Minutes: t[1], Seconds: t[2]}
	}

	for i, t := range yamlConfig.Dates {
		if err := checkTuple("dates", i, t, 3); err != nil {
			return nil, err
		}
		config.Dates[i] = timeconv.Date{Year: int(t[0]), Month: int(t[1]), Day: int(t[2])}
	}

	for i, t := range yamlConfig.DateTimes {
		if err := checkTuple("date_times", i, t, 6); err != nil {
			return nil, err
		}
		config.DateTimes[i] = timeconv.DateTime{
			Year:   int(t[0]),
			Month:  int(t[1]),
			Day:    int(t[2]),
			Hour:   int(t[3]),
			Minute: int(t[4]),
			Second: t[5],
		}
	}

	return config, nil
}

// checkTuple verifies the length of a tuple and that fields which become
// integers hold whole numbers within the int32 range
func checkTuple(section string, index int, tuple []float64, length int) error {
	if len(tuple) != length {
		return fmt.Errorf("%s[%d]: expected %d values, got %d: %w", section, index, length, len(tuple), timeconv.ErrShapeMismatch)
	}

	whole := 0
	switch section {
	case "dates":
		whole = 3
	case "date_times":
		whole = 5
	}
	for _, v := range tuple[:whole] {
		if v != math.Trunc(v) {
			return fmt.Errorf("%s[%d]: %v is not a whole number: %w", section, index, v, timeconv.ErrInvalidInput)
		}
		if math.Abs(v) > math.MaxInt32 {
			return fmt.Errorf("%s[%d]: %v is out of range: %w", section, index, v, timeconv.ErrInvalidInput)
		}
	}

	return nil
}
