package timeconv

import (
	"fmt"

	"go.uber.org/multierr"
)

// YearDay is a fractional day of year within a given year
type YearDay struct {
	Year int     `json:"year" yaml:"year"`
	Day  float64 `json:"day" yaml:"day"`
}

// convertBatch applies fn to every element of in. Failures are collected,
// each tagged with its index, and no partial result is returned.
func convertBatch[In, Out any](in []In, fn func(In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))

	var errs error
	for i, v := range in {
		r, err := fn(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		out[i] = r
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func mapBatch[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func checkColumns(lengths ...int) error {
	for _, n := range lengths[1:] {
		if n != lengths[0] {
			return &ShapeError{Lengths: lengths}
		}
	}
	return nil
}

// DMSBatchToRadians converts each angle of batch to radians
func DMSBatchToRadians(batch []DMS) ([]float64, error) {
	return convertBatch(batch, DMSToRadians)
}

// RadiansBatchToDMS decomposes each angle of batch
func RadiansBatchToDMS(batch []float64) []DMS {
	return mapBatch(batch, RadiansToDMS)
}

// HMSBatchToRadians converts each hour angle of batch to radians
func HMSBatchToRadians(batch []HMS) ([]float64, error) {
	return convertBatch(batch, HMSToRadians)
}

// RadiansBatchToHMS decomposes each angle of batch into hours, minutes and seconds
func RadiansBatchToHMS(batch []float64) []HMS {
	return mapBatch(batch, RadiansToHMS)
}

// HMSBatchToSeconds converts each time of day of batch to seconds
func HMSBatchToSeconds(batch []HMS) ([]float64, error) {
	return convertBatch(batch, HMSToSeconds)
}

// SecondsBatchToHMS decomposes each seconds value of batch
func SecondsBatchToHMS(batch []float64) []HMS {
	return mapBatch(batch, SecondsToHMS)
}

// YMDBatchToDayOfYear returns the day of year of each date of batch
func (c *Calendar) YMDBatchToDayOfYear(batch []Date) ([]int, error) {
	return convertBatch(batch, c.YMDToDayOfYear)
}

// DayOfYearBatchToYMD converts each day of year of batch to a date
func (c *Calendar) DayOfYearBatchToYMD(batch []YearDay) ([]Date, error) {
	return convertBatch(batch, func(yd YearDay) (Date, error) {
		return c.DayOfYearToYMD(yd.Year, yd.Day)
	})
}

// YMDHMSBatchToDayOfYear returns the fractional day of year of each element of batch
func (c *Calendar) YMDHMSBatchToDayOfYear(batch []DateTime) ([]float64, error) {
	return convertBatch(batch, c.YMDHMSToDayOfYear)
}

// DayOfYearBatchToYMDHMS converts each fractional day of year of batch
func (c *Calendar) DayOfYearBatchToYMDHMS(batch []YearDay) ([]DateTime, error) {
	return convertBatch(batch, func(yd YearDay) (DateTime, error) {
		return c.DayOfYearToYMDHMS(yd.Year, yd.Day)
	})
}

// YMDBatchToDayOfYear is Calendar.YMDBatchToDayOfYear under the Vallado rule
func YMDBatchToDayOfYear(batch []Date) ([]int, error) {
	return defaultCal.YMDBatchToDayOfYear(batch)
}

// DayOfYearBatchToYMD is Calendar.DayOfYearBatchToYMD under the Vallado rule
func DayOfYearBatchToYMD(batch []YearDay) ([]Date, error) {
	return defaultCal.DayOfYearBatchToYMD(batch)
}

// YMDHMSBatchToDayOfYear is Calendar.YMDHMSBatchToDayOfYear under the Vallado rule
func YMDHMSBatchToDayOfYear(batch []DateTime) ([]float64, error) {
	return defaultCal.YMDHMSBatchToDayOfYear(batch)
}

// DayOfYearBatchToYMDHMS is Calendar.DayOfYearBatchToYMDHMS under the Vallado rule
func DayOfYearBatchToYMDHMS(batch []YearDay) ([]DateTime, error) {
	return defaultCal.DayOfYearBatchToYMDHMS(batch)
}

// YMDHMSBatchToJulianDate returns the Julian date of each element of batch
func YMDHMSBatchToJulianDate(batch []DateTime) ([]float64, error) {
	return convertBatch(batch, YMDHMSToJulianDate)
}

// JulianDateBatchToYMDHMS converts each Julian date of batch
func JulianDateBatchToYMDHMS(batch []float64) ([]DateTime, error) {
	return convertBatch(batch, JulianDateToYMDHMS)
}

// DMSColumnsToRadians converts angles given as aligned component columns,
// the layout where element i of every column belongs to the same angle.
func DMSColumnsToRadians(deg, arcmin, arcsec []float64) ([]float64, error) {
	if err := checkColumns(len(deg), len(arcmin), len(arcsec)); err != nil {
		return nil, err
	}

	batch := make([]DMS, len(deg))
	for i := range batch {
		batch[i] = DMS{Degrees: deg[i], Arcminutes: arcmin[i], Arcseconds: arcsec[i]}
	}
	return DMSBatchToRadians(batch)
}

// HMSColumnsToRadians converts hour angles given as aligned component columns
func HMSColumnsToRadians(hr, mins, secs []float64) ([]float64, error) {
	batch, err := hmsColumns(hr, mins, secs)
	if err != nil {
		return nil, err
	}
	return HMSBatchToRadians(batch)
}

// HMSColumnsToSeconds converts times of day given as aligned component columns
func HMSColumnsToSeconds(hr, mins, secs []float64) ([]float64, error) {
	batch, err := hmsColumns(hr, mins, secs)
	if err != nil {
		return nil, err
	}
	return HMSBatchToSeconds(batch)
}

// DayOfYearColumnsToYMD converts aligned year and day-of-year columns to dates
func DayOfYearColumnsToYMD(years []int, doys []float64) ([]Date, error) {
	if err := checkColumns(len(years), len(doys)); err != nil {
		return nil, err
	}

	batch := make([]YearDay, len(years))
	for i := range batch {
		batch[i] = YearDay{Year: years[i], Day: doys[i]}
	}
	return DayOfYearBatchToYMD(batch)
}

func hmsColumns(hr, mins, secs []float64) ([]HMS, error) {
	if err := checkColumns(len(hr), len(mins), len(secs)); err != nil {
		return nil, err
	}

	batch := make([]HMS, len(hr))
	for i := range batch {
		batch[i] = HMS{Hours: hr[i], Minutes: mins[i], Seconds: secs[i]}
	}
	return batch, nil
}
