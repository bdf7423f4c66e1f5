package examples

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders the report as one aligned table per conversion pair
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "leap rule: %s\n", r.LeapRule)

	if len(r.Angles) > 0 {
		fmt.Fprintln(tw, "\ndms\tradians\tdms")
		for _, a := range r.Angles {
			fmt.Fprintf(tw, "%s\t%.10f\t%s\n", sexa(a.Input.Degrees, a.Input.Arcminutes, a.Input.Arcseconds),
				a.Radians, sexa(a.Output.Degrees, a.Output.Arcminutes, a.Output.Arcseconds))
		}
	}

	if len(r.HourAngles) > 0 {
		fmt.Fprintln(tw, "\nhms\tradians\thms")
		for _, h := range r.HourAngles {
			fmt.Fprintf(tw, "%s\t%.10f\t%s\n", sexa(h.Input.Hours, h.Input.Minutes, h.Input.Seconds),
				h.Radians, sexa(h.Output.Hours, h.Output.Minutes, h.Output.Seconds))
		}
	}

	if len(r.Clocks) > 0 {
		fmt.Fprintln(tw, "\nhms\tseconds\thms")
		for _, c := range r.Clocks {
			fmt.Fprintf(tw, "%s\t%.4f\t%s\n", sexa(c.Input.Hours, c.Input.Minutes, c.Input.Seconds),
				c.Seconds, sexa(c.Output.Hours, c.Output.Minutes, c.Output.Seconds))
		}
	}

	if len(r.Dates) > 0 {
		fmt.Fprintln(tw, "\nymd\tday of year\tymd")
		for _, d := range r.Dates {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Input, d.DayOfYear, d.Output)
		}
	}

	if len(r.DateTimes) > 0 {
		fmt.Fprintln(tw, "\nymdhms\tday of year\tymdhms\tjulian date\tymdhms\tround trip")
		for _, dt := range r.DateTimes {
			status := "ok"
			if !dt.RoundTripOK {
				status = "MISMATCH"
			}
			fmt.Fprintf(tw, "%s\t%.8f\t%s\t%.8f\t%s\t%s\n", dt.Input, dt.DayOfYear, dt.FromDayOfYear,
				dt.JulianDate, dt.FromJulianDate, status)
		}
	}

	return tw.Flush()
}

func sexa(whole, sixtieths, rest float64) string {
	return fmt.Sprintf("%.0f %.0f %.4f", whole, sixtieths, rest)
}
