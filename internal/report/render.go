package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Render writes the report in a human-readable columnar form.
// Aircraft and airports keep their first-seen order from the input.
func (r *Report) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Dataset\n")
	fmt.Fprintf(tw, "  start\t%s\n", r.DatasetMetadata.StartDate)
	fmt.Fprintf(tw, "  end\t%s\n", r.DatasetMetadata.EndDate)
	fmt.Fprintf(tw, "  span\t%d days\n", r.DatasetMetadata.LengthDays)
	fmt.Fprintf(tw, "  events\t%d\n", r.DatasetMetadata.NumEvents)

	fmt.Fprintf(tw, "\nWeekend/weekday utilization\n")
	fmt.Fprintf(tw, "  \tweekend\tweekday\n")
	fmt.Fprintf(tw, "  total\t%d\t%d\n",
		r.WeekendWeekdayUtilization.Weekend.Total,
		r.WeekendWeekdayUtilization.Weekday.Total)
	for _, name := range r.aircraft {
		fmt.Fprintf(tw, "  %s\t%d\t%d\n", name,
			r.WeekendWeekdayUtilization.Weekend.ByAircraft[name],
			r.WeekendWeekdayUtilization.Weekday.ByAircraft[name])
	}

	fmt.Fprintf(tw, "\nAirport utilization\n")
	fmt.Fprintf(tw, "  \tevents\thours\n")
	for _, airport := range r.airports {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f\n", airport,
			r.AirportUtilization[airport],
			r.AirportUtilizationByHours[airport])
	}

	fmt.Fprintf(tw, "\nReservation length (hours, rounded up)\n")
	for _, bin := range r.LengthOfReservationByHours {
		fmt.Fprintf(tw, "  %d h\t%d\n", bin.Hours, bin.Count)
	}

	fmt.Fprintf(tw, "\nDays between usage\n")
	fmt.Fprintf(tw, "  \tgaps\tmean\tmedian\n")
	for _, name := range r.aircraft {
		gaps := r.DaysBetweenUsageByAircraft[name]
		if len(gaps) == 0 {
			fmt.Fprintf(tw, "  %s\t0\t-\t-\n", name)
			continue
		}
		sorted := make([]float64, len(gaps))
		copy(sorted, gaps)
		sort.Float64s(sorted)
		fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%.2f\n", name,
			len(gaps),
			stat.Mean(gaps, nil),
			stat.Quantile(0.5, stat.Empirical, sorted, nil))
	}

	fmt.Fprintf(tw, "\nUsage by weekday (days touched)\n")
	fmt.Fprintf(tw, "  ")
	for _, day := range weekdayNames {
		fmt.Fprintf(tw, "\t%.3s", day)
	}
	fmt.Fprintf(tw, "\n")
	for _, name := range r.aircraft {
		counts := r.UsageByWeekday[name]
		if counts == nil {
			continue
		}
		fmt.Fprintf(tw, "  %s", name)
		for _, day := range weekdayNames {
			fmt.Fprintf(tw, "\t%d", counts[day])
		}
		fmt.Fprintf(tw, "\n")
	}

	fmt.Fprintf(tw, "\nMean aircraft available by airport and weekday\n")
	fmt.Fprintf(tw, "  ")
	for _, day := range weekdayNames {
		fmt.Fprintf(tw, "\t%.3s", day)
	}
	fmt.Fprintf(tw, "\n")
	for _, airport := range r.airports {
		fmt.Fprintf(tw, "  %s", airport)
		for _, day := range weekdayNames {
			if mean, ok := r.AircraftAvailableByAirportAndWeekday[airport][day]; ok {
				fmt.Fprintf(tw, "\t%.2f", mean)
			} else {
				fmt.Fprintf(tw, "\t-")
			}
		}
		fmt.Fprintf(tw, "\n")
	}

	return tw.Flush()
}
