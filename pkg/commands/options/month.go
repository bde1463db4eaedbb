package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutMonth      = "2006-1"
	layoutMonthShort = "1"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Specify a month, example: --month="2024-3" or --month="3".`)
}

// GetMonth returns the first of the selected month, or the zero time when
// unset. A bare month number means that month of now's year.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutMonthShort, o.MonthString, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(now.Year(), 0, 0)
	}
	return t, nil
}
