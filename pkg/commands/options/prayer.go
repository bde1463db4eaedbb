package options

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
)

// PrayerOptions
type PrayerOptions struct {
	Name string
	Time string
}

func AddPrayerArgs(cmd *cobra.Command, o *PrayerOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Prayer or dhikr name.")
	cmd.Flags().StringVar(&o.Time, "time", "", `Time, example: --time="21:00".`)
}

func (o *PrayerOptions) Input() prayer.Input {
	return prayer.Input{Name: o.Name, Time: o.Time}
}
