package options

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
)

// LessonOptions
type LessonOptions struct {
	Name  string
	Time  string
	Topic string
	Days  string
	Today bool
}

func AddLessonArgs(cmd *cobra.Command, o *LessonOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Lesson name.")
	cmd.Flags().StringVar(&o.Time, "time", "", `Start time, example: --time="09:30".`)
	cmd.Flags().StringVar(&o.Topic, "topic", "", "Optional topic.")
	cmd.Flags().StringVar(&o.Days, "days", "all",
		`Weekdays, example: --days="du,ch,ju" or --days="1,3,5". 0 is Sunday.`)
}

func AddTodayArg(cmd *cobra.Command, o *LessonOptions) {
	cmd.Flags().BoolVar(&o.Today, "today", false, "Only list lessons held today.")
}

// Input converts the flags into a lesson input.
func (o *LessonOptions) Input() (lesson.Input, error) {
	days, err := lesson.ParseDays(o.Days)
	if err != nil {
		return lesson.Input{}, err
	}
	return lesson.Input{Name: o.Name, Time: o.Time, Topic: o.Topic, Days: days}, nil
}
