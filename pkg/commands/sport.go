package commands

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	runner "github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/timeutil"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

func addSport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "sport",
		Aliases: []string{"s"},
		Short:   "Exercises and the workout log.",
		Example: `
nafs sport exercise add Squat
nafs sport log <exercise-id> 10x40 8x42.5 6x45
nafs sport history <exercise-id>
nafs sport calendar --month 2024-3
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addSportExercises(cmd)
	addSportExercise(cmd)
	addSportLog(cmd)
	addSportHistory(cmd)
	addSportCalendar(cmd)

	topLevel.AddCommand(cmd)
}

func addSportExercises(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List exercises.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				x := runner.Exercises{Sport: s.Service.Sport, ShowID: io.ShowID, JSON: oo.JSON}
				return x.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

func addSportExercise(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Add or remove exercises.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	io := &options.IDOptions{}
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an exercise.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				a := runner.AddExercise{Sport: s.Service.Sport, Name: joined(args), ShowID: io.ShowID}
				return a.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(add, io)

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete an exercise and all of its workouts.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				d := runner.DeleteExercise{Sport: s.Service.Sport, ID: args[0]}
				return d.Do(cmd.Context())
			})
		},
	}

	cmd.AddCommand(add, rm)
	parent.AddCommand(cmd)
}

func addSportLog(parent *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "log <exercise-id> <reps>x<weight>...",
		Short: "Log a workout, one argument per set.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(oo, func(s *session) error {
				sets, err := sport.ParseSets(args[1:])
				if err != nil {
					if validation.IsAdvisory(err) && !oo.JSON {
						pp := printers.PrettyPrint{}
						pp.Advisory(err)
						return nil
					}
					return err
				}
				w := runner.LogWorkout{Sport: s.Service.Sport, ExerciseID: args[0], Sets: sets, JSON: oo.JSON}
				return w.Do(cmd.Context())
			})
		},
	}
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

func addSportHistory(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	since := ""

	cmd := &cobra.Command{
		Use:   "history [exercise-id]",
		Short: "Show workouts, newest first.",
		Example: `
nafs sport history
nafs sport history <exercise-id> --since 2w
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(oo, func(s *session) error {
				days, _, err := timeutil.ParseWindow(since)
				if err != nil {
					if validation.IsAdvisory(err) && !oo.JSON {
						pp := printers.PrettyPrint{}
						pp.Advisory(err)
						return nil
					}
					return err
				}
				h := runner.History{Sport: s.Service.Sport, ShowID: io.ShowID, JSON: oo.JSON, Days: days}
				if len(args) > 0 {
					h.ExerciseID = args[0]
				}
				return h.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "Only show the last days or weeks, like 3d or 2w.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

func addSportCalendar(parent *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month with the days you trained in bold.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				month, err := mo.GetMonth(s.Service.Sport.Now())
				if err != nil {
					return err
				}
				c := runner.Calendar{Sport: s.Service.Sport, Month: month}
				return c.Do(cmd.Context())
			})
		},
	}
	options.AddMonthArgs(cmd, mo)

	parent.AddCommand(cmd)
}
