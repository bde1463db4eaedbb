package commands

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/lessons"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

func addLessons(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	lo := &options.LessonOptions{}

	cmd := &cobra.Command{
		Use:     "lessons",
		Aliases: []string{"lesson", "l"},
		Short:   "List and edit the class schedule.",
		Example: `
nafs lessons --today
nafs lessons add --name Math --time 09:00 --topic Algebra --days du,ch,ju
nafs lessons now
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				l := lessons.List{Lessons: s.Service.Lessons, Today: lo.Today, ShowID: io.ShowID, JSON: oo.JSON}
				return l.Do(cmd.Context())
			})
		},
	}
	options.AddTodayArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	addLessonNow(cmd)
	addLessonInput(cmd, "add", "Schedule a lesson.", lessons.Add)
	addLessonInput(cmd, "edit <id>", "Edit a lesson.", lessons.Update)
	addLessonID(cmd, "done <id>", "Toggle a lesson's completion.", lessons.Toggle)
	addLessonID(cmd, "rm <id>", "Delete a lesson.", lessons.Delete)

	topLevel.AddCommand(cmd)
}

func addLessonNow(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the lesson starting within the hour.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				n := lessons.Now{Lessons: s.Service.Lessons, ShowID: io.ShowID, JSON: oo.JSON}
				return n.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

func addLessonInput(parent *cobra.Command, use, short string, op lessons.Op) {
	io := &options.IDOptions{}
	lo := &options.LessonOptions{}

	var args cobra.PositionalArgs = cobra.NoArgs
	if op == lessons.Update {
		args = cobra.ExactArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				in, err := lo.Input()
				if err != nil {
					pp := printers.PrettyPrint{}
					if validation.IsAdvisory(err) {
						pp.Advisory(err)
						return nil
					}
					return err
				}
				e := lessons.Edit{Lessons: s.Service.Lessons, Op: op, Input: in, ShowID: io.ShowID}
				if len(args) > 0 {
					e.ID = args[0]
				}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddLessonArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addLessonID(parent *cobra.Command, use, short string, op lessons.Op) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := lessons.Edit{Lessons: s.Service.Lessons, Op: op, ID: args[0], ShowID: io.ShowID}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}
