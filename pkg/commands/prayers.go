package commands

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/prayers"
)

func addPrayers(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "prayers",
		Aliases: []string{"prayer", "namoz", "p"},
		Short:   "Today's prayer checklist.",
		Long: `Today's prayer checklist.

The five daily prayers are always present and only their time can change.
Completion resets at the start of each day.`,
		Example: `
nafs prayers --show-id
nafs prayers done default-0
nafs prayers time default-4 20:15
nafs prayers add --name Tahajjud --time 03:30
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				l := prayers.List{Prayers: s.Service.Prayers, ShowID: io.ShowID, JSON: oo.JSON}
				return l.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	addPrayerInput(cmd, "add", "Add a prayer or dhikr.", prayers.Add)
	addPrayerInput(cmd, "edit <id>", "Edit an added prayer.", prayers.Update)
	addPrayerTime(cmd)
	addPrayerID(cmd, "done <id>", "Toggle a prayer for today.", prayers.Toggle)
	addPrayerID(cmd, "rm <id>", "Delete an added prayer.", prayers.Delete)

	topLevel.AddCommand(cmd)
}

func addPrayerInput(parent *cobra.Command, use, short string, op prayers.Op) {
	io := &options.IDOptions{}
	po := &options.PrayerOptions{}

	var args cobra.PositionalArgs = cobra.NoArgs
	if op == prayers.Update {
		args = cobra.ExactArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := prayers.Edit{Prayers: s.Service.Prayers, Op: op, Input: po.Input(), ShowID: io.ShowID}
				if len(args) > 0 {
					e.ID = args[0]
				}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddPrayerArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addPrayerTime(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "time <id> <HH:MM>",
		Short: "Change the time of any prayer.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := prayers.Edit{Prayers: s.Service.Prayers, Op: prayers.SetTime, ID: args[0], Time: args[1], ShowID: io.ShowID}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addPrayerID(parent *cobra.Command, use, short string, op prayers.Op) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := prayers.Edit{Prayers: s.Service.Prayers, Op: op, ID: args[0], ShowID: io.ShowID}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}
