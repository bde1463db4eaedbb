package commands

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/goals"
)

func addGoals(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "goals",
		Aliases: []string{"goal", "g"},
		Short:   "List and edit the goal tree.",
		Example: `
nafs goals
nafs goals --all --show-id
nafs goals add Read a book
nafs goals sub <parent-id> Chapter 1
nafs goals done <id>
nafs goals show <id> --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				l := goals.List{Goals: s.Service.Goals, All: all, ShowID: io.ShowID, JSON: oo.JSON}
				return l.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show collapsed sub-goals too.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	addGoalShow(cmd)
	addGoalEdit(cmd, "add <title>", "Add a top-level goal.", goals.Add, 0, true)
	addGoalEdit(cmd, "sub <parent-id> <title>", "Add a sub-goal.", goals.AddChild, 1, true)
	addGoalEdit(cmd, "done <id>", "Toggle a goal's completion.", goals.ToggleCompleted, 1, false)
	addGoalEdit(cmd, "expand <id>", "Show or hide a goal's sub-goals.", goals.ToggleExpanded, 1, false)
	addGoalEdit(cmd, "rename <id> <title>", "Rename a goal.", goals.Rename, 1, true)
	addGoalEdit(cmd, "rm <id>", "Delete a goal and its sub-goals.", goals.Delete, 1, false)

	topLevel.AddCommand(cmd)
}

func addGoalShow(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one goal with all of its sub-goals.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(oo, func(s *session) error {
				sh := goals.Show{Goals: s.Service.Goals, ID: args[0], ShowID: io.ShowID, JSON: oo.JSON}
				return sh.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}

// addGoalEdit wires one goal change. ids is the number of leading id
// arguments; when titled the remaining arguments form the title.
func addGoalEdit(parent *cobra.Command, use, short string, op goals.Op, ids int, titled bool) {
	io := &options.IDOptions{}

	args := cobra.ExactArgs(ids)
	if titled {
		args = cobra.MinimumNArgs(ids + 1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := goals.Edit{Goals: s.Service.Goals, Op: op, ShowID: io.ShowID}
				if ids > 0 {
					e.ID = args[0]
				}
				if titled {
					e.Title = joined(args[ids:])
				}
				return e.Do(cmd.Context())
			})
		},
	}
	if op == goals.Delete {
		cmd.Aliases = []string{"delete", "remove"}
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}
