package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

func addEnglish(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "english",
		Aliases: []string{"en", "e"},
		Short:   "English practice: current level and learning goals.",
		Example: `
nafs english
nafs english position B1, reading graded readers
nafs english add --title "IELTS 7.0" --progress 20
nafs english progress <id> 45
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				l := english.List{English: s.Service.English, ShowID: io.ShowID, JSON: oo.JSON}
				return l.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	addEnglishPosition(cmd)
	addEnglishInput(cmd, "add", "Add a learning goal.", english.Add)
	addEnglishInput(cmd, "edit <id>", "Edit a learning goal.", english.Update)
	addEnglishProgress(cmd)
	addEnglishRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addEnglishPosition(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "position <text>",
		Short: "Describe your current level.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := english.Edit{English: s.Service.English, Op: english.SetPosition, Position: joined(args)}
				return e.Do(cmd.Context())
			})
		},
	}

	parent.AddCommand(cmd)
}

func addEnglishInput(parent *cobra.Command, use, short string, op english.Op) {
	io := &options.IDOptions{}
	eo := &options.EnglishOptions{}

	var args cobra.PositionalArgs = cobra.NoArgs
	if op == english.Update {
		args = cobra.ExactArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := english.Edit{English: s.Service.English, Op: op, Input: eo.Input(), ShowID: io.ShowID}
				if len(args) > 0 {
					e.ID = args[0]
				}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddEnglishArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addEnglishProgress(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set a goal's progress; values are clamped to 0..100.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				p, err := strconv.Atoi(args[1])
				if err != nil {
					pp := printers.PrettyPrint{}
					pp.Advisory(validation.Advisory("progress must be a whole number, got %q", args[1]))
					return nil
				}
				e := english.Edit{English: s.Service.English, Op: english.SetProgress, ID: args[0], Progress: p, ShowID: io.ShowID}
				return e.Do(cmd.Context())
			})
		},
	}
	options.AddShowIDArgs(cmd, io)

	parent.AddCommand(cmd)
}

func addEnglishRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete a learning goal.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&options.OutputOptions{}, func(s *session) error {
				e := english.Edit{English: s.Service.English, Op: english.Delete, ID: args[0]}
				return e.Do(cmd.Context())
			})
		},
	}

	parent.AddCommand(cmd)
}
