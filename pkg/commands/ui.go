package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/tui/goaltree"
)

var errNoTerminal = errors.New("ui needs an interactive terminal, use the goals command instead")

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tree"},
		Short:   "Open the interactive goal tree.",
		Example: `
nafs ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errNoTerminal
			}
			return run(&options.OutputOptions{}, func(s *session) error {
				return goaltree.Run(cmd.Context(), s.Service.Goals,
					goaltree.WithWatcher(s.Disk),
					goaltree.WithLogger(s.Logger),
				)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
