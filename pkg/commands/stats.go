package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"profile"},
		Short:   "Show progress across every tracker.",
		Example: `
nafs stats
nafs stats --watch --interval 5s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(oo, func(s *session) error {
				st := stats.Stats{
					Store:    s.Disk,
					Watcher:  s.Disk,
					Watch:    wo.Watch,
					Interval: wo.Interval,
					JSON:     oo.JSON,
					Logger:   s.Logger,
				}
				return st.Do(cmd.Context())
			})
		},
	}
	options.AddWatchArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all tracker data.",
		Long:  "Erase all tracker data. This can not be undone.",
		Example: `
nafs reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to erase data without --yes")
			}
			return run(&options.OutputOptions{}, func(s *session) error {
				r := stats.Reset{Service: s.Service}
				return r.Do(cmd.Context())
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all data.")

	topLevel.AddCommand(cmd)
}
