package options

import (
	"time"

	"github.com/spf13/cobra"
)

// WatchOptions
type WatchOptions struct {
	Watch    bool
	Interval time.Duration
}

func AddWatchArgs(cmd *cobra.Command, o *WatchOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep printing whenever the data changes.")
	cmd.Flags().DurationVar(&o.Interval, "interval", 2*time.Second,
		"Refresh interval in watch mode.")
}
