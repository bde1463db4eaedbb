package options

import (
	"github.com/spf13/cobra"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
)

// EnglishOptions
type EnglishOptions struct {
	Title       string
	Description string
	Progress    int
}

func AddEnglishArgs(cmd *cobra.Command, o *EnglishOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "Goal title.")
	cmd.Flags().StringVar(&o.Description, "description", "", "Optional description.")
	cmd.Flags().IntVar(&o.Progress, "progress", 0, "Progress in percent, 0 to 100.")
}

func (o *EnglishOptions) Input() english.Input {
	return english.Input{Title: o.Title, Description: o.Description, Progress: o.Progress}
}
