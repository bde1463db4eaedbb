package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	Verbose bool
	Path    string
}

// AddGlobalArgs registers the persistent flags and binds them to the
// config keys of the same name.
func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the tracker data, default ~/.nafs.")
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("path", cmd.PersistentFlags().Lookup("path"))
}
