package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands/options"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/logging"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

var (
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nafs",
		Short: base.Wrap80("Offline self-improvement tracker: goals, lessons, prayers, sport and English practice."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddGlobalArgs(cmd, global)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGoals(topLevel)
	addLessons(topLevel)
	addPrayers(topLevel)
	addSport(topLevel)
	addEnglish(topLevel)
	addStats(topLevel)
	addReset(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// session is what a command needs to run against the configured store.
type session struct {
	Service *app.Service
	Disk    *store.Disk
	Logger  *zap.Logger
}

// open loads config, builds the logger and opens the store.
func open() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(store.VerboseConfigured(cfg))
	if err != nil {
		return nil, err
	}
	disk, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened store", zap.String("path", disk.BasePath()))
	return &session{
		Service: app.New(disk, app.Options{Logger: logger}),
		Disk:    disk,
		Logger:  logger,
	}, nil
}

// run opens a session, hands it to fn and routes the error through the
// output options.
func run(oo *options.OutputOptions, fn func(s *session) error) error {
	s, err := open()
	if err != nil {
		return oo.HandleError(err)
	}
	defer func() { _ = s.Logger.Sync() }()
	return oo.HandleError(fn(s))
}

func joined(args []string) string {
	return strings.Join(args, " ")
}
