package cli

import (
	"fmt"
	"strings"

	"zed-recent/internal/config"
	"zed-recent/internal/format"
	"zed-recent/internal/logging"
	"zed-recent/internal/model"
	"zed-recent/internal/projects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dirs       bool
	PrettyJSON bool
	Verbose    bool

	cfg config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "zed-recent [--dirs] [query]",
		Short: "List recent Zed workspaces or project directories as launcher items",
		Long: strings.TrimSpace(`
Prints a single JSON document ({"items": [...]}) for a launcher script filter.

Without --dirs, items come from the editor's workspace history, most recent
first. With --dirs, items are the immediate subdirectories of the roots listed
(one per line) in $projects_directories, sorted by name.

The first argument after --dirs is the query; further arguments are ignored.
`),
		Example: strings.TrimSpace(`
  # Recent workspaces matching "api"
  zed-recent api

  # Project directories matching "web"
  projects_directories=$'~/code\n~/work' zed-recent --dirs web
`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			if err := run(cmd, app, query); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		log, err := logging.New(app.Verbose || cfg.Verbose)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = log
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.Flags().BoolVar(&app.Dirs, "dirs", false, "List subdirectories of $projects_directories instead of recent workspaces")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output (also "+config.EnvPretty+"=1)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging to stderr (also "+config.EnvDebug+"=1)")

	return cmd
}

func run(cmd *cobra.Command, app *App, query string) error {
	lister := projects.NewLister(app.cfg, app.log)

	var items []model.Item
	var err error
	if app.Dirs {
		items, err = lister.Directories(query)
	} else {
		items, err = lister.Recent(cmd.Context(), query)
	}
	if err != nil {
		return err
	}
	return writeOut(cmd, app, model.NewResponse(items))
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON || app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
