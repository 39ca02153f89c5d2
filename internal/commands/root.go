package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/acjournal/internal/buildinfo"
	"github.com/cleared-dev/acjournal/internal/config"
	"github.com/cleared-dev/acjournal/internal/document"
	"github.com/cleared-dev/acjournal/internal/logging"
)

// app carries the state every subcommand shares once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	locale     string

	settings *config.Settings
	logger   *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "acjournal",
		Short:   "Render accounting journal and ledger blocks in Markdown",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "settings file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.locale, "locale", "", "locale deciding the decimal separator, e.g. es-ES")

	rootCmd.AddCommand(
		newInitCommand(a),
		newRenderCommand(a),
		newRewriteCommand(a),
		newExportCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}

// load reads .env, the settings file and the environment, in that order, and
// builds the logger. Flags win over all of them.
func (a *app) load() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	settings, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", a.configPath, err)
	}
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if a.locale != "" {
		if err := settings.SetLocale(a.locale); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	return nil
}

// pipeline builds a document pipeline from the settings. Relative equivalence
// paths resolve against the settings file's directory.
func (a *app) pipeline() *document.Pipeline {
	base := filepath.Dir(a.configPath)
	return document.NewPipeline(document.NewFileLoader(base), a.settings.Overrides(), a.logger)
}
