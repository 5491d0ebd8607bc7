// Package cli is the phrasebook command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/app"
	"github.com/heartmarshall/myburmese-backend/internal/catalog"
	"github.com/heartmarshall/myburmese-backend/internal/config"
	"github.com/heartmarshall/myburmese-backend/internal/service/progress"
)

// env is shared by every command of one invocation.
type env struct {
	configPath string
	envFile    string

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Each call returns a fresh tree.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "phrasebook",
		Short: "Burmese conversation phrasebook with Devanagari transliteration",
		Long: `phrasebook teaches Burmese conversational phrases to readers of Devanagari.

Convert text:
  phrasebook convert "မင်္ဂလာပါ"

Practise a topic:
  phrasebook chat --topic 1
  phrasebook quiz --topic 1 --mode production

Check progress:
  phrasebook review --due`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&e.envFile, "env-file", ".env", "dotenv file loaded before the config; missing default is ignored")

	root.AddCommand(
		newConvertCmd(e),
		newTopicsCmd(e),
		newStatsCmd(e),
		newQuizCmd(e),
		newChatCmd(e),
		newReviewCmd(e),
		newResetCmd(e),
		newMigrateCmd(e),
		newSchemaCmd(),
		newVersionCmd(),
	)
	return root
}

func (e *env) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(e.envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load env file %s: %w", e.envFile, err)
		}
	}

	cfg, err := config.LoadPath(e.configPath)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = app.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

func (e *env) catalog(ctx context.Context) (*catalog.Catalog, error) {
	return app.LoadCatalog(ctx, e.log, e.cfg)
}

// progress opens the store, loads it into a tracker and returns a closer
// that drains pending writes.
func (e *env) progress(ctx context.Context) (*progress.Tracker, func(), error) {
	store, closeStore, err := app.OpenStore(ctx, e.log, e.cfg)
	if err != nil {
		return nil, nil, err
	}

	tr := app.NewTracker(e.log, store, e.cfg)
	if err := tr.Load(ctx); err != nil {
		e.log.WarnContext(ctx, "progress partially loaded", slog.String("error", err.Error()))
	}

	closer := func() {
		shutdown, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.cfg.Progress.WriteTimeout+time.Second)
		defer cancel()
		if err := tr.Close(shutdown); err != nil {
			e.log.Warn("close progress tracker", slog.String("error", err.Error()))
		}
		closeStore()
	}
	return tr, closer, nil
}
