// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, builds the logger, and opens the journal store for each command

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/journal"
	"github.com/harper/moodlog/internal/kv"
	"github.com/harper/moodlog/internal/timeutil"
)

// annotationNoJournal marks commands that run without opening storage.
const annotationNoJournal = "moodlog/no-journal"

var (
	backendFlag string
	dataDirFlag string
	verbose     bool

	cfg          *config.Config
	logger       *zap.Logger
	kvStore      kv.Store
	journalStore *journal.Store
)

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "Mood journal for humans and AI agents",
	Long: `
███╗   ███╗ ██████╗  ██████╗ ██████╗ ██╗      ██████╗  ██████╗
████╗ ████║██╔═══██╗██╔═══██╗██╔══██╗██║     ██╔═══██╗██╔════╝
██╔████╔██║██║   ██║██║   ██║██║  ██║██║     ██║   ██║██║  ███╗
██║╚██╔╝██║██║   ██║██║   ██║██║  ██║██║     ██║   ██║██║   ██║
██║ ╚═╝ ██║╚██████╔╝╚██████╔╝██████╔╝███████╗╚██████╔╝╚██████╔╝
╚═╝     ╚═╝ ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝

A small diary where every entry carries a mood: 😊 😐 😢 😡

Write entries, search and favorite them, see how you've been feeling,
and expose it all via MCP for Claude.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogger(); err != nil {
			return err
		}
		if cmd.Annotations[annotationNoJournal] == "true" {
			return nil
		}
		return openJournal(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeJournal()
	},
}

// Execute runs the root command and releases storage even when a command fails.
func Execute() error {
	err := rootCmd.Execute()
	if closeErr := closeJournal(); closeErr != nil && err == nil {
		err = closeErr
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, file, charm (needs network), or memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config, default: ~/.local/share/moodlog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

func initLogger() error {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// openJournal loads config, opens the kv backend, and seeds the journal.
func openJournal(ctx context.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	kvStore, err = cfg.OpenKV()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}

	journalStore = journal.New(kvStore,
		journal.WithLogger(logger.Named("journal")),
		journal.WithDateFormatter(timeutil.DateFormatter(cfg.GetDateLocale())),
	)

	initCtx, cancel := context.WithTimeout(ctx, config.DefaultStorageTimeout)
	defer cancel()
	if err := journalStore.Initialize(initCtx); err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	logger.Debug("journal opened",
		zap.String("backend", cfg.GetBackend()),
		zap.String("data_dir", cfg.GetDataDir()),
		zap.Int("entries", journalStore.Len()),
	)
	return nil
}

// closeJournal drains pending writes and closes the kv backend. Safe to call
// more than once.
func closeJournal() error {
	if journalStore == nil {
		return nil
	}
	defer func() {
		journalStore = nil
		kvStore = nil
	}()

	ctx, cancel := context.WithTimeout(context.Background(), config.DefaultStorageTimeout)
	defer cancel()

	var firstErr error
	if err := journalStore.Close(ctx); err != nil {
		firstErr = fmt.Errorf("failed to save journal: %w", err)
	}
	if n := journalStore.FailedWrites(); n > 0 && firstErr == nil {
		firstErr = fmt.Errorf("%d storage write(s) failed; recent changes may not be saved", n)
	}
	if err := kvStore.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close storage: %w", err)
	}
	return firstErr
}
