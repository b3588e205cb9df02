package cmd

import (
	"context"
	"fmt"
	"os"

	"account-list/core/config"
	"account-list/core/logger"
	"account-list/core/reconcile"
	"account-list/feature/records"
	"account-list/feature/twitter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the root command
	configDir string
	dryRun    bool
)

// RootCmd resolves the missing IDs or screen names of one record collection.
var RootCmd = &cobra.Command{
	Use:   "account-list <collection>",
	Short: "Fill in missing account IDs and screen names",
	Long: `Account List completes a collection of tracked accounts.

Each record in <records.dir>/<collection><records.extension> may carry a
numeric id, a screen name (sn) or both. All of them are looked up in one
batched users/lookup call; records with an id get their current screen name,
records with only a screen name get their id. The collection is then written
back in place.

Examples:
  # Reconcile data/friends.csv
  account-list friends

  # Show what would change without writing
  account-list friends --dry-run`,
	Args:          cobra.ExactArgs(1),
	RunE:          runReconcile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.Flags().StringVar(&configDir, "config", ".", "Directory containing config.toml and .env")
	RootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and report without saving the collection")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	collection := args[0]

	// 1. Load configuration
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l, _ = logger.WithRunID(l)

	// 3. Open record store
	store, err := records.NewStore(cfg.Records, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}

	// 4. Build spec
	spec := &reconcile.Spec{
		Store:    store,
		Resolver: twitter.NewResolver(cfg.Lookup, cfg.Credentials),
		Logger:   l,
	}
	if cfg.Lookup.FoldNames {
		spec.IndexOptions = append(spec.IndexOptions, reconcile.WithNameFolding())
	}

	l.Info("Starting reconciliation",
		zap.String("collection", collection),
		zap.String("driver", cfg.Records.Driver),
		zap.Bool("dry_run", dryRun),
	)

	// 5. Run
	result, err := reconcile.Run(ctx, spec, collection, reconcile.Options{DryRun: dryRun})
	if err != nil {
		return err
	}

	// 6. Report
	printReconcileReport(l, result)

	return nil
}

// printReconcileReport logs the outcome of a run.
func printReconcileReport(l *zap.Logger, result *reconcile.Result) {
	s := result.Summary

	l.Info("Reconciliation report",
		zap.Int("total", s.Total),
		zap.Int("references", result.Refs),
		zap.Int("resolved", result.Resolved),
		zap.Int("by_id", s.ByID),
		zap.Int("by_name", s.ByName),
		zap.Int("names_changed", s.NamesChanged),
		zap.Int("unresolved", s.Unresolved),
		zap.Int("inert", s.Inert),
		zap.Bool("saved", result.Saved),
	)
}
