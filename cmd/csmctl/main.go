package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/pkg/config"
	"github.com/csmaviation/website-api/pkg/database"
	"github.com/csmaviation/website-api/pkg/logger"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "csmctl",
		Short:         "Operator tooling for the CSM Aviation API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(linksCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtime holds what every subcommand needs: config, logger and the database.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &runtime{cfg: cfg, logger: logr, db: db}, nil
}

func (r *runtime) Close() {
	_ = r.db.Close()
	_ = r.logger.Sync()
}
