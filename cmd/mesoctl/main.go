// Package main is the admin CLI of the mesocycle backend: migrations, plan files, users,
// and a preview of the intensity schedule.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/2beens/mesocycle/internal/config"
	"github.com/2beens/mesocycle/internal/db"
)

var (
	envFlag    string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:           "mesoctl",
	Short:         "Admin CLI for the mesocycle backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func dbParams() (db.NewDBPoolParams, error) {
	cfg, err := config.Load(envFlag, configFlag)
	if err != nil {
		return db.NewDBPoolParams{}, fmt.Errorf("load config: %w", err)
	}
	return db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
	}, nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	params, err := dbParams()
	if err != nil {
		return nil, err
	}
	pool, err := db.NewDBPool(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
