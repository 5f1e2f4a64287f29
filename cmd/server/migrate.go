package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog_backend/internal/app/config"
	platformdb "blog_backend/internal/platform/db"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, profiles and posts tables",
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cmd.Println("Connecting to database...")
	cfg.DB.RunMigrations = true
	db, err := platformdb.Open(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	cmd.Println("Migrations completed successfully")
	return nil
}
