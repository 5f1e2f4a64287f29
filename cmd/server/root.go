package main

import (
	"github.com/spf13/cobra"

	"blog_backend/internal/app/config"
)

// envFile is the dotenv file read before the process environment.
var envFile string

// NewRootCmd creates the root command for the blog API.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "blog",
		Short:        "GraphQL blog backend",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file to load")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
