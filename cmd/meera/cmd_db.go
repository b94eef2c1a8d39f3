package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/meera/config"
	"github.com/shashiranjanraj/meera/database/seeders"
	"github.com/shashiranjanraj/meera/pkg/database"
)

// meera seed — insert demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer db.Client().Disconnect(context.Background()) //nolint:errcheck

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, db)
	},
}
