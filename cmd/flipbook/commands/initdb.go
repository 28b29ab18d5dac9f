package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/municipress/flipbook/cmd/flipbook/ui"
	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/storage"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the conversion log schema",
	RunE:  runInitDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ui.Init(noColor)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open conversion log: %w", err)
	}
	defer db.Close()

	if err := storage.InitSchema(ctx, db); err != nil {
		return err
	}

	ui.Success("conversion log schema initialized (%s)", cfg.Database.Driver)
	return nil
}
