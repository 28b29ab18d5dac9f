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

var statsAccount string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate conversion statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsAccount, "account", "a", "", "filter by account")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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

	repo := storage.NewConversionRepository(db)
	stats, err := repo.Stats(ctx, statsAccount)
	if err != nil {
		return err
	}

	ui.Section("Conversion Statistics")
	ui.Info("total:       %d", stats.Total)
	ui.Info("success:     %d", stats.Success)
	ui.Info("errors:      %d", stats.Errors)
	ui.Info("total pages: %d", stats.TotalPages)
	return nil
}
