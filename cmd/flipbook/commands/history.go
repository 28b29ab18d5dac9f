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

var (
	historyAccount string
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions from the audit log",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyAccount, "account", "a", "", "filter by account")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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
	records, err := repo.ListByAccount(ctx, historyAccount, historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		ui.Info("no conversions recorded")
		return nil
	}

	for _, rec := range records {
		status := "✓"
		if rec.Status == storage.StatusError {
			status = "✗"
		}
		line := fmt.Sprintf("%s  %s  %-20s %-30s %3d pages", status,
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Account, rec.Title, rec.PageCount)
		if rec.DestinationURL != "" {
			line += "  " + rec.DestinationURL
		}
		if rec.ErrorMessage != "" {
			line += "  [" + rec.ErrorMessage + "]"
		}
		ui.Info("%s", line)
	}
	return nil
}
