package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanlexi/hanlexi/internal/cli"
	"github.com/hanlexi/hanlexi/internal/history"
	"github.com/hanlexi/hanlexi/internal/statistics"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Search history commands",
	}

	var limit int
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "Show recent searches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			entries, err := history.NewDBRepository(db).Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("history.Recent > %w", err)
			}
			cli.NewRenderer(os.Stdout).RenderHistory(entries)
			return nil
		},
	}
	listCommand.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show, 0 for the default")

	clearCommand := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := history.NewDBRepository(db).Clear(cmd.Context()); err != nil {
				return fmt.Errorf("history.Clear > %w", err)
			}
			return nil
		},
	}

	var year, month int
	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate searches into monthly counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			entries, err := history.NewDBRepository(db).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("history.All > %w", err)
			}

			result := statistics.CalculateStatistics(entries, year, month)
			writer := cmd.OutOrStdout()
			for _, period := range result.Periods {
				if _, err := fmt.Fprintf(writer, "%s  searches: %d, unique: %d, chinese: %d\n",
					period.Period, period.SearchCount, period.UniqueQueries, period.ChineseQueries); err != nil {
					return fmt.Errorf("fmt.Fprintf > %w", err)
				}
			}
			if _, err := fmt.Fprintf(writer, "total  searches: %d, unique: %d, chinese: %d\n",
				result.Aggregate.SearchCount, result.Aggregate.UniqueQueries, result.Aggregate.ChineseQueries); err != nil {
				return fmt.Errorf("fmt.Fprintf > %w", err)
			}
			return nil
		},
	}
	statsCommand.Flags().IntVar(&year, "year", 0, "Only count searches from this year")
	statsCommand.Flags().IntVar(&month, "month", 0, "Only count searches from this month, requires --year")

	historyCommand.AddCommand(listCommand, clearCommand, statsCommand)
	return historyCommand
}
