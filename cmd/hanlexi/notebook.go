package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hanlexi/hanlexi/internal/cli"
	"github.com/hanlexi/hanlexi/internal/notebook"
)

type SortFlag string

// Set implements pflag.Value.
func (s *SortFlag) Set(v string) error {
	switch v {
	case string(SortDescending):
		*s = SortDescending
	case string(SortAscending):
		*s = SortAscending
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortDescending, SortAscending)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortFlag) Type() string {
	return "SortFlag"
}

var (
	_ pflag.Value = (*SortFlag)(nil)
)

const (
	SortDescending SortFlag = "desc"
	SortAscending  SortFlag = "asc"
)

func newNotebookCommand() *cobra.Command {
	notebookCommand := &cobra.Command{
		Use:   "notebook",
		Short: "Saved-word notebook commands",
	}

	sortFlag := SortDescending
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "Show every saved word",
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

			words, err := notebook.NewDBRepository(db).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("notebook.FindAll > %w", err)
			}
			// FindAll returns newest first.
			if sortFlag == SortAscending {
				slices.Reverse(words)
			}
			cli.NewRenderer(os.Stdout).RenderSavedWords(words)
			return nil
		},
	}
	listCommand.Flags().Var(&sortFlag, "sort", "Sort order by saved time. Options: asc, desc")

	saveCommand := &cobra.Command{
		Use:   "save <word or phrase>",
		Short: "Look a word up and save the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeService, err := newLookupService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			result, _, err := service.Lookup(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("service.Lookup > %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			return saveResult(cmd.Context(), db, result)
		},
	}

	removeCommand := &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a saved word",
		Args:  cobra.ExactArgs(1),
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

			if err := notebook.NewDBRepository(db).Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("notebook.Remove > %w", err)
			}
			return nil
		},
	}

	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export the notebook as YAML to stdout",
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

			words, err := notebook.NewDBRepository(db).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("notebook.FindAll > %w", err)
			}
			if err := notebook.Export(os.Stdout, words); err != nil {
				return fmt.Errorf("notebook.Export > %w", err)
			}
			return nil
		},
	}

	importCommand := &cobra.Command{
		Use:   "import <file>",
		Short: "Import saved words from a YAML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open > %w", err)
			}
			defer func() {
				_ = file.Close()
			}()

			words, err := notebook.Import(file)
			if err != nil {
				return fmt.Errorf("notebook.Import > %w", err)
			}

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

			repository := notebook.NewDBRepository(db)
			for _, word := range words {
				if err := repository.Save(cmd.Context(), &word); err != nil {
					return fmt.Errorf("notebook.Save %q > %w", word.Word, err)
				}
			}
			return nil
		},
	}

	notebookCommand.AddCommand(saveCommand, listCommand, removeCommand, exportCommand, importCommand)
	return notebookCommand
}
