package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanlexi/hanlexi/internal/vocabulary"
)

func newVocabCommand() *cobra.Command {
	vocabCommand := &cobra.Command{
		Use:   "vocab",
		Short: "Known-word tracking commands",
	}

	knownCommand := &cobra.Command{
		Use:   "known <word>",
		Short: "Mark a word as known",
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

			if err := vocabulary.NewDBRepository(db).MarkKnown(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("vocabulary.MarkKnown > %w", err)
			}
			return nil
		},
	}

	unknownCommand := &cobra.Command{
		Use:   "unknown <word>",
		Short: "Mark a word as no longer known",
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

			if err := vocabulary.NewDBRepository(db).MarkUnknown(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("vocabulary.MarkUnknown > %w", err)
			}
			return nil
		},
	}

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List every known word",
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

			words, err := vocabulary.NewDBRepository(db).ListKnown(cmd.Context())
			if err != nil {
				return fmt.Errorf("vocabulary.ListKnown > %w", err)
			}
			for _, word := range words {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
					return fmt.Errorf("fmt.Fprintln > %w", err)
				}
			}
			return nil
		},
	}

	vocabCommand.AddCommand(knownCommand, unknownCommand, listCommand)
	return vocabCommand
}
