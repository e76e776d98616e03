// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-query/internal/source"
	"github.com/pdiddy/catalog-query/pkg/types"
)

// --- seed subcommand ---

var seedCmd = &cobra.Command{
	Use:   "seed <db-path>",
	Short: "Write the catalog fixture files into a SQLite database",
	Long: `Seed reads the catalog from the fixture files in --data-dir and writes it
into a SQLite database, replacing any catalog already stored there. The
database can then be queried with --format sqlite --db <db-path>.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := sourceConfig()
	if cfg.Format == types.FormatSQLite {
		return fmt.Errorf("seed reads fixture files: use --format json or yaml")
	}
	cfg.DBPath = ""

	c, err := source.Load(cmd.Context(), cfg, logger.Named("source"))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	dbPath := args[0]
	if err := source.Seed(cmd.Context(), dbPath, c); err != nil {
		return fmt.Errorf("seeding %s: %w", dbPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s (%d books, %d authors)\n", dbPath, len(c.Books), len(c.Authors))
	return nil
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the catalog as fixture files",
	Long: `Export writes the loaded catalog to books.<ext> and authors.<ext> in dir.
Use --to to choose json or yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	if err := source.WriteFiles(args[0], types.SourceFormat(to), c); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
	return nil
}

// --- validate subcommand ---

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for broken or one-sided references",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sourceConfig()
		cfg.Validate = false

		c, err := source.Load(cmd.Context(), cfg, logger.Named("source"))
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		if err := source.Validate(c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog OK: %d books, %d authors\n", len(c.Books), len(c.Authors))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("to", "yaml", "export format: json or yaml")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
}
