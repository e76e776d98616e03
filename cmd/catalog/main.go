// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog CLI. Each subcommand loads
// the book and author collections from the configured source and prints the
// answer to one catalog query.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-query/internal/logging"
	"github.com/pdiddy/catalog-query/internal/source"
	"github.com/pdiddy/catalog-query/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --log-level before any subcommand runs.
var logger = logging.Nop()

// rootCmd is the base command for the catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query a catalog of books and authors",
	Long: `catalog answers lookup and aggregation questions over a catalog of books
and authors: find a book or author, count books per author, group titles
by color, list an author's titles, and find related books or the most
prolific and most collaborative authors.

The catalog is read from books.json/authors.json or books.yaml/authors.yaml
in --data-dir, or from a SQLite database written by "catalog seed".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetString("log.level"))
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Infow("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./catalog.yaml or ~/.config/catalog/config.yaml)")
	pf.String("data-dir", "data", "directory containing books and authors fixture files")
	pf.String("format", "", "catalog source format: json, yaml, or sqlite (default: inferred)")
	pf.String("db", "", "SQLite catalog database path")
	pf.Bool("validate", true, "check referential consistency when loading the catalog")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.StringP("output", "o", "table", "output format: table, json, or yaml")

	for key, flag := range map[string]string{
		"data.dir":      "data-dir",
		"data.format":   "format",
		"data.db":       "db",
		"data.validate": "validate",
		"log.level":     "log-level",
		"output":        "output",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog"))
		}
	}

	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// sourceConfig assembles the catalog source settings from flags, env, and
// the config file.
func sourceConfig() types.SourceConfig {
	return types.SourceConfig{
		DataDir:  viper.GetString("data.dir"),
		Format:   types.SourceFormat(viper.GetString("data.format")),
		DBPath:   viper.GetString("data.db"),
		Validate: viper.GetBool("data.validate"),
	}
}

// loadCatalog reads the configured catalog.
func loadCatalog(ctx context.Context) (source.Catalog, error) {
	cfg := sourceConfig()
	c, err := source.Load(ctx, cfg, logger.Named("source"))
	if err != nil {
		return source.Catalog{}, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
