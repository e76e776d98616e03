// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads book and author collections from JSON or YAML
// fixture files or from a SQLite database, and checks them for
// referential consistency before they reach the query library.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-query/pkg/types"
)

const (
	booksBase   = "books"
	authorsBase = "authors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog holds the two collections the query library operates on.
type Catalog struct {
	Books   []types.Book   `json:"books" yaml:"books"`
	Authors []types.Author `json:"authors" yaml:"authors"`
}

// Load reads a catalog as described by cfg. When cfg.Validate is set the
// catalog is checked with Validate and rejected if it has any problem.
func Load(ctx context.Context, cfg types.SourceConfig, log *zap.SugaredLogger) (Catalog, error) {
	format, err := resolveFormat(cfg)
	if err != nil {
		return Catalog{}, err
	}

	var c Catalog
	switch format {
	case types.FormatJSON, types.FormatYAML:
		c, err = loadFiles(cfg.DataDir, format, log)
	case types.FormatSQLite:
		c, err = loadSQLite(ctx, cfg.DBPath, log)
	default:
		return Catalog{}, fmt.Errorf("unsupported format %q: use json, yaml, or sqlite", format)
	}
	if err != nil {
		return Catalog{}, err
	}

	log.Infow("loaded catalog", "format", string(format), "books", len(c.Books), "authors", len(c.Authors))

	if cfg.Validate {
		if err := Validate(c); err != nil {
			return Catalog{}, err
		}
		log.Debugw("catalog passed validation")
	}
	return c, nil
}

// resolveFormat picks the configured format, or infers one from the files
// present in DataDir, falling back to sqlite when only DBPath is set.
func resolveFormat(cfg types.SourceConfig) (types.SourceFormat, error) {
	if cfg.Format != types.FormatAuto {
		return cfg.Format, nil
	}

	if cfg.DataDir != "" {
		for _, f := range []types.SourceFormat{types.FormatJSON, types.FormatYAML} {
			if _, err := os.Stat(filepath.Join(cfg.DataDir, fileName(booksBase, f))); err == nil {
				return f, nil
			}
		}
	}
	if cfg.DBPath != "" {
		return types.FormatSQLite, nil
	}
	return "", fmt.Errorf("no catalog found in %q: provide books.json/authors.json, books.yaml/authors.yaml, or a database path", cfg.DataDir)
}

func fileName(base string, format types.SourceFormat) string {
	return base + "." + string(format)
}

func loadFiles(dir string, format types.SourceFormat, log *zap.SugaredLogger) (Catalog, error) {
	var c Catalog
	if err := readFile(filepath.Join(dir, fileName(booksBase, format)), format, &c.Books, log); err != nil {
		return Catalog{}, err
	}
	if err := readFile(filepath.Join(dir, fileName(authorsBase, format)), format, &c.Authors, log); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func readFile(path string, format types.SourceFormat, v any, log *zap.SugaredLogger) error {
	log.Debugw("reading catalog file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch format {
	case types.FormatJSON:
		err = json.Unmarshal(data, v)
	case types.FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		err = errors.New("not a file format")
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// WriteFiles writes c to dir as books.<format> and authors.<format>.
func WriteFiles(dir string, format types.SourceFormat, c Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for base, v := range map[string]any{booksBase: c.Books, authorsBase: c.Authors} {
		var (
			data []byte
			err  error
		)
		switch format {
		case types.FormatJSON:
			data, err = json.MarshalIndent(v, "", "  ")
		case types.FormatYAML:
			data, err = yaml.Marshal(v)
		default:
			return fmt.Errorf("unsupported file format %q: use json or yaml", format)
		}
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", base, err)
		}

		path := filepath.Join(dir, fileName(base, format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
