// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-query/internal/source"
	"github.com/pdiddy/catalog-query/pkg/types"
)

// render writes v in the --output format. table is used for the default
// human-readable layout.
func render(w io.Writer, v any, table func(w io.Writer)) error {
	switch format := viper.GetString("output"); format {
	case "json":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		table(w)
		return nil
	default:
		return fmt.Errorf("unsupported output %q: use table, json, or yaml", format)
	}
}

// printList writes one numbered line per item.
func printList(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(w, "%3d. %s\n", i+1, item)
	}
}

// authorNames resolves a book's author ids for display. Ids with no author
// are shown as #<id>.
func authorNames(ids []types.AuthorID, c source.Catalog) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := fmt.Sprintf("#%d", id)
		for _, a := range c.Authors {
			if a.ID == id {
				name = a.Name
				break
			}
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
