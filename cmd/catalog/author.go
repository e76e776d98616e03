// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-query/internal/catalog"
)

// --- author subcommand ---

var authorCmd = &cobra.Command{
	Use:   "author <name>",
	Short: "Show the author with the given name (case-insensitive)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAuthor,
}

func runAuthor(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	author, ok := catalog.FindAuthorByName(name, c.Authors)
	if !ok {
		fmt.Fprintf(out, "No author named %q.\n", name)
		return nil
	}

	return render(out, author, func(w io.Writer) {
		fmt.Fprintf(w, "ID:    %d\n", author.ID)
		fmt.Fprintf(w, "Name:  %s\n", author.Name)
		fmt.Fprintf(w, "Books: %d\n", len(author.Books))
	})
}

// --- titles subcommand ---

var titlesCmd = &cobra.Command{
	Use:   "titles <name>",
	Short: "List the titles written by an author",
	Long: `Titles lists, in catalog order, the titles of every book in the named
author's bibliography. An unknown author prints no results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTitles,
}

func runTitles(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	titles := catalog.TitlesForAuthor(strings.Join(args, " "), c.Authors, c.Books)
	return render(cmd.OutOrStdout(), titles, func(w io.Writer) { printList(w, titles) })
}

func init() {
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(titlesCmd)
}
