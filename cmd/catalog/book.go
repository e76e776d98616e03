// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-query/internal/catalog"
	"github.com/pdiddy/catalog-query/pkg/types"
)

// --- book subcommand ---

var bookCmd = &cobra.Command{
	Use:   "book <id>",
	Short: "Show the book with the given id",
	Args:  cobra.ExactArgs(1),
	RunE:  runBook,
}

func runBook(cmd *cobra.Command, args []string) error {
	id, err := parseBookID(args[0])
	if err != nil {
		return err
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	book, ok := catalog.FindBookByID(id, c.Books)
	if !ok {
		fmt.Fprintf(out, "No book with id %d.\n", id)
		return nil
	}

	return render(out, book, func(w io.Writer) {
		fmt.Fprintf(w, "ID:      %d\n", book.ID)
		fmt.Fprintf(w, "Title:   %s\n", book.Title)
		fmt.Fprintf(w, "Color:   %s\n", book.Color)
		fmt.Fprintf(w, "Authors: %s\n", authorNames(book.Authors, c))
	})
}

// --- related subcommand ---

var relatedCmd = &cobra.Command{
	Use:   "related <id>",
	Short: "List titles by any author of the given book",
	Long: `Related lists the titles of every book written by any of the authors of
the given book, including the book itself. Titles are listed once, in author
then bibliography order.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func runRelated(cmd *cobra.Command, args []string) error {
	id, err := parseBookID(args[0])
	if err != nil {
		return err
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	titles, err := catalog.RelatedBookTitles(id, c.Authors, c.Books)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), titles, func(w io.Writer) { printList(w, titles) })
}

func parseBookID(s string) (types.BookID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q: %w", s, err)
	}
	return types.BookID(n), nil
}

func init() {
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(relatedCmd)
}
