// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-query/internal/catalog"
)

// --- counts subcommand ---

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Count books per author",
	Args:  cobra.NoArgs,
	RunE:  runCounts,
}

func runCounts(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	counts := catalog.CountBooksPerAuthor(c.Authors)
	return render(cmd.OutOrStdout(), counts, func(w io.Writer) {
		fmt.Fprintf(w, "%-30s  %s\n", "Author", "Books")
		fmt.Fprintln(w, strings.Repeat("-", 37))
		for _, ac := range counts {
			fmt.Fprintf(w, "%-30s  %5d\n", truncate(ac.Author, 30), ac.BookCount)
		}
	})
}

// --- colors subcommand ---

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Group book titles by color",
	Args:  cobra.NoArgs,
	RunE:  runColors,
}

func runColors(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	groups := catalog.GroupTitlesByColor(c.Books)
	return render(cmd.OutOrStdout(), groups, func(w io.Writer) {
		for _, grp := range groups {
			fmt.Fprintf(w, "%s (%d)\n", grp.Color, len(grp.Titles))
			for _, title := range grp.Titles {
				fmt.Fprintf(w, "  - %s\n", title)
			}
		}
	})
}

// --- prolific subcommand ---

var prolificCmd = &cobra.Command{
	Use:   "prolific",
	Short: "Show the author with the most books",
	Long: `Prolific prints the name of the author with the most books. When several
authors share the highest count, the one listed first in the catalog wins.`,
	Args: cobra.NoArgs,
	RunE: runProlific,
}

func runProlific(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	name, err := catalog.MostProlificAuthor(c.Authors)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), name, func(w io.Writer) { fmt.Fprintln(w, name) })
}

// --- friendliest subcommand ---

var friendliestCmd = &cobra.Command{
	Use:   "friendliest",
	Short: "Show the author who shares the most books with other authors",
	Long: `Friendliest sums, for each author, the number of books they share with
every other author and prints the author with the highest total. Ties go to
the author listed first. Use --scores to print every author's total.`,
	Args: cobra.NoArgs,
	RunE: runFriendliest,
}

func runFriendliest(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scores, _ := cmd.Flags().GetBool("scores"); scores {
		all := catalog.CoauthorshipScores(c.Authors)
		return render(out, all, func(w io.Writer) {
			fmt.Fprintf(w, "%-30s  %s\n", "Author", "Shared")
			fmt.Fprintln(w, strings.Repeat("-", 38))
			for _, s := range all {
				fmt.Fprintf(w, "%-30s  %6d\n", truncate(s.Author, 30), s.Shared)
			}
		})
	}

	name, err := catalog.MostCollaborativeAuthor(c.Authors)
	if err != nil {
		return err
	}
	return render(out, name, func(w io.Writer) { fmt.Fprintln(w, name) })
}

func init() {
	friendliestCmd.Flags().Bool("scores", false, "print the shared-book total for every author")

	rootCmd.AddCommand(countsCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(prolificCmd)
	rootCmd.AddCommand(friendliestCmd)
}
