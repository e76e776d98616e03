// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-query/internal/catalog"
	"github.com/pdiddy/catalog-query/internal/source"
	"github.com/pdiddy/catalog-query/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every catalog query once against sample arguments",
	Long: `Demo runs each catalog query in turn and prints the results: a book by
id, an author by name, book counts per author, titles by color, an author's
titles, the most prolific author, related books, and the friendliest author.
Flags select the sample arguments.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

type demoArgs struct {
	bookID      types.BookID
	authorName  string
	titlesName  string
	relatedBook types.BookID
}

func runDemo(cmd *cobra.Command, args []string) error {
	bookID, _ := cmd.Flags().GetInt("book")
	author, _ := cmd.Flags().GetString("author")
	titlesOf, _ := cmd.Flags().GetString("titles-of")
	related, _ := cmd.Flags().GetInt("related")

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	return writeDemo(cmd.OutOrStdout(), c, demoArgs{
		bookID:      types.BookID(bookID),
		authorName:  author,
		titlesName:  titlesOf,
		relatedBook: types.BookID(related),
	})
}

func writeDemo(w io.Writer, c source.Catalog, a demoArgs) error {
	section := func(title string) { fmt.Fprintf(w, "\n== %s\n", title) }

	section(fmt.Sprintf("Book %d", a.bookID))
	if b, ok := catalog.FindBookByID(a.bookID, c.Books); ok {
		fmt.Fprintf(w, "%s (%s) by %s\n", b.Title, b.Color, authorNames(b.Authors, c))
	} else {
		fmt.Fprintln(w, "not found")
	}

	section(fmt.Sprintf("Author %q", a.authorName))
	if au, ok := catalog.FindAuthorByName(a.authorName, c.Authors); ok {
		fmt.Fprintf(w, "%s (id %d, %d books)\n", au.Name, au.ID, len(au.Books))
	} else {
		fmt.Fprintln(w, "not found")
	}

	section("Books per author")
	for _, ac := range catalog.CountBooksPerAuthor(c.Authors) {
		fmt.Fprintf(w, "%-30s  %5d\n", truncate(ac.Author, 30), ac.BookCount)
	}

	section("Titles by color")
	for _, grp := range catalog.GroupTitlesByColor(c.Books) {
		fmt.Fprintf(w, "%s: %v\n", grp.Color, grp.Titles)
	}

	section(fmt.Sprintf("Titles by %q", a.titlesName))
	printList(w, catalog.TitlesForAuthor(a.titlesName, c.Authors, c.Books))

	section("Most prolific author")
	name, err := catalog.MostProlificAuthor(c.Authors)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, name)

	section(fmt.Sprintf("Related to book %d", a.relatedBook))
	titles, err := catalog.RelatedBookTitles(a.relatedBook, c.Authors, c.Books)
	if err != nil {
		return err
	}
	printList(w, titles)

	section("Friendliest author")
	name, err = catalog.MostCollaborativeAuthor(c.Authors)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, name)
	return nil
}

func init() {
	demoCmd.Flags().Int("book", 12, "book id to look up")
	demoCmd.Flags().String("author", "J.K. Rowling", "author name to look up")
	demoCmd.Flags().String("titles-of", "George R.R. Martin", "author whose titles are listed")
	demoCmd.Flags().Int("related", 50, "book id whose related titles are listed")

	rootCmd.AddCommand(demoCmd)
}
