// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"slices"

	"github.com/pdiddy/catalog-query/pkg/types"
)

// TitlesForAuthor returns, in book-collection order, the titles of every
// book listed in the named author's bibliography. An unknown author yields
// an empty slice.
func TitlesForAuthor(name string, authors []types.Author, books []types.Book) []string {
	titles := []string{}

	author, ok := FindAuthorByName(name, authors)
	if !ok {
		return titles
	}

	for _, b := range books {
		if slices.Contains(author.Books, b.ID) {
			titles = append(titles, b.Title)
		}
	}
	return titles
}

// RelatedBookTitles returns the titles of every book written by any author
// of the book with the given id. Authors are visited in author-collection
// order and their books in bibliography order; repeated titles keep only
// their first occurrence. The queried book's own title is always present.
//
// An id that does not resolve, or a bibliography entry that names a missing
// book, yields an error wrapping ErrInvalidReference.
func RelatedBookTitles(id types.BookID, authors []types.Author, books []types.Book) ([]string, error) {
	target, err := ResolveBook(id, books)
	if err != nil {
		return nil, err
	}

	credited := make(map[types.AuthorID]struct{}, len(target.Authors))
	for _, aid := range target.Authors {
		credited[aid] = struct{}{}
	}

	var (
		titles []string
		seen   = make(map[string]struct{})
	)
	for _, a := range authors {
		if _, ok := credited[a.ID]; !ok {
			continue
		}
		for _, bid := range a.Books {
			b, err := ResolveBook(bid, books)
			if err != nil {
				return nil, fmt.Errorf("bibliography of %q: %w", a.Name, err)
			}
			if _, dup := seen[b.Title]; dup {
				continue
			}
			seen[b.Title] = struct{}{}
			titles = append(titles, b.Title)
		}
	}

	if _, ok := seen[target.Title]; !ok {
		titles = append([]string{target.Title}, titles...)
	}
	return titles, nil
}
