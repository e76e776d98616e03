// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/catalog-query/pkg/types"

// CountBooksPerAuthor returns one entry per author, in input order, holding
// the author's name and the length of their bibliography. Authors sharing a
// name are not merged.
func CountBooksPerAuthor(authors []types.Author) []types.AuthorBookCount {
	counts := make([]types.AuthorBookCount, len(authors))
	for i, a := range authors {
		counts[i] = types.AuthorBookCount{Author: a.Name, BookCount: len(a.Books)}
	}
	return counts
}

// GroupTitlesByColor partitions book titles by color. Colors and the titles
// within each color keep the order they were first encountered.
func GroupTitlesByColor(books []types.Book) types.ColorGroups {
	groups := types.ColorGroups{}
	index := make(map[string]int)
	for _, b := range books {
		i, ok := index[b.Color]
		if !ok {
			i = len(groups)
			index[b.Color] = i
			groups = append(groups, types.ColorGroup{Color: b.Color})
		}
		groups[i].Titles = append(groups[i].Titles, b.Title)
	}
	return groups
}

// MostProlificAuthor returns the name of the author with the longest
// bibliography. On a tie the author seen first wins. When no author has any
// books the first author is returned.
func MostProlificAuthor(authors []types.Author) (string, error) {
	if len(authors) == 0 {
		return "", ErrEmptyCatalog
	}

	best := 0
	for i, a := range authors {
		if len(a.Books) > len(authors[best].Books) {
			best = i
		}
	}
	return authors[best].Name, nil
}
