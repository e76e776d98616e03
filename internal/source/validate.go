// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/catalog-query/pkg/types"
)

// ValidationError lists every consistency problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog failed validation with %d problem(s): %s",
		len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validate checks that ids are unique, that every back-reference resolves
// in the companion collection, that every book has at least one author, and
// that book author lists and author bibliographies agree with each other.
// It returns a *ValidationError describing all problems, or nil.
func Validate(c Catalog) error {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	books := make(map[types.BookID]types.Book, len(c.Books))
	for _, b := range c.Books {
		if _, dup := books[b.ID]; dup {
			report("duplicate book id %d", b.ID)
			continue
		}
		books[b.ID] = b
	}

	authors := make(map[types.AuthorID]types.Author, len(c.Authors))
	for _, a := range c.Authors {
		if _, dup := authors[a.ID]; dup {
			report("duplicate author id %d", a.ID)
			continue
		}
		authors[a.ID] = a
	}

	for _, b := range c.Books {
		if len(b.Authors) == 0 {
			report("book %d %q has no authors", b.ID, b.Title)
		}
		for _, aid := range b.Authors {
			a, ok := authors[aid]
			if !ok {
				report("book %d references unknown author %d", b.ID, aid)
				continue
			}
			if !slices.Contains(a.Books, b.ID) {
				report("book %d lists author %d but author %d does not list book %d", b.ID, aid, aid, b.ID)
			}
		}
	}

	for _, a := range c.Authors {
		for _, bid := range a.Books {
			b, ok := books[bid]
			if !ok {
				report("author %d references unknown book %d", a.ID, bid)
				continue
			}
			if !slices.Contains(b.Authors, a.ID) {
				report("author %d lists book %d but book %d does not list author %d", a.ID, bid, bid, a.ID)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
