// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"strings"

	"github.com/pdiddy/catalog-query/pkg/types"
)

// FindBookByID returns the first book whose ID equals id.
func FindBookByID(id types.BookID, books []types.Book) (types.Book, bool) {
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	return types.Book{}, false
}

// FindAuthorByName returns the first author whose name matches name,
// ignoring case.
func FindAuthorByName(name string, authors []types.Author) (types.Author, bool) {
	for _, a := range authors {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return types.Author{}, false
}

// ResolveBook turns a book reference into the book it names. An id with no
// match yields an error wrapping both ErrInvalidReference and ErrNotFound.
func ResolveBook(id types.BookID, books []types.Book) (types.Book, error) {
	b, ok := FindBookByID(id, books)
	if !ok {
		return types.Book{}, fmt.Errorf("book %d: %w: %w", id, ErrInvalidReference, ErrNotFound)
	}
	return b, nil
}
