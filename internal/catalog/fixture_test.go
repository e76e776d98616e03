package catalog

import "github.com/pdiddy/catalog-query/pkg/types"

// --- test fixtures ---

func sampleBooks() []types.Book {
	return []types.Book{
		{ID: 1, Title: "The Hitchhikers Guide", Color: "blue", Authors: []types.AuthorID{1}},
		{ID: 2, Title: "The Meaning of Liff", Color: "green", Authors: []types.AuthorID{1, 2}},
		{ID: 10, Title: "Harry Potter and the Philosopher's Stone", Color: "red", Authors: []types.AuthorID{3}},
		{ID: 11, Title: "Harry Potter and the Chamber of Secrets", Color: "red", Authors: []types.AuthorID{3}},
		{ID: 12, Title: "Harry Potter and the Prisoner of Azkaban", Color: "blue", Authors: []types.AuthorID{3}},
		{ID: 13, Title: "Harry Potter and the Goblet of Fire", Color: "red", Authors: []types.AuthorID{3}},
		{ID: 14, Title: "Harry Potter and the Order of the Phoenix", Color: "orange", Authors: []types.AuthorID{3}},
		{ID: 15, Title: "Harry Potter and the Half-Blood Prince", Color: "green", Authors: []types.AuthorID{3}},
		{ID: 16, Title: "Harry Potter and the Deathly Hallows", Color: "black", Authors: []types.AuthorID{3}},
		{ID: 17, Title: "The Casual Vacancy", Color: "yellow", Authors: []types.AuthorID{3}},
		{ID: 20, Title: "A Game of Thrones", Color: "black", Authors: []types.AuthorID{4}},
		{ID: 21, Title: "A Clash of Kings", Color: "orange", Authors: []types.AuthorID{4}},
		{ID: 37, Title: "The Shining Girls", Color: "black", Authors: []types.AuthorID{5}},
		{ID: 38, Title: "Zoo City", Color: "white", Authors: []types.AuthorID{5}},
		{ID: 46, Title: "Good Omens", Color: "white", Authors: []types.AuthorID{7, 6}},
		{ID: 47, Title: "Neverwhere", Color: "black", Authors: []types.AuthorID{6}},
		{ID: 48, Title: "Coraline", Color: "yellow", Authors: []types.AuthorID{6}},
		{ID: 49, Title: "The Color of Magic", Color: "orange", Authors: []types.AuthorID{7}},
		{ID: 50, Title: "The Hogfather", Color: "red", Authors: []types.AuthorID{7}},
		{ID: 51, Title: "Wee Free Men", Color: "green", Authors: []types.AuthorID{7}},
		{ID: 52, Title: "The Long Earth", Color: "blue", Authors: []types.AuthorID{7, 8}},
		{ID: 53, Title: "The Long War", Color: "blue", Authors: []types.AuthorID{7, 8}},
		{ID: 54, Title: "The Long Mars", Color: "red", Authors: []types.AuthorID{7, 8}},
	}
}

func sampleAuthors() []types.Author {
	return []types.Author{
		{ID: 1, Name: "Douglas Adams", Books: []types.BookID{1, 2}},
		{ID: 2, Name: "John Lloyd", Books: []types.BookID{2}},
		{ID: 3, Name: "J.K. Rowling", Books: []types.BookID{10, 11, 12, 13, 14, 15, 16, 17}},
		{ID: 4, Name: "George R.R. Martin", Books: []types.BookID{20, 21}},
		{ID: 5, Name: "Lauren Beukes", Books: []types.BookID{37, 38}},
		{ID: 6, Name: "Neil Gaiman", Books: []types.BookID{46, 47, 48}},
		{ID: 7, Name: "Terry Pratchett", Books: []types.BookID{46, 49, 50, 51, 52, 53, 54}},
		{ID: 8, Name: "Stephen Baxter", Books: []types.BookID{52, 53, 54}},
	}
}
