package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-query/pkg/types"
)

func TestTitlesForAuthor(t *testing.T) {
	authors, books := sampleAuthors(), sampleBooks()

	tests := []struct {
		name   string
		author string
		want   []string
	}{
		{"single author", "George R.R. Martin", []string{"A Game of Thrones", "A Clash of Kings"}},
		{"case insensitive", "lauren beukes", []string{"The Shining Girls", "Zoo City"}},
		{"co-authored book included", "John Lloyd", []string{"The Meaning of Liff"}},
		{"unknown author", "Unknown Author", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitlesForAuthor(tt.author, authors, books))
		})
	}
}

func TestTitlesForAuthorFollowsBookOrder(t *testing.T) {
	books := []types.Book{
		{ID: 1, Title: "One"},
		{ID: 2, Title: "Two"},
		{ID: 3, Title: "Three"},
	}
	authors := []types.Author{{ID: 1, Name: "A", Books: []types.BookID{3, 1}}}

	assert.Equal(t, []string{"One", "Three"}, TitlesForAuthor("A", authors, books))
}

func TestRelatedBookTitles(t *testing.T) {
	authors, books := sampleAuthors(), sampleBooks()

	tests := []struct {
		name string
		id   types.BookID
		want []string
	}{
		{
			"sole author",
			37,
			[]string{"The Shining Girls", "Zoo City"},
		},
		{
			"two authors",
			46,
			[]string{
				"Good Omens", "Neverwhere", "Coraline",
				"The Color of Magic", "The Hogfather", "Wee Free Men",
				"The Long Earth", "The Long War", "The Long Mars",
			},
		},
		{
			"co-authored non-first title",
			52,
			[]string{
				"Good Omens", "The Color of Magic", "The Hogfather", "Wee Free Men",
				"The Long Earth", "The Long War", "The Long Mars",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelatedBookTitles(tt.id, authors, books)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelatedBookTitlesProperties(t *testing.T) {
	authors, books := sampleAuthors(), sampleBooks()

	for _, b := range books {
		got, err := RelatedBookTitles(b.ID, authors, books)
		require.NoError(t, err)
		assert.Contains(t, got, b.Title, "book %d", b.ID)

		seen := make(map[string]bool)
		for _, title := range got {
			assert.False(t, seen[title], "duplicate title %q for book %d", title, b.ID)
			seen[title] = true
		}
	}
}

func TestRelatedBookTitlesAnyNumberOfAuthors(t *testing.T) {
	books := []types.Book{
		{ID: 1, Title: "Anthology", Authors: []types.AuthorID{1, 2, 3}},
		{ID: 2, Title: "Solo A"},
		{ID: 3, Title: "Solo B"},
		{ID: 4, Title: "Solo C"},
		{ID: 5, Title: "Unrelated"},
	}
	authors := []types.Author{
		{ID: 1, Name: "A", Books: []types.BookID{1, 2}},
		{ID: 2, Name: "B", Books: []types.BookID{1, 3}},
		{ID: 3, Name: "C", Books: []types.BookID{4, 1}},
		{ID: 4, Name: "D", Books: []types.BookID{5}},
	}

	got, err := RelatedBookTitles(1, authors, books)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anthology", "Solo A", "Solo B", "Solo C"}, got)
}

func TestRelatedBookTitlesDuplicateTitles(t *testing.T) {
	books := []types.Book{
		{ID: 1, Title: "Collected Stories", Authors: []types.AuthorID{1}},
		{ID: 2, Title: "Collected Stories", Authors: []types.AuthorID{1}},
		{ID: 3, Title: "Novel", Authors: []types.AuthorID{1}},
	}
	authors := []types.Author{{ID: 1, Name: "A", Books: []types.BookID{1, 2, 3}}}

	got, err := RelatedBookTitles(2, authors, books)
	require.NoError(t, err)
	assert.Equal(t, []string{"Collected Stories", "Novel"}, got)
}

func TestRelatedBookTitlesBookMissingFromBibliography(t *testing.T) {
	books := []types.Book{
		{ID: 1, Title: "Orphan", Authors: []types.AuthorID{1}},
		{ID: 2, Title: "Listed", Authors: []types.AuthorID{1}},
	}
	authors := []types.Author{{ID: 1, Name: "A", Books: []types.BookID{2}}}

	got, err := RelatedBookTitles(1, authors, books)
	require.NoError(t, err)
	assert.Equal(t, []string{"Orphan", "Listed"}, got)
}

func TestRelatedBookTitlesInvalidReference(t *testing.T) {
	authors, books := sampleAuthors(), sampleBooks()

	_, err := RelatedBookTitles(9999, authors, books)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.ErrorIs(t, err, ErrNotFound)

	dangling := []types.Author{{ID: 5, Name: "Lauren Beukes", Books: []types.BookID{37, 404}}}
	_, err = RelatedBookTitles(37, dangling, books)
	require.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "Lauren Beukes")
}
