// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/catalog-query/pkg/types"

// CoauthorshipScores returns, for each author in input order, the number of
// book ids they share with every other author, summed over all pairs.
// Authors are distinguished by ID.
func CoauthorshipScores(authors []types.Author) []types.CoauthorScore {
	totals := sharedTotals(authors)
	scores := make([]types.CoauthorScore, len(authors))
	for i, a := range authors {
		scores[i] = types.CoauthorScore{Author: a.Name, Shared: totals[i]}
	}
	return scores
}

// MostCollaborativeAuthor returns the name of the author whose books are most
// often shared with other authors. On a tie the author seen first wins.
func MostCollaborativeAuthor(authors []types.Author) (string, error) {
	if len(authors) == 0 {
		return "", ErrEmptyCatalog
	}

	totals := sharedTotals(authors)
	best := 0
	for i := range authors {
		if totals[i] > totals[best] {
			best = i
		}
	}
	return authors[best].Name, nil
}

// sharedTotals is indexed like authors. Totals live in a local slice so the
// caller's records are left untouched.
func sharedTotals(authors []types.Author) []int {
	sets := make([]map[types.BookID]struct{}, len(authors))
	for i, a := range authors {
		set := make(map[types.BookID]struct{}, len(a.Books))
		for _, bid := range a.Books {
			set[bid] = struct{}{}
		}
		sets[i] = set
	}

	totals := make([]int, len(authors))
	for i, a := range authors {
		for j, b := range authors {
			if a.ID == b.ID {
				continue
			}
			totals[i] += intersection(sets[i], sets[j])
		}
	}
	return totals
}

func intersection(a, b map[types.BookID]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if _, ok := b[id]; ok {
			n++
		}
	}
	return n
}
