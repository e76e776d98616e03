// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v3"
)

// BookID identifies a Book within a catalog.
type BookID int

// AuthorID identifies an Author within a catalog.
type AuthorID int

// Book is a catalog entry. Authors holds back-references to Author.ID in
// attribution order; the book does not own them.
type Book struct {
	ID      BookID     `json:"id" yaml:"id"`
	Title   string     `json:"title" yaml:"title"`
	Color   string     `json:"color" yaml:"color"`
	Authors []AuthorID `json:"authors" yaml:"authors"`
}

// Author is a person credited on one or more books. Books holds
// back-references to Book.ID in bibliography order.
type Author struct {
	ID    AuthorID `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Books []BookID `json:"books" yaml:"books"`
}

// AuthorBookCount pairs an author name with the length of their bibliography.
type AuthorBookCount struct {
	Author    string `json:"author" yaml:"author"`
	BookCount int    `json:"bookCount" yaml:"bookCount"`
}

// CoauthorScore is the number of books an author shares with every other
// author in the catalog, summed over all pairs.
type CoauthorScore struct {
	Author string `json:"author" yaml:"author"`
	Shared int    `json:"shared" yaml:"shared"`
}

// ColorGroup holds the titles of every book with the same color label.
type ColorGroup struct {
	Color  string   `json:"color" yaml:"color"`
	Titles []string `json:"titles" yaml:"titles"`
}

// ColorGroups is an ordered color to titles mapping. Groups appear in the
// order their color was first seen. It encodes to JSON and YAML as a single
// object keyed by color, keeping that order.
type ColorGroups []ColorGroup

// Titles returns the titles grouped under color, or nil if no book has it.
func (g ColorGroups) Titles(color string) []string {
	for _, grp := range g {
		if grp.Color == color {
			return grp.Titles
		}
	}
	return nil
}

// Colors returns the color labels in first-seen order.
func (g ColorGroups) Colors() []string {
	colors := make([]string, len(g))
	for i, grp := range g {
		colors[i] = grp.Color
	}
	return colors
}

// Map returns the groups as a plain map. Ordering is lost.
func (g ColorGroups) Map() map[string][]string {
	m := make(map[string][]string, len(g))
	for _, grp := range g {
		m[grp.Color] = grp.Titles
	}
	return m
}

// MarshalJSON encodes the groups as {"<color>": ["<title>", ...], ...}.
func (g ColorGroups) MarshalJSON() ([]byte, error) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, grp := range g {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(grp.Color)
		titles := grp.Titles
		if titles == nil {
			titles = []string{}
		}
		stream.WriteVal(titles)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// MarshalYAML encodes the groups as an ordered YAML mapping.
func (g ColorGroups) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, grp := range g {
		var titles yaml.Node
		if err := titles.Encode(grp.Titles); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: grp.Color},
			&titles,
		)
	}
	return node, nil
}
