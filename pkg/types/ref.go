// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v3"
)

// authorRef is the object form of a book's author entry, as written by
// fixtures that embed {"id": 3, "name": "..."} instead of a bare id.
type authorRef struct {
	ID *int `json:"id" yaml:"id"`
}

// UnmarshalJSON accepts either a bare integer or an object with an id field.
func (a *AuthorID) UnmarshalJSON(data []byte) error {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	if jsoniter.Get(data).ValueType() == jsoniter.ObjectValue {
		var ref authorRef
		if err := api.Unmarshal(data, &ref); err != nil {
			return err
		}
		if ref.ID == nil {
			return fmt.Errorf("author reference %s has no id", data)
		}
		*a = AuthorID(*ref.ID)
		return nil
	}

	var id int
	if err := api.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("author reference %s: %w", data, err)
	}
	*a = AuthorID(id)
	return nil
}

// UnmarshalYAML accepts either a bare integer or a mapping with an id key.
func (a *AuthorID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		var ref authorRef
		if err := value.Decode(&ref); err != nil {
			return err
		}
		if ref.ID == nil {
			return fmt.Errorf("line %d: author reference has no id", value.Line)
		}
		*a = AuthorID(*ref.ID)
		return nil
	}

	var id int
	if err := value.Decode(&id); err != nil {
		return err
	}
	*a = AuthorID(id)
	return nil
}
