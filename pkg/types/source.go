// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceFormat selects how a catalog is read from disk.
type SourceFormat string

const (
	FormatAuto   SourceFormat = ""
	FormatJSON   SourceFormat = "json"
	FormatYAML   SourceFormat = "yaml"
	FormatSQLite SourceFormat = "sqlite"
)

// SourceConfig holds settings for loading a catalog.
type SourceConfig struct {
	// DataDir contains books.<ext> and authors.<ext> for file formats.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Format selects json, yaml, or sqlite. Empty infers from DataDir.
	Format SourceFormat `json:"format" yaml:"format"`

	// DBPath is the SQLite database file used by the sqlite format.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Validate enables the eager referential and back-reference check on load.
	Validate bool `json:"validate" yaml:"validate"`
}
