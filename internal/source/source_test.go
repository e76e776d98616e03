package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/catalog-query/internal/logging"
	"github.com/pdiddy/catalog-query/pkg/types"
)

// --- test helpers ---

func sampleCatalog() Catalog {
	return Catalog{
		Books: []types.Book{
			{ID: 37, Title: "The Shining Girls", Color: "black", Authors: []types.AuthorID{5}},
			{ID: 38, Title: "Zoo City", Color: "white", Authors: []types.AuthorID{5}},
			{ID: 46, Title: "Good Omens", Color: "white", Authors: []types.AuthorID{7, 6}},
			{ID: 47, Title: "Neverwhere", Color: "black", Authors: []types.AuthorID{6}},
			{ID: 50, Title: "The Hogfather", Color: "red", Authors: []types.AuthorID{7}},
		},
		Authors: []types.Author{
			{ID: 5, Name: "Lauren Beukes", Books: []types.BookID{37, 38}},
			{ID: 6, Name: "Neil Gaiman", Books: []types.BookID{46, 47}},
			{ID: 7, Name: "Terry Pratchett", Books: []types.BookID{46, 50}},
		},
	}
}

func writeRaw(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// --- load tests ---

func TestLoadTestdataJSON(t *testing.T) {
	cfg := types.SourceConfig{DataDir: "testdata", Validate: true}

	c, err := Load(context.Background(), cfg, logging.Test(t))
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), c)
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name   string
		write  types.SourceFormat
		format types.SourceFormat
	}{
		{"json explicit", types.FormatJSON, types.FormatJSON},
		{"json inferred", types.FormatJSON, types.FormatAuto},
		{"yaml explicit", types.FormatYAML, types.FormatYAML},
		{"yaml inferred", types.FormatYAML, types.FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, WriteFiles(dir, tt.write, sampleCatalog()))

			cfg := types.SourceConfig{DataDir: dir, Format: tt.format, Validate: true}
			c, err := Load(context.Background(), cfg, logging.Test(t))
			require.NoError(t, err)
			assert.Equal(t, sampleCatalog(), c)
		})
	}
}

func TestLoadLogsSummary(t *testing.T) {
	log, logs := logging.TestObserved(t, zapcore.InfoLevel)

	_, err := Load(context.Background(), types.SourceConfig{DataDir: "testdata"}, log)
	require.NoError(t, err)

	entries := logs.FilterMessage("loaded catalog").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "json", fields["format"])
	assert.Equal(t, int64(5), fields["books"])
	assert.Equal(t, int64(3), fields["authors"])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) types.SourceConfig
		errMsg string
	}{
		{
			name: "nothing to infer from",
			setup: func(t *testing.T) types.SourceConfig {
				return types.SourceConfig{DataDir: t.TempDir()}
			},
			errMsg: "no catalog found",
		},
		{
			name: "unsupported format",
			setup: func(t *testing.T) types.SourceConfig {
				return types.SourceConfig{DataDir: t.TempDir(), Format: "csv"}
			},
			errMsg: "unsupported format",
		},
		{
			name: "authors file missing",
			setup: func(t *testing.T) types.SourceConfig {
				dir := t.TempDir()
				writeRaw(t, dir, "books.json", "[]")
				return types.SourceConfig{DataDir: dir}
			},
			errMsg: "authors.json",
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) types.SourceConfig {
				dir := t.TempDir()
				writeRaw(t, dir, "books.yaml", "- id: [unterminated\n")
				writeRaw(t, dir, "authors.yaml", "[]\n")
				return types.SourceConfig{DataDir: dir}
			},
			errMsg: "parsing",
		},
		{
			name: "database missing",
			setup: func(t *testing.T) types.SourceConfig {
				return types.SourceConfig{DBPath: filepath.Join(t.TempDir(), "none.db")}
			},
			errMsg: "opening database",
		},
		{
			name: "inconsistent catalog rejected",
			setup: func(t *testing.T) types.SourceConfig {
				dir := t.TempDir()
				writeRaw(t, dir, "books.json", `[{"id":1,"title":"A","color":"red","authors":[9]}]`)
				writeRaw(t, dir, "authors.json", `[]`)
				return types.SourceConfig{DataDir: dir, Validate: true}
			},
			errMsg: "unknown author 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.setup(t), logging.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadSkipsValidationWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "books.json", `[{"id":1,"title":"A","color":"red","authors":[9]}]`)
	writeRaw(t, dir, "authors.json", `[]`)

	c, err := Load(context.Background(), types.SourceConfig{DataDir: dir}, logging.Nop())
	require.NoError(t, err)
	assert.Len(t, c.Books, 1)
}

func TestWriteFilesUnsupportedFormat(t *testing.T) {
	err := WriteFiles(t.TempDir(), types.FormatSQLite, sampleCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
