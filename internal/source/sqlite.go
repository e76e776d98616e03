// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/catalog-query/pkg/types"
)

// Link tables keep both sides of the many-to-many relation with their own
// ordering, since a book's author list and an author's bibliography are
// recorded independently.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		color TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS book_authors (
		book_id INTEGER NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		author_id INTEGER NOT NULL,
		PRIMARY KEY (book_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS author_books (
		author_id INTEGER NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		book_id INTEGER NOT NULL,
		PRIMARY KEY (author_id, seq)
	)`,
}

// Seed writes c into the SQLite database at dbPath, replacing any catalog
// already stored there. The write happens in a single transaction.
func Seed(ctx context.Context, dbPath string, c Catalog) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"book_authors", "author_books", "books", "authors"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, b := range c.Books {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO books (id, title, color, position) VALUES (?, ?, ?, ?)`,
			int(b.ID), b.Title, b.Color, i,
		); err != nil {
			return fmt.Errorf("inserting book %d: %w", b.ID, err)
		}
		for seq, aid := range b.Authors {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO book_authors (book_id, seq, author_id) VALUES (?, ?, ?)`,
				int(b.ID), seq, int(aid),
			); err != nil {
				return fmt.Errorf("linking book %d to author %d: %w", b.ID, aid, err)
			}
		}
	}

	for i, a := range c.Authors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO authors (id, name, position) VALUES (?, ?, ?)`,
			int(a.ID), a.Name, i,
		); err != nil {
			return fmt.Errorf("inserting author %d: %w", a.ID, err)
		}
		for seq, bid := range a.Books {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO author_books (author_id, seq, book_id) VALUES (?, ?, ?)`,
				int(a.ID), seq, int(bid),
			); err != nil {
				return fmt.Errorf("linking author %d to book %d: %w", a.ID, bid, err)
			}
		}
	}

	return tx.Commit()
}

// loadSQLite reads a catalog written by Seed. The database is opened
// read-only.
func loadSQLite(ctx context.Context, dbPath string, log *zap.SugaredLogger) (Catalog, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return Catalog{}, fmt.Errorf("opening database: %w", err)
	}

	log.Debugw("reading catalog database", "path", dbPath)
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return Catalog{}, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	books, err := queryBooks(ctx, db)
	if err != nil {
		return Catalog{}, err
	}
	authors, err := queryAuthors(ctx, db)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Books: books, Authors: authors}, nil
}

func queryBooks(ctx context.Context, db *sql.DB) ([]types.Book, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, color FROM books ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var (
		books []types.Book
		index = make(map[types.BookID]int)
	)
	for rows.Next() {
		var b types.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Color); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		index[b.ID] = len(books)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links, err := db.QueryContext(ctx, `SELECT book_id, author_id FROM book_authors ORDER BY book_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("querying book authors: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var (
			bid types.BookID
			aid types.AuthorID
		)
		if err := links.Scan(&bid, &aid); err != nil {
			return nil, fmt.Errorf("scanning book author: %w", err)
		}
		if i, ok := index[bid]; ok {
			books[i].Authors = append(books[i].Authors, aid)
		}
	}
	return books, links.Err()
}

func queryAuthors(ctx context.Context, db *sql.DB) ([]types.Author, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM authors ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}
	defer rows.Close()

	var (
		authors []types.Author
		index   = make(map[types.AuthorID]int)
	)
	for rows.Next() {
		var a types.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		index[a.ID] = len(authors)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links, err := db.QueryContext(ctx, `SELECT author_id, book_id FROM author_books ORDER BY author_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("querying author books: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var (
			aid types.AuthorID
			bid types.BookID
		)
		if err := links.Scan(&aid, &bid); err != nil {
			return nil, fmt.Errorf("scanning author book: %w", err)
		}
		if i, ok := index[aid]; ok {
			authors[i].Books = append(authors[i].Books, bid)
		}
	}
	return authors, links.Err()
}
