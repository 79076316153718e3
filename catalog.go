package linkshuffle

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alttpx/linkshuffle/zspr"
)

// Catalog is a local sqlite database of ZSPR sprites, deduplicated by
// content hash. It supplies the auxiliary sprites for multi-source
// shuffle modes.
type Catalog struct {
	db *sql.DB
}

func OpenCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, name TEXT NOT NULL, author TEXT NOT NULL, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add stores a validated ZSPR file. Files already present are ignored.
func (c *Catalog) Add(f *zspr.File, data []byte) error {
	_, err := c.db.Exec("INSERT OR IGNORE INTO sprite (sha1, name, author, data) VALUES (?, ?, ?, ?)",
		fmt.Sprintf("%x", sha1.Sum(data)), f.Name, f.Author, data)
	return err
}

// Count returns the number of sprites in the catalog.
func (c *Catalog) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM sprite").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Random returns up to n sprites drawn at random from the catalog.
func (c *Catalog) Random(n int) ([][]byte, error) {
	rows, err := c.db.Query("SELECT data FROM sprite ORDER BY RANDOM() LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sprites [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		sprites = append(sprites, data)
	}

	return sprites, rows.Err()
}
