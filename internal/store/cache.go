// Package store provides a SQLite-backed cache for pool catalogs and
// saved filter presets.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/givepool/givepool/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed catalog caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveCatalog replaces the cached pools of one catalog file and records its
// mtime and size.
func (c *Cache) SaveCatalog(filePath string, pools []model.Pool, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT INTO file_tracker (file_path, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			mtime_ns = excluded.mtime_ns,
			size_bytes = excluded.size_bytes,
			parsed_at = excluded.parsed_at`,
		filePath, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	// Drop the previous snapshot of this file
	if _, err := tx.Exec("DELETE FROM pools WHERE file_path = ?", filePath); err != nil {
		return err
	}

	for i, p := range pools {
		_, err = tx.Exec(`INSERT INTO pools
			(file_path, position, pool_id, title, description, category, status, target, raised, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			filePath, i, p.ID, p.Title, p.Description, string(p.Category), string(p.Status),
			p.Target, p.Raised, p.Color,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCatalog reads the cached pools of one file in their original order.
func (c *Cache) LoadCatalog(filePath string) ([]model.Pool, error) {
	rows, err := c.db.Query(`SELECT
		pool_id, title, description, category, status, target, raised, color
		FROM pools WHERE file_path = ? ORDER BY position`, filePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var pools []model.Pool
	for rows.Next() {
		var p model.Pool
		var category, status string
		var color sql.NullString

		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &category, &status,
			&p.Target, &p.Raised, &color); err != nil {
			return nil, err
		}
		p.Category = model.Category(category)
		p.Status = model.Status(status)
		if color.Valid {
			p.Color = color.String
		}
		pools = append(pools, p)
	}
	return pools, rows.Err()
}

// DeleteCatalog removes a file and its cached pools.
func (c *Cache) DeleteCatalog(filePath string) error {
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}

// PoolCount returns the number of cached pools across all files.
func (c *Cache) PoolCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM pools").Scan(&count)
	return count, err
}
