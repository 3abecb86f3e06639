package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"notedock/internal/domain"
	"notedock/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.DocumentIndex using SQLite
type Index struct {
	db     *sql.DB
	root   string
	dbPath string
}

// Ensure Index implements DocumentIndex
var _ ports.DocumentIndex = (*Index)(nil)

// NewIndex creates a new SQLite index. An empty dbPath selects a database
// under the XDG data directory derived from the site root.
func NewIndex(dbPath string) *Index {
	return &Index{dbPath: dbPath}
}

// Open initializes the index for the given site root
func (idx *Index) Open(root string) error {
	// Expand ~ in path
	if len(root) > 0 && root[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		root = filepath.Join(home, root[1:])
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve site root: %w", err)
	}
	idx.root = abs
	if idx.dbPath == "" {
		idx.dbPath = databasePath(abs)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_documents_mtime ON documents(mtime DESC);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index was built by another schema
// or for another site root
func (idx *Index) NeedsFullRebuild() bool {
	var version, rootHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'root_hash'").Scan(&rootHash)

	return version != schemaVersion || rootHash != hashRoot(idx.root)
}

// Touch records the modification time of a single document
func (idx *Index) Touch(stat domain.DocumentStat) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO documents (path, mtime) VALUES (?, ?)
	`, stat.RelPath, stat.Mtime.UnixNano())
	return err
}

// Forget removes a document, or every document below a directory
func (idx *Index) Forget(relPrefix string) error {
	_, err := idx.db.Exec(`
		DELETE FROM documents WHERE path = ? OR path LIKE ? ESCAPE '\'
	`, relPrefix, escapeLike(relPrefix)+"/%")
	return err
}

// Recent returns the limit most recently modified documents
func (idx *Index) Recent(limit int) ([]domain.DocumentStat, error) {
	rows, err := idx.db.Query(`
		SELECT path, mtime FROM documents ORDER BY mtime DESC, path ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DocumentStat
	for rows.Next() {
		var st domain.DocumentStat
		var mtime int64
		if err := rows.Scan(&st.RelPath, &mtime); err != nil {
			return nil, err
		}
		st.Mtime = time.Unix(0, mtime)
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

// databasePath returns the default path for the SQLite database
func databasePath(root string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "notedock", hashRoot(root)+".db")
}

// hashRoot returns a short hash of the site root
func hashRoot(root string) string {
	h := sha256.Sum256([]byte(root))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta records the schema version, root hash and sync time
func (idx *Index) updateMeta(syncedAt time.Time) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('root_hash', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?);
	`, schemaVersion, hashRoot(idx.root), syncedAt.UnixNano())
	return err
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
