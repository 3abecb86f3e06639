package sqlite

import (
	"database/sql"

	"notedock/internal/domain"
)

// indexTx batches document updates of a sync into one transaction
type indexTx struct {
	tx *sql.Tx
}

func (idx *Index) begin() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// upsert inserts or updates a document
func (t *indexTx) upsert(stat domain.DocumentStat) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO documents (path, mtime) VALUES (?, ?)
	`, stat.RelPath, stat.Mtime.UnixNano())
	return err
}

// delete removes a document by path
func (t *indexTx) delete(path string) error {
	_, err := t.tx.Exec(`DELETE FROM documents WHERE path = ?`, path)
	return err
}

// clear removes every document
func (t *indexTx) clear() error {
	_, err := t.tx.Exec(`DELETE FROM documents`)
	return err
}

func (t *indexTx) commit() error {
	return t.tx.Commit()
}

func (t *indexTx) rollback() error {
	return t.tx.Rollback()
}
