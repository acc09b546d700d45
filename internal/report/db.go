package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS runs (
    file_path      TEXT PRIMARY KEY,
    parsed_at      TEXT NOT NULL DEFAULT '',
    users          INTEGER NOT NULL DEFAULT 0,
    unknown_tokens INTEGER NOT NULL DEFAULT 0,
    mtime          INTEGER NOT NULL DEFAULT 0,
    size           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS records (
    file_path  TEXT NOT NULL,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    contacts   TEXT NOT NULL DEFAULT '',
    teams      TEXT NOT NULL DEFAULT '',
    comments   TEXT NOT NULL DEFAULT '',
    unresolved TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (file_path, position)
);

CREATE TABLE IF NOT EXISTS unknown_tokens (
    file_path TEXT NOT NULL,
    token     TEXT NOT NULL,
    count     INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (file_path, token)
);

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

// schemaVersion should be bumped whenever parsing or resolution output shape
// changes, to force a full re-parse of known exports.
const schemaVersion = "1"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	d.migrateSchemaVersion()
	return d, nil
}

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		// force re-parse by resetting run mtime/size
		d.db.Exec("UPDATE runs SET mtime = 0, size = 0")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

type RunInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetRunInfo(filePath string) (*RunInfo, error) {
	var info RunInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM runs WHERE file_path = ?",
		filePath,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *DB) DeleteRun(filePath string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"records", "unknown_tokens", "runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE file_path = ?", filePath); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveRun replaces the stored result for one export file.
func (d *DB) SaveRun(filePath string, mtime, size int64, res *Result) error {
	if err := d.DeleteRun(filePath); err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	unknownTotal := 0
	for _, u := range res.Unknowns {
		unknownTotal += u.Count
	}

	_, err = tx.Exec(
		`INSERT INTO runs (file_path, parsed_at, users, unknown_tokens, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		filePath,
		time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		len(res.Records),
		unknownTotal,
		mtime,
		size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO records (file_path, position, name, contacts, teams, comments, unresolved)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range res.Records {
		_, err := stmt.Exec(
			filePath, i, rec.Name,
			Join(rec.Contacts), Join(rec.Teams), Join(rec.Comments), Join(rec.Unresolved),
		)
		if err != nil {
			return err
		}
	}

	for _, u := range res.Unknowns {
		if _, err := tx.Exec(
			"INSERT INTO unknown_tokens (file_path, token, count) VALUES (?, ?, ?)",
			filePath, u.Token, u.Count,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecordRow is a stored output row, cells already joined.
type RecordRow struct {
	Name       string
	Contacts   string
	Teams      string
	Comments   string
	Unresolved string
}

// GetRecords returns the stored rows for one export in original order.
func (d *DB) GetRecords(filePath string) ([]RecordRow, error) {
	rows, err := d.db.Query(
		"SELECT name, contacts, teams, comments, unresolved FROM records WHERE file_path = ? ORDER BY position",
		filePath,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var r RecordRow
		if err := rows.Scan(&r.Name, &r.Contacts, &r.Teams, &r.Comments, &r.Unresolved); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRun returns the most recently parsed export path, or "" if none.
func (d *DB) LatestRun() (string, error) {
	var p string
	err := d.db.QueryRow("SELECT file_path FROM runs ORDER BY parsed_at DESC LIMIT 1").Scan(&p)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return p, err
}

// AggregateUnknowns merges the unknown-token worklist across all stored runs,
// most frequent first.
func (d *DB) AggregateUnknowns() ([]UnknownCount, error) {
	rows, err := d.db.Query(
		`SELECT token, SUM(count) AS total FROM unknown_tokens
		 GROUP BY token ORDER BY total DESC, token`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UnknownCount
	for rows.Next() {
		var u UnknownCount
		if err := rows.Scan(&u.Token, &u.Count); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ClearUnknownTokens drops tokens from the worklist after a correction has
// been learned for them, and resets the mtime/size of every run that carried
// one, so the next parse of those exports re-resolves instead of serving the
// stale pre-correction records.
func (d *DB) ClearUnknownTokens(tokens []string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tok := range tokens {
		if _, err := tx.Exec(
			`UPDATE runs SET mtime = 0, size = 0
			 WHERE file_path IN (SELECT file_path FROM unknown_tokens WHERE token = ?)`,
			tok,
		); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM unknown_tokens WHERE token = ?", tok); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) RunCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}

func (d *DB) RecordCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	return n, err
}
