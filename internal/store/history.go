package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"os"

	"zed-recent/internal/apperr"

	_ "modernc.org/sqlite"
)

// Workspace is one row of the editor's workspace history.
type Workspace struct {
	ID         int64
	LocalPaths string
}

// History is a read-only handle on the editor's history database.
type History struct {
	db   *sql.DB
	path string
}

const recentWorkspacesQuery = `SELECT workspace_id, local_paths
	FROM workspaces
	WHERE local_paths IS NOT NULL
	ORDER BY timestamp DESC`

// OpenHistory opens the database at path read-only. The schema is owned by
// the editor; nothing here ever writes to it.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	const op = "open history"

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.E(apperr.StorageUnavailable, op, err)
	}
	if info.IsDir() {
		return nil, apperr.E(apperr.StorageUnavailable, op, fmt.Errorf("%s is a directory", path))
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, apperr.E(apperr.StorageUnavailable, op, err)
	}
	db.SetMaxOpenConns(1)

	// Ping alone does not read the file header; touching the schema makes a
	// non-database file fail here instead of mid-query.
	var version int64
	if err := db.QueryRowContext(ctx, `PRAGMA schema_version`).Scan(&version); err != nil {
		_ = db.Close()
		return nil, apperr.E(apperr.StorageUnavailable, op, fmt.Errorf("%s: %w", path, err))
	}
	return &History{db: db, path: path}, nil
}

func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

// Workspaces yields history rows, most recent first.
//
// A failing query is yielded once as StorageUnavailable and ends the
// sequence. A malformed row is yielded as RowDecode and iteration continues.
// The underlying rows are closed however the caller stops iterating.
func (h *History) Workspaces(ctx context.Context) iter.Seq2[Workspace, error] {
	return func(yield func(Workspace, error) bool) {
		rows, err := h.db.QueryContext(ctx, recentWorkspacesQuery)
		if err != nil {
			yield(Workspace{}, apperr.E(apperr.StorageUnavailable, "query workspaces", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			ws, err := scanWorkspace(rows)
			if !yield(ws, err) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Workspace{}, apperr.E(apperr.RowDecode, "read workspaces", err))
		}
	}
}

func scanWorkspace(rows *sql.Rows) (Workspace, error) {
	const op = "decode workspace"

	var id sql.NullInt64
	var raw any
	if err := rows.Scan(&id, &raw); err != nil {
		return Workspace{}, apperr.E(apperr.RowDecode, op, err)
	}
	if !id.Valid {
		return Workspace{}, apperr.E(apperr.RowDecode, op, errors.New("workspace_id is null"))
	}

	ws := Workspace{ID: id.Int64}
	switch v := raw.(type) {
	case string:
		ws.LocalPaths = v
	case []byte:
		ws.LocalPaths = string(v)
	default:
		return Workspace{}, apperr.E(apperr.RowDecode, op, fmt.Errorf("workspace %d: local_paths has type %T", id.Int64, raw))
	}
	return ws, nil
}
