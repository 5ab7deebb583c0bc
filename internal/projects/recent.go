package projects

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"unicode/utf8"

	"go.uber.org/zap"

	"zed-recent/internal/apperr"
	"zed-recent/internal/model"
	"zed-recent/internal/pathutil"
	"zed-recent/internal/store"
)

// Recent lists workspaces from the editor's history, most recent first,
// filtered by query.
func (l *Lister) Recent(ctx context.Context, query string) ([]model.Item, error) {
	path := l.cfg.HistoryDB
	if path == "" {
		p, err := store.HistoryDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	l.log.Debug("opening history", zap.String("path", path))

	h, err := store.OpenHistory(ctx, path)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	items, err := collect(workspaceItems(h.Workspaces(ctx)), l.log)
	if err != nil {
		return nil, err
	}
	l.log.Debug("recent workspaces", zap.Int("count", len(items)), zap.String("query", query))
	return Filter(items, query), nil
}

func workspaceItems(rows iter.Seq2[store.Workspace, error]) iter.Seq2[model.Item, error] {
	return func(yield func(model.Item, error) bool) {
		for ws, err := range rows {
			if err != nil {
				if !yield(model.Item{}, err) {
					return
				}
				continue
			}
			if !yield(workspaceItem(ws)) {
				return
			}
		}
	}
}

func workspaceItem(ws store.Workspace) (model.Item, error) {
	title, path := pathutil.WorkspacePath(ws.LocalPaths)
	if !utf8.ValidString(path) {
		return model.Item{}, apperr.E(apperr.RowDecode, "decode workspace", fmt.Errorf("workspace %d: path is not valid UTF-8", ws.ID))
	}
	return model.NewPathItem(strconv.FormatInt(ws.ID, 10), title, path), nil
}
