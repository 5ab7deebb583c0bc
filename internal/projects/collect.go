package projects

import (
	"iter"

	"go.uber.org/zap"

	"zed-recent/internal/apperr"
)

// collect drains seq, keeping successes. Per-record failures (row decode,
// entry read) are dropped; any other error stops iteration and is returned,
// which also lets the producer release what it holds.
func collect[T any](seq iter.Seq2[T, error], log *zap.Logger) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			if apperr.Recoverable(err) {
				log.Debug("skipping record", zap.Stringer("kind", apperr.KindOf(err)), zap.Error(err))
				continue
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
