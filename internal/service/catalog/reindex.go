package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ReindexResult reports what a Reindex run did.
type ReindexResult struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

// Reindex walks every product in ID order, recomputes its search text and
// stores it when it differs from the stored one. Each batch is written in
// its own transaction. batchSize <= 0 uses the configured default.
func (s *Service) Reindex(ctx context.Context, batchSize int) (ReindexResult, error) {
	if err := requireAdmin(ctx); err != nil {
		return ReindexResult{}, err
	}
	if batchSize <= 0 {
		batchSize = s.cfg.ReindexBatchSize
	}

	var (
		res   ReindexResult
		after = uuid.Nil
	)
	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("reindex: %w", err)
		}

		batch, err := s.products.ListAfter(ctx, after, batchSize)
		if err != nil {
			return res, fmt.Errorf("list products after %s: %w", after, err)
		}
		if len(batch) == 0 {
			break
		}

		updated := 0
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, p := range batch {
				text := p.BuildSearchText()
				if text == p.SearchText {
					continue
				}
				if err := s.products.UpdateSearchText(txCtx, p.ID, text); err != nil {
					return fmt.Errorf("update search text of %s: %w", p.ID, err)
				}
				updated++
			}
			return nil
		})
		if err != nil {
			return res, err
		}

		res.Scanned += len(batch)
		res.Updated += updated
		after = batch[len(batch)-1].ID

		s.log.DebugContext(ctx, "reindex batch done",
			slog.Int("batch", len(batch)),
			slog.Int("updated", updated),
		)

		if len(batch) < batchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "reindex finished",
		slog.Int("scanned", res.Scanned),
		slog.Int("updated", res.Updated),
	)
	return res, nil
}
