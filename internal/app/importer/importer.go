// Package importer loads the upstream product export into the catalog.
// Records are saved through the catalog service, so the stored search_text
// is built exactly as for API writes.
package importer

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
)

// maxLineSize is the buffer size for bufio.Scanner (4 MB).
const maxLineSize = 4 * 1024 * 1024

// ErrTooManyErrors is returned when more records were rejected than
// Config.MaxErrors allows.
var ErrTooManyErrors = errors.New("too many rejected records")

type productSaver interface {
	SaveProduct(ctx context.Context, input catalog.SaveProductInput) (domain.Product, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds the outcome of an import run.
type Result struct {
	Lines    int
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Importer reads JSON Lines product records and upserts them by ext_id.
type Importer struct {
	log   *slog.Logger
	saver productSaver
	tx    txManager
	cfg   Config
}

// New creates an Importer.
func New(log *slog.Logger, saver productSaver, tx txManager, cfg Config) *Importer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	return &Importer{log: log.With("component", "importer"), saver: saver, tx: tx, cfg: cfg}
}

type pending struct {
	line  int
	input catalog.SaveProductInput
}

// Run imports every record read from r. Each batch is saved in one
// transaction; a database error aborts the run and rolls back the current
// batch. Records that fail validation are counted and skipped before any
// write.
func (im *Importer) Run(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()
	var res Result

	reject := func(line int, reason string) error {
		res.Errors++
		im.log.WarnContext(ctx, "record rejected", slog.Int("line", line), slog.String("reason", reason))
		if im.cfg.MaxErrors > 0 && res.Errors > im.cfg.MaxErrors {
			return fmt.Errorf("%w: %d (limit %d)", ErrTooManyErrors, res.Errors, im.cfg.MaxErrors)
		}
		return nil
	}

	finish := func(err error) (Result, error) {
		res.Duration = time.Since(start)
		im.log.InfoContext(ctx, "import finished",
			slog.Int("lines", res.Lines),
			slog.Int("inserted", res.Inserted),
			slog.Int("updated", res.Updated),
			slog.Int("skipped", res.Skipped),
			slog.Int("errors", res.Errors),
			slog.Bool("dry_run", im.cfg.DryRun),
			slog.Duration("duration", res.Duration),
		)
		return res, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	batch := make([]pending, 0, im.cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		inserted, updated, err := im.saveBatch(ctx, batch)
		batch = batch[:0]
		if err != nil {
			return err
		}
		res.Inserted += inserted
		res.Updated += updated
		return nil
	}

	for scanner.Scan() {
		res.Lines++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			if err := reject(res.Lines, "invalid json: "+err.Error()); err != nil {
				return finish(err)
			}
			continue
		}

		input, paramsOK := rec.ToInput()
		if !paramsOK {
			im.log.WarnContext(ctx, "tech_params dropped", slog.Int("line", res.Lines), slog.String("ext_id", input.ExtID))
		}
		if err := input.Validate(); err != nil {
			if err := reject(res.Lines, err.Error()); err != nil {
				return finish(err)
			}
			continue
		}

		if im.cfg.DryRun {
			res.Skipped++
			continue
		}

		batch = append(batch, pending{line: res.Lines, input: input})
		if len(batch) >= im.cfg.BatchSize {
			if err := flush(); err != nil {
				return finish(err)
			}
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return finish(fmt.Errorf("read input: %w", err))
	}

	return finish(flush())
}

// saveBatch saves already validated records. Any error aborts the
// transaction, so it is returned as is and the batch counts are dropped.
func (im *Importer) saveBatch(ctx context.Context, batch []pending) (inserted, updated int, err error) {
	err = im.tx.RunInTx(ctx, func(ctx context.Context) error {
		inserted, updated = 0, 0
		// now() is fixed for the whole transaction, so a repeated ext_id
		// within the batch comes back with equal timestamps too.
		seen := make(map[string]struct{}, len(batch))
		for _, p := range batch {
			saved, err := im.saver.SaveProduct(ctx, p.input)
			if err != nil {
				return fmt.Errorf("line %d (ext_id %s): %w", p.line, p.input.ExtID, err)
			}
			_, repeated := seen[p.input.ExtID]
			seen[p.input.ExtID] = struct{}{}
			if !repeated && saved.CreatedAt.Equal(saved.UpdatedAt) {
				inserted++
			} else {
				updated++
			}
		}
		return nil
	})
	return inserted, updated, err
}
