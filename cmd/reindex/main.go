// Command reindex rebuilds the stored search_text of every product from its
// current fields. Run it after changing the transliteration tables.
//
// Usage:
//
//	reindex --batch-size=500
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/goods-search/internal/adapter/postgres"
	"github.com/heartmarshall/goods-search/internal/adapter/postgres/product"
	"github.com/heartmarshall/goods-search/internal/app"
	"github.com/heartmarshall/goods-search/internal/config"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
	"github.com/heartmarshall/goods-search/pkg/ctxutil"
)

func main() {
	batchSize := flag.Int("batch-size", 0, "products per transaction (default: search.reindex_batch_size)")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	cfg.Database.ApplicationName += "-reindex"
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger, product.New(pool), postgres.NewTxManager(pool), cfg.Search)

	res, err := svc.Reindex(ctxutil.WithSystemAdmin(ctx), *batchSize)
	if err != nil {
		logger.Error("reindex failed",
			slog.String("error", err.Error()),
			slog.Int("scanned", res.Scanned),
			slog.Int("updated", res.Updated),
		)
		pool.Close()
		os.Exit(1)
	}
}
