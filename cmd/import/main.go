// Command import loads a JSON Lines product export from the ERP into the
// catalog, upserting by ext_id. It is intended to be run by a scheduler
// after each export, not as part of the main server.
//
// Flags:
//
//	--file           path to the export (overrides import.file_path; "-" reads stdin)
//	--dry-run        parse and validate without writing to DB
//	--import-config  path to import YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/goods-search/internal/adapter/postgres"
	"github.com/heartmarshall/goods-search/internal/adapter/postgres/product"
	"github.com/heartmarshall/goods-search/internal/app"
	"github.com/heartmarshall/goods-search/internal/app/importer"
	"github.com/heartmarshall/goods-search/internal/config"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
	"github.com/heartmarshall/goods-search/pkg/ctxutil"
)

func main() {
	fileFlag := flag.String("file", "", "path to the JSON Lines export")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	importConfigFlag := flag.String("import-config", "", "path to import YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*importConfigFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		importCfg.DryRun = true
	}
	if *fileFlag != "" {
		importCfg.FilePath = *fileFlag
	}
	if importCfg.FilePath == "" {
		logger.Error("no input: set --file or IMPORT_FILE_PATH")
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if importCfg.FilePath != "-" {
		f, err := os.Open(importCfg.FilePath)
		if err != nil {
			logger.Error("open export", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	appCfg.Database.ApplicationName += "-import"
	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	svc := catalog.NewService(logger, product.New(pool), txm, appCfg.Search)

	res, err := importer.New(logger, svc, txm, *importCfg).Run(ctxutil.WithSystemAdmin(ctx), in)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.Errors > 0 {
		logger.Warn("import completed with rejected records", slog.Int("errors", res.Errors))
		os.Exit(1)
	}
}
