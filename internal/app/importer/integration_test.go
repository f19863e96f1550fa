//go:build integration

package importer_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/goods-search/internal/adapter/postgres"
	"github.com/heartmarshall/goods-search/internal/adapter/postgres/product"
	"github.com/heartmarshall/goods-search/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/goods-search/internal/app/importer"
	"github.com/heartmarshall/goods-search/internal/config"
	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
	"github.com/heartmarshall/goods-search/pkg/ctxutil"
)

func TestImport_ThenSearchByTransliteration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txm := postgres.NewTxManager(pool)
	svc := catalog.NewService(logger, product.New(pool), txm, config.SearchConfig{
		DefaultLimit: 20, MaxLimit: 100, ReindexBatchSize: 100,
	})
	ctx := ctxutil.WithSystemAdmin(context.Background())

	brand := "Brand" + uuid.NewString()[:8]
	export := fmt.Sprintf(`{"ext_id": "%[1]s-1", "name": "Реле промежуточное", "brand_name": %[2]q}
{"ext_id": "%[1]s-2", "name": "Контактор", "brand_name": %[2]q, "tech_params": "{\"Ток\": \"25A\"}"}
`, uuid.NewString(), brand)

	res, err := importer.New(logger, svc, txm, importer.Config{BatchSize: 10}).Run(ctx, strings.NewReader(export))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	// Latin query for a Cyrillic name, restricted to this test's brand.
	found, err := svc.Search(ctx, domain.SearchParams{Query: "rele", Brand: &brand})
	require.NoError(t, err)
	require.Len(t, found.Products, 1)
	assert.Equal(t, "Реле промежуточное", found.Products[0].Name)

	// Re-running the same export updates in place.
	res, err = importer.New(logger, svc, txm, importer.Config{}).Run(ctx, strings.NewReader(export))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Zero(t, res.Inserted)
}
