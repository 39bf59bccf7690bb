package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"digisure/internal/domain"
	"digisure/internal/repository"
	"digisure/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// erroringProductRepository simulates a primary store that fails on
// every read, the degraded mode the catalog endpoint must absorb.
type erroringProductRepository struct{}

func (erroringProductRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	return nil, context.DeadlineExceeded
}

func (erroringProductRepository) Count(ctx context.Context) (int, error) {
	return 0, context.DeadlineExceeded
}

func (erroringProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	return context.DeadlineExceeded
}

func newCatalogRouter(svc service.CatalogService) *chi.Mux {
	router := chi.NewRouter()
	NewCatalogHandler(svc, zap.NewNop()).RegisterRoutes(router)
	return router
}

func TestListProducts_MemoryModeReturnsSeed(t *testing.T) {
	router := newCatalogRouter(service.NewCatalogService(nil, zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 4)
	assert.Equal(t, "c1", products[0].ID)
	assert.Equal(t, domain.TypeCourse, products[0].Type)
}

func TestListProducts_FailingStoreStillReturns200(t *testing.T) {
	svc := service.NewCatalogService(erroringProductRepository{}, zap.NewNop())
	router := newCatalogRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "catalog reads have no error status")

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, len(repository.SeedCatalog()))
}

func TestListProducts_VariantFieldsSurviveSerialization(t *testing.T) {
	router := newCatalogRouter(service.NewCatalogService(nil, zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 4)

	course := raw[0]
	assert.Equal(t, "course", course["type"])
	assert.EqualValues(t, 320, course["lectures"])
	assert.NotContains(t, course, "fileFormat", "course must not leak download fields")

	download := raw[2]
	assert.Equal(t, "download", download["type"])
	assert.Equal(t, "XLSX", download["fileFormat"])
	assert.NotContains(t, download, "lectures")
}
