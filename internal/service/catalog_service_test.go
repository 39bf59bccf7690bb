package service

import (
	"context"
	"errors"
	"testing"

	"digisure/internal/domain"
	"digisure/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProductRepository scripts the primary store's behavior.
type mockProductRepository struct {
	products  []domain.Product
	fetchErr  error
	count     int
	countErr  error
	seedErr   error
	seedCalls int
}

func (m *mockProductRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.products, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	m.seedCalls++
	m.products = append(m.products, products...)
	m.count = len(m.products)
	return nil
}

func seedIDs() []string {
	var ids []string
	for _, p := range repository.SeedCatalog() {
		ids = append(ids, p.ID)
	}
	return ids
}

func fetchedIDs(products []domain.Product) []string {
	var ids []string
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFetchAll_MemoryModeServesSeed(t *testing.T) {
	svc := NewCatalogService(nil, zap.NewNop())

	products := svc.FetchAll(context.Background())

	require.Len(t, products, 4)
	assert.Equal(t, seedIDs(), fetchedIDs(products))
}

func TestFetchAll_StoreErrorFallsBackToSeed(t *testing.T) {
	repo := &mockProductRepository{fetchErr: errors.New("connection refused")}
	svc := NewCatalogService(repo, zap.NewNop())

	products := svc.FetchAll(context.Background())

	assert.Equal(t, seedIDs(), fetchedIDs(products))
}

func TestFetchAll_EmptyStoreFallsBackToSeed(t *testing.T) {
	repo := &mockProductRepository{products: []domain.Product{}}
	svc := NewCatalogService(repo, zap.NewNop())

	products := svc.FetchAll(context.Background())

	assert.Equal(t, seedIDs(), fetchedIDs(products))
}

func TestFetchAll_MalformedRowReplacesWholeResponse(t *testing.T) {
	rows := repository.SeedCatalog()
	rows[1].Type = "bundle" // unknown discriminator
	repo := &mockProductRepository{products: rows}
	svc := NewCatalogService(repo, zap.NewNop())

	products := svc.FetchAll(context.Background())

	require.Len(t, products, 4)
	for _, p := range products {
		assert.NoError(t, p.Validate())
	}
}

func TestFetchAll_HealthyStorePassesThrough(t *testing.T) {
	stored := repository.SeedCatalog()[:2]
	repo := &mockProductRepository{products: stored}
	svc := NewCatalogService(repo, zap.NewNop())

	products := svc.FetchAll(context.Background())

	require.Len(t, products, 2)
	assert.Equal(t, "c1", products[0].ID)
	assert.Equal(t, "c2", products[1].ID)
}

func TestInit_SeedsEmptyStore(t *testing.T) {
	repo := &mockProductRepository{count: 0}
	svc := NewCatalogService(repo, zap.NewNop())

	require.NoError(t, svc.Init(context.Background()))
	assert.Equal(t, 1, repo.seedCalls)
	assert.Equal(t, 4, repo.count)

	// A second run sees a populated table and does nothing.
	require.NoError(t, svc.Init(context.Background()))
	assert.Equal(t, 1, repo.seedCalls)
	assert.Equal(t, 4, repo.count)
}

func TestInit_SkipsPopulatedStore(t *testing.T) {
	repo := &mockProductRepository{count: 4}
	svc := NewCatalogService(repo, zap.NewNop())

	require.NoError(t, svc.Init(context.Background()))
	assert.Equal(t, 0, repo.seedCalls)
}

func TestInit_MemoryModeIsNoop(t *testing.T) {
	svc := NewCatalogService(nil, zap.NewNop())
	assert.NoError(t, svc.Init(context.Background()))
}

func TestInit_ReportsCountFailure(t *testing.T) {
	repo := &mockProductRepository{countErr: errors.New("relation does not exist")}
	svc := NewCatalogService(repo, zap.NewNop())

	assert.Error(t, svc.Init(context.Background()))
}
