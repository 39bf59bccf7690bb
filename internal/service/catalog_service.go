package service

import (
	"context"
	"fmt"

	"digisure/internal/domain"
	"digisure/internal/repository"

	"go.uber.org/zap"
)

// CatalogService serves the product catalog with a guaranteed
// fallback: callers always get data, never an error.
type CatalogService interface {
	// FetchAll returns the catalog from the primary store when
	// possible and the fixed seed dataset otherwise. It never fails
	// observably; every failure reason is absorbed and logged here.
	FetchAll(ctx context.Context) []domain.Product

	// Init idempotently seeds a configured primary store: if the
	// products table is empty it is filled from the same dataset used
	// as the in-memory fallback. Safe to run on every startup.
	Init(ctx context.Context) error
}

type catalogService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewCatalogService creates a CatalogService. A nil repository selects
// memory mode, where every fetch serves the seed dataset.
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *catalogService) FetchAll(ctx context.Context) []domain.Product {
	if s.repo == nil {
		return repository.SeedCatalog()
	}

	products, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Warn("Catalog read failed, serving seed dataset", zap.Error(err))
		return repository.SeedCatalog()
	}

	if len(products) == 0 {
		s.logger.Warn("Catalog read returned no rows, serving seed dataset")
		return repository.SeedCatalog()
	}

	// Every row must pass the product validation boundary; a single
	// malformed row replaces the whole response with the fallback.
	for i := range products {
		if err := products[i].Validate(); err != nil {
			s.logger.Warn("Catalog row failed validation, serving seed dataset", zap.Error(err))
			return repository.SeedCatalog()
		}
	}

	return products
}

func (s *catalogService) Init(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect products table: %w", err)
	}

	if count > 0 {
		return nil
	}

	s.logger.Info("Products table empty, seeding baseline catalog")
	if err := s.repo.Seed(ctx, repository.SeedCatalog()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	return nil
}
