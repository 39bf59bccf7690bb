package transport

import (
	"net/http"

	"digisure/internal/middleware"
	"digisure/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
}

// ListProducts returns the full catalog. There is no error status for
// this endpoint: when the primary store fails, the catalog service
// already substituted the seed dataset, so the response is 200 either
// way.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalogService.FetchAll(r.Context())

	h.logger.Debug("Catalog served", zap.Int("products", len(products)))
	middleware.RespondWithJSON(w, http.StatusOK, products)
}
