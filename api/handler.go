package api

import (
	"errors"
	"net/http"

	"api_aggregator/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// salesHandler holds the aggregation service and implements the HTTP
// handlers for the read endpoints.
type salesHandler struct {
	service *sales.Service
	logger  *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(service *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		service: service,
		logger:  logger,
	}
}

// handleListClients handles GET /clients.
func (h *salesHandler) handleListClients(ctx *gin.Context) {
	clients, err := h.service.Clients(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, "failed to list clients", err)
		return
	}

	ctx.JSON(http.StatusOK, clients)
}

// handleListProducts handles GET /products.
func (h *salesHandler) handleListProducts(ctx *gin.Context) {
	products, err := h.service.Products(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, "failed to list products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// handleListSales handles GET /sales.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	enriched, err := h.service.Sales(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, "failed to list sales", err)
		return
	}

	ctx.JSON(http.StatusOK, enriched)
}

// respondError maps upstream failures to a 5xx with an error payload.
// A source that cannot be reached is 503; anything else, malformed flat-file
// records included, is 500.
func (h *salesHandler) respondError(ctx *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.String("path", ctx.FullPath()), zap.Error(err))

	status := http.StatusInternalServerError
	if errors.Is(err, sales.ErrDataSource) {
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
