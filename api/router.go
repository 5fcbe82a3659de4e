package api

import (
	"net/http"

	"api_aggregator/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the read endpoints on the given Gin engine. The
// service is passed in rather than built here so tests can wire in-memory
// backends.
func InitRoutes(e *gin.Engine, service *sales.Service, logger *zap.Logger) {
	handler := NewSalesHandler(service, logger)

	e.GET("/clients", handler.handleListClients)
	e.GET("/products", handler.handleListProducts)
	e.GET("/sales", handler.handleListSales)

	e.GET("/openapi.json", handleOpenAPI)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
