package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleOpenAPI serves the OpenAPI description of the read endpoints.
func handleOpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

// openAPIDocument builds the OpenAPI 3 document from the same routes and
// record shapes the handlers serve.
func openAPIDocument() gin.H {
	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":       "Sales Aggregation API",
			"description": "Read-only API aggregating clients and products from PostgreSQL with sales from a CSV flat file.",
			"version":     "0.1.0",
		},
		"paths": gin.H{
			"/clients":  listPath("Get all clients", "Client"),
			"/products": listPath("Get all products", "Product"),
			"/sales":    listPath("Get all sales with aggregated client and product data", "EnrichedSale"),
		},
		"components": gin.H{
			"schemas": gin.H{
				"Client":       clientSchema(),
				"Product":      productSchema(),
				"EnrichedSale": enrichedSaleSchema(),
				"Error": gin.H{
					"type": "object",
					"properties": gin.H{
						"error": gin.H{"type": "string"},
					},
					"required": []string{"error"},
				},
			},
		},
	}
}

// listPath describes a GET route returning a JSON array of the named schema.
func listPath(summary, schema string) gin.H {
	return gin.H{
		"get": gin.H{
			"summary": summary,
			"responses": gin.H{
				"200": gin.H{
					"description": "OK",
					"content": gin.H{
						"application/json": gin.H{
							"schema": gin.H{
								"type":  "array",
								"items": gin.H{"$ref": "#/components/schemas/" + schema},
							},
						},
					},
				},
				"500": errorResponse("Upstream read failed"),
				"503": errorResponse("Data source unavailable"),
			},
		},
	}
}

func errorResponse(description string) gin.H {
	return gin.H{
		"description": description,
		"content": gin.H{
			"application/json": gin.H{
				"schema": gin.H{"$ref": "#/components/schemas/Error"},
			},
		},
	}
}

func clientSchema() gin.H {
	return gin.H{
		"type": "object",
		"properties": gin.H{
			"id":   gin.H{"type": "integer", "format": "int64"},
			"name": gin.H{"type": "string"},
		},
		"required": []string{"id", "name"},
	}
}

func productSchema() gin.H {
	return gin.H{
		"type": "object",
		"properties": gin.H{
			"id":    gin.H{"type": "integer", "format": "int64"},
			"name":  gin.H{"type": "string"},
			"price": gin.H{"type": "number", "format": "double", "minimum": 0},
		},
		"required": []string{"id", "name", "price"},
	}
}

func enrichedSaleSchema() gin.H {
	return gin.H{
		"type": "object",
		"properties": gin.H{
			"id":          gin.H{"type": "integer", "format": "int64"},
			"sale_amount": gin.H{"type": "number", "format": "double", "minimum": 0},
			"client":      gin.H{"$ref": "#/components/schemas/Client", "nullable": true},
			"product":     gin.H{"$ref": "#/components/schemas/Product", "nullable": true},
		},
		"required": []string{"id", "sale_amount"},
	}
}
