package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"api_aggregator/api"
	"api_aggregator/internal/sales"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// unreachableStorage simulates the relational store being down.
type unreachableStorage struct{}

func (unreachableStorage) ListClients(ctx context.Context) ([]sales.Client, error) {
	return nil, errors.Join(sales.ErrDataSource, errors.New("dial tcp 127.0.0.1:5432: connection refused"))
}

func (unreachableStorage) ListProducts(ctx context.Context) ([]sales.Product, error) {
	return nil, errors.Join(sales.ErrDataSource, errors.New("dial tcp 127.0.0.1:5432: connection refused"))
}

func initRouter(t *testing.T, storage sales.CatalogStorage, reader sales.SalesReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(api.RequestID())

	logger := zaptest.NewLogger(t)
	service := sales.NewService(storage, reader, logger)
	api.InitRoutes(router, service, logger)

	return router
}

func seededRouter(t *testing.T, salesRows []sales.Sale) *gin.Engine {
	storage := sales.NewLocalStorage(
		[]sales.Client{{ID: 1, Name: "Acme"}},
		[]sales.Product{{ID: 101, Name: "Widget", Price: 50.00}},
	)
	return initRouter(t, storage, sales.NewStaticReader(salesRows))
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetClients(t *testing.T) {
	router := seededRouter(t, nil)

	w := doGet(router, "/clients")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var clients []sales.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, sales.Client{ID: 1, Name: "Acme"}, clients[0])
}

func TestGetProducts(t *testing.T) {
	router := seededRouter(t, nil)

	w := doGet(router, "/products")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []sales.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, sales.Product{ID: 101, Name: "Widget", Price: 50.00}, products[0])
}

// TestGetSales_EnrichedPayload pins the documented single-sale payload:
// one client, one product, one CSV row referencing both.
func TestGetSales_EnrichedPayload(t *testing.T) {
	router := seededRouter(t, []sales.Sale{
		{ID: 1, ClientID: 1, ProductID: 101, SaleAmount: 50.00},
	})

	w := doGet(router, "/sales")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t,
		`[{"id":1,"sale_amount":50.00,"client":{"id":1,"name":"Acme"},"product":{"id":101,"name":"Widget","price":50.00}}]`,
		w.Body.String(),
	)
}

func TestGetSales_MissingJoinTargetIsNull(t *testing.T) {
	router := seededRouter(t, []sales.Sale{
		{ID: 7, ClientID: 42, ProductID: 101, SaleAmount: 12.50},
	})

	w := doGet(router, "/sales")
	assert.Equal(t, http.StatusOK, w.Code, "a dangling foreign key must not fail the request")

	var enriched []sales.EnrichedSale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enriched))
	require.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].Client)
	assert.NotNil(t, enriched[0].Product)
}

func TestGetSales_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	storage := sales.NewLocalStorage(nil, nil)
	router := initRouter(t, storage, sales.NewFileReader(path))

	w := doGet(router, "/sales")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetSales_RepeatedCallsReturnSamePayload(t *testing.T) {
	router := seededRouter(t, []sales.Sale{
		{ID: 1, ClientID: 1, ProductID: 101, SaleAmount: 50.00},
	})

	first := doGet(router, "/sales")
	second := doGet(router, "/sales")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetClients_StorageUnreachable(t *testing.T) {
	router := initRouter(t, unreachableStorage{}, sales.NewStaticReader(nil))

	w := doGet(router, "/clients")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.NotEmpty(t, body["error"])
}

func TestGetSales_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,1,101,50.00\nnot-a-number,1,101,10\n"), 0o644))

	storage := sales.NewLocalStorage(nil, nil)
	router := initRouter(t, storage, sales.NewFileReader(path))

	w := doGet(router, "/sales")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "row 2")
}

func TestOpenAPIDocument(t *testing.T) {
	router := seededRouter(t, nil)

	w := doGet(router, "/openapi.json")
	assert.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/clients")
	assert.Contains(t, doc.Paths, "/products")
	assert.Contains(t, doc.Paths, "/sales")
}

func TestPing(t *testing.T) {
	router := seededRouter(t, nil)

	w := doGet(router, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
