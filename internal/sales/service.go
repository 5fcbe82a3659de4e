package sales

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service aggregates the relational catalog and the sales flat file into
// the views the API serves.
type Service struct {
	catalog CatalogStorage
	reader  SalesReader
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(catalog CatalogStorage, reader SalesReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		catalog: catalog,
		reader:  reader,
		logger:  logger,
	}
}

// Clients returns every client from the relational store.
func (s *Service) Clients(ctx context.Context) ([]Client, error) {
	clients, err := s.catalog.ListClients(ctx)
	if err != nil {
		s.logger.Error("failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	s.logger.Info("clients listed", zap.Int("count", len(clients)))
	return clients, nil
}

// Products returns every product from the relational store.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, fmt.Errorf("listing products: %w", err)
	}

	s.logger.Info("products listed", zap.Int("count", len(products)))
	return products, nil
}

// Sales returns every sale from the flat file, enriched with the client and
// product it references. A sale whose client_id or product_id resolves to
// nothing keeps a null sub-object instead of failing the whole read.
func (s *Service) Sales(ctx context.Context) ([]EnrichedSale, error) {
	sales, err := s.reader.ListSales()
	if err != nil {
		s.logger.Error("failed to read sales", zap.Error(err))
		return nil, fmt.Errorf("reading sales: %w", err)
	}

	clients, err := s.catalog.ListClients(ctx)
	if err != nil {
		s.logger.Error("failed to list clients for enrichment", zap.Error(err))
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error("failed to list products for enrichment", zap.Error(err))
		return nil, fmt.Errorf("listing products: %w", err)
	}

	enriched := s.enrich(sales, clients, products)
	s.logger.Info("sales enriched", zap.Int("count", len(enriched)))
	return enriched, nil
}

// enrich joins each sale to its client and product by id, preserving the
// order of the input sales. The lookup maps are built once per call.
func (s *Service) enrich(sales []Sale, clients []Client, products []Product) []EnrichedSale {
	clientsByID := make(map[int64]Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}
	productsByID := make(map[int64]Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	enriched := make([]EnrichedSale, 0, len(sales))
	for _, sale := range sales {
		es := EnrichedSale{
			ID:         sale.ID,
			SaleAmount: sale.SaleAmount,
		}

		if client, ok := clientsByID[sale.ClientID]; ok {
			es.Client = &client
		} else {
			s.logger.Warn("sale references unknown client",
				zap.Int64("sale_id", sale.ID),
				zap.Int64("client_id", sale.ClientID),
			)
		}

		if product, ok := productsByID[sale.ProductID]; ok {
			es.Product = &product
		} else {
			s.logger.Warn("sale references unknown product",
				zap.Int64("sale_id", sale.ID),
				zap.Int64("product_id", sale.ProductID),
			)
		}

		enriched = append(enriched, es)
	}

	return enriched
}
