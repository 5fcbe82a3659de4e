package sales

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CatalogStorage is the read interface over the relational store.
type CatalogStorage interface {
	ListClients(ctx context.Context) ([]Client, error)
	ListProducts(ctx context.Context) ([]Product, error)
}

// PostgresStorage implements CatalogStorage against PostgreSQL.
type PostgresStorage struct {
	db *sqlx.DB
}

// NewPostgresStorage creates a CatalogStorage backed by the given database.
func NewPostgresStorage(db *sqlx.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// ListClients returns every client, ordered by id.
func (s *PostgresStorage) ListClients(ctx context.Context) ([]Client, error) {
	clients := []Client{}
	err := s.db.SelectContext(ctx, &clients, `SELECT id, name FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDataSource, err)
	}
	return clients, nil
}

// ListProducts returns every product, ordered by id.
func (s *PostgresStorage) ListProducts(ctx context.Context) ([]Product, error) {
	products := []Product{}
	err := s.db.SelectContext(ctx, &products, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDataSource, err)
	}
	return products, nil
}

// LocalStorage provides an in-memory CatalogStorage. It is used as the
// backend in tests and for running the service without a database.
type LocalStorage struct {
	clients  []Client
	products []Product
}

// NewLocalStorage instantiates a LocalStorage seeded with the given rows.
func NewLocalStorage(clients []Client, products []Product) *LocalStorage {
	return &LocalStorage{
		clients:  clients,
		products: products,
	}
}

// ListClients returns the seeded clients.
func (l *LocalStorage) ListClients(ctx context.Context) ([]Client, error) {
	return l.clients, nil
}

// ListProducts returns the seeded products.
func (l *LocalStorage) ListProducts(ctx context.Context) ([]Product, error) {
	return l.products, nil
}
