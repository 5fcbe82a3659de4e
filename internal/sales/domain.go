package sales

// Client represents a customer row from the relational store.
type Client struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Product represents a product row from the relational store.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

// Sale represents one row of the sales flat file. The client and product
// ids are foreign keys into the relational store.
type Sale struct {
	ID         int64   `json:"id"`
	ClientID   int64   `json:"client_id"`
	ProductID  int64   `json:"product_id"`
	SaleAmount float64 `json:"sale_amount"`
}

// EnrichedSale is a sale with its foreign keys resolved to the full client
// and product objects. A nil sub-object serializes as JSON null and means
// the referenced id was not found in the relational store.
type EnrichedSale struct {
	ID         int64    `json:"id"`
	SaleAmount float64  `json:"sale_amount"`
	Client     *Client  `json:"client"`
	Product    *Product `json:"product"`
}
