package sales

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// SalesReader is the read interface over the sales flat file.
type SalesReader interface {
	ListSales() ([]Sale, error)
}

// FileReader implements SalesReader over a CSV file. The file is opened,
// fully read and closed on every call, so edits to it are visible on the
// next request.
type FileReader struct {
	path string
}

// NewFileReader creates a SalesReader for the CSV file at path.
func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// ListSales parses the whole file, preserving row order. A canonical header
// row is skipped when present. Parsing is strict: the first malformed row
// fails the read with ErrDataFormat naming that row.
func (r *FileReader) ListSales() ([]Sale, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening sales file %q: %v", ErrDataSource, r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading sales file %q: %v", ErrDataFormat, r.path, err)
	}

	sales := make([]Sale, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		sale, err := parseSale(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d of %q: %v", ErrDataFormat, i+1, r.path, err)
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func isHeader(record []string) bool {
	return record[0] == "id" && record[1] == "client_id" &&
		record[2] == "product_id" && record[3] == "sale_amount"
}

func parseSale(record []string) (Sale, error) {
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return Sale{}, fmt.Errorf("invalid id %q", record[0])
	}
	clientID, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return Sale{}, fmt.Errorf("invalid client_id %q", record[1])
	}
	productID, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return Sale{}, fmt.Errorf("invalid product_id %q", record[2])
	}
	amount, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return Sale{}, fmt.Errorf("invalid sale_amount %q", record[3])
	}

	return Sale{
		ID:         id,
		ClientID:   clientID,
		ProductID:  productID,
		SaleAmount: amount,
	}, nil
}

// StaticReader provides an in-memory SalesReader for tests.
type StaticReader struct {
	sales []Sale
}

// NewStaticReader instantiates a StaticReader returning the given sales.
func NewStaticReader(sales []Sale) *StaticReader {
	return &StaticReader{sales: sales}
}

// ListSales returns the seeded sales.
func (r *StaticReader) ListSales() ([]Sale, error) {
	return r.sales, nil
}
