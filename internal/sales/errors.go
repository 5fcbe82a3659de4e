package sales

import "errors"

// ErrDataSource is returned when a data source cannot be reached or read
// (database unreachable, query failure, sales file missing).
var ErrDataSource = errors.New("data source unavailable")

// ErrDataFormat is returned when a record in the sales file cannot be
// parsed. The wrapped message names the offending row.
var ErrDataFormat = errors.New("malformed record")

// ErrNotFound is reserved for single-record lookups.
var ErrNotFound = errors.New("record not found")
