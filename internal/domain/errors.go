package domain

import "errors"

// ErrMissingFile is returned when an input file does not exist or cannot be opened.
var ErrMissingFile = errors.New("missing file")

// ErrSchemaMismatch is returned when a table lacks a required column or a row
// does not satisfy the sale schema.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrNetworkFailure is returned when the dataset could not be downloaded.
var ErrNetworkFailure = errors.New("network failure")

// ErrEmptyDataset is returned when a table has a header but no data rows.
var ErrEmptyDataset = errors.New("empty dataset")
