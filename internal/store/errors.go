package store

import "errors"

var (
	// ErrNotFound is a sentinel error used when a queried resource does not
	// exist in the database.
	ErrNotFound = errors.New("record is not found")

	// ErrShopSchema is returned when the shop database rejects a query with
	// an undefined table or column, i.e. the DSN points at a database that
	// does not carry the expected shop schema.
	ErrShopSchema = errors.New("shop database schema mismatch")
)
