// Package postgres provides the PostgreSQL implementation of the store
// interfaces. All operations accept a context and run against a store.DBTX,
// so the same code serves the live connection pool and per-test
// transactions.
package postgres
