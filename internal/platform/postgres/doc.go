// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// Queries are built with goqu using the postgres dialect and prepared
// placeholders, and executed through sqlx against a store.DBTX so the same
// stores work on a pool or inside a transaction.
package postgres
