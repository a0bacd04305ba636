// Package testdb provides utilities for database integration tests: locating
// the test database, applying the embedded migrations once, and running each
// test inside a transaction that is rolled back afterwards.
package testdb
