// Package postgres implements the store interfaces on PostgreSQL via
// database/sql with the pgx driver. It owns the SQL, the row mapping, and
// the translation of PostgreSQL error codes into store sentinels.
package postgres
