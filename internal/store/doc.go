// Package store defines the persistence interfaces for users, tasks, task
// statuses, and labels, plus the sentinel errors their implementations
// raise. Services depend only on these interfaces; the PostgreSQL
// implementations live in internal/platform/postgres.
package store
