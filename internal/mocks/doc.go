// Package mocks provides in-memory implementations of the store and auth
// interfaces for use in unit tests. Each mock keeps entities in a map and
// exposes function fields that tests can set to override individual methods.
package mocks
