// Package testdb provides utilities for tests that need a real PostgreSQL
// database. Tests using it are guarded by the integration build tag.
package testdb
