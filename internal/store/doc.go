// Package store declares the persistence contracts for words, review
// records, users and daily statistics snapshots, together with the
// sentinel errors callers match on and the transaction helper.
//
// Implementations live in internal/platform/postgres.
package store
