// Package database abstracts SurrealDB access behind a small interface so the
// repository layer stays testable without a live connection.
//
// The Database interface exposes three query shapes:
//   - Query: list results (SELECT returning many rows)
//   - QueryOne: single result (SELECT by id or unique field)
//   - Execute: mutations where the caller discards the result
//
// Transactions are batch-based: statements accumulate in memory and are
// wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION at commit time. There is
// no isolation between Add calls, and Rollback only discards the pending
// batch. AtomicBatch is the preferred entry point for multi-statement writes.
//
// Sentinel errors (ErrNotFound, ErrDuplicate, ErrConnection, ErrQuery) are
// checked with errors.Is by repositories and services.
package database
