// Package database provides SQLite-based storage for treelister.
//
// This package implements the HistoryDB, which records one row per scan
// (target, timestamp, format, item counts, artifact path) so that past
// runs can be listed per target.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of
// other databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
