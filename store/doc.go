// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists snapshots of the book registry and vote store.

The in-memory engine is authoritative during a session; this package only
loads its state once at startup and saves after each accepted mutation.

# Backends

  - JSONStore: data/books.json + data/votes.json, the club's historical
    on-disk format. Optionally mirrored to a GitHub repository.
  - SQLStore: sqlite (modernc.org/sqlite) or PostgreSQL (lib/pq) behind
    database/sql, selected by config. Each save rewrites both tables in
    one transaction.

Both backends preserve registration and acceptance order, because the
ranking tie-break depends on it.
*/
package store
