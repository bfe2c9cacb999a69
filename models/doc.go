// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the shared data types for the Book Vote API.

# Domain Types

  - Book: one nomination, identified by a durable generated ID. Removal is
    a logical delete (DeletedAt), never a reindex of other books.
  - Ballot: one voter's accepted point allocation, immutable once stored.
  - BookScore / RankEntry: derived aggregates, recomputed on demand and
    never persisted.

# Wire Types

Request and response types carry JSON tags matching the on-disk snapshot
format (data/books.json, data/votes.json), so the same structs serve both
the HTTP surface and the persistence layer.

The ExportDocument type is the bulk backup format: both sequences plus an
export timestamp in a single JSON document.
*/
package models
