// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Book Vote API.

# Handler Types

Each handler is a struct holding the engine, the snapshot store and config:

	bookHandler := handlers.NewBookHandler(eng, st, enricher, cfg)

  - BookHandler: nominations (submit, list, delete)
  - BallotHandler: ballot submission
  - ResultsHandler: ranking with per-book voter attribution
  - AdminHandler: clear, export, import

# Identity

Member identity is the X-Member-Name header; administrative operations
present X-Admin-Key instead (see the auth package).

# Flow

	POST   /books         → Submit (quota + duplicate checks, then enrichment)
	GET    /books         → List (?submitter= filter)
	DELETE /books/{id}    → Delete (submitter or admin)
	POST   /ballots       → Submit (full validation inside one critical section)
	GET    /results       → Get (?top=n truncates ranking only)
	POST   /admin/clear   → Clear
	GET    /admin/export  → Export
	POST   /admin/import  → Import (all-or-nothing)

After every accepted mutation the handler saves an engine snapshot. The
in-memory state is authoritative: a failed save is logged as a warning and
the request still succeeds.
*/
package handlers
