// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Book Vote API server.

Book Vote is a small book-club voting service: members nominate books,
cast one point-weighted ballot each (a fixed budget spread over a handful
of choices), and read a deterministic, tie-aware ranking with per-book
voter attribution.

# Starting the Server

The server reads configuration from a .env file, the environment, or CLI
flags:

	ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 3319 -s json --data-dir data --admin-salt ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): secret for the admin key HMAC
  - DATABASE_URL (-d): only when STORE_TYPE is postgres

Optional settings:

  - PORT (-p): server port (default: 3319)
  - STORE_TYPE (-s): json, sqlite or postgres (default: json)
  - POINT_BUDGET / MAX_CHOICES / MAX_BOOKS_PER_MEMBER / TOP_DISPLAY:
    voting rules (defaults: 100 / 5 / 5 / 6)
  - GITHUB_TOKEN, GITHUB_REPO: mirror the JSON snapshots to GitHub

# Architecture

The server keeps the authoritative state in memory and persists snapshots
after each accepted mutation:

  - engine: registry, ballot validation, aggregation and ranking
  - store: JSON file, sqlite or postgres snapshot persistence + GitHub mirror
  - handlers: HTTP request handlers (books, ballots, results, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and wire types
  - auth: admin key derivation and validation
  - enrich: Wikipedia metadata lookups
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
