// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the Book Vote server.

# Sources

Configuration comes from CLI flags first, then environment variables, then
defaults:

	bookvote -p 3319 -s json --data-dir data

# Settings

Required:

  - ADMIN_KEY_SALT (--admin-salt): secret for deriving the admin key
  - DATABASE_URL (-d): required only when the store type is postgres

Optional:

  - PORT (-p): server port (default 3319)
  - STORE_TYPE (-s): json, sqlite or postgres (default json)
  - DATA_DIR (--data-dir): JSON snapshot directory (default data)
  - CLUB_NAME (--club): club name, used to derive the admin key
  - POINT_BUDGET, MAX_CHOICES, MAX_BOOKS_PER_MEMBER, TOP_DISPLAY: voting
    rules (defaults 100, 5, 5, 6)
  - GITHUB_TOKEN / GITHUB_REPO / GITHUB_BRANCH: enable best-effort
    mirroring of the JSON snapshots to a GitHub repository
  - --no-enrich: disable metadata enrichment lookups
*/
package cliparse
