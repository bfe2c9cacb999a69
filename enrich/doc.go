// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package enrich fetches display metadata (summary, genre, page count, cover
thumbnail) for submitted books from the Wikipedia API.

Enrichment is strictly cosmetic: it runs best-effort after a submission is
accepted, a failed lookup falls back to Default(), and the voting engine
never reads any of these fields.
*/
package enrich
