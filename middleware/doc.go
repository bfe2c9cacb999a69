// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by every handler.

  - WithLogging: structured request/completion logging via log/slog
  - JSONResponse / ErrorResponse: JSON encoding with a uniform error shape
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for the club frontend
  - GetClientIP: proxy-aware client address extraction for logs
*/
package middleware
