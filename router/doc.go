// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the Book Vote API routes using Go 1.22+ method
patterns on http.ServeMux.

Routes are listed in router.go; every handler is wrapped with the request
logging middleware. The router takes the engine, the snapshot store and
the (optional) enricher so handlers share one set of dependencies.
*/
package router
