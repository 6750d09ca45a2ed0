// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the zebrafish catalog API server.

The catalog holds genes, the mutant lines derived from them, and two kinds
of measurements per mutant: morphological size metrics and behavioral time
series. The server answers read-only queries for a single-page client; the
zfimport command (cmd/zfimport) loads the data from spreadsheets.

# Starting the Server

With no configuration the server uses a SQLite file next to the binary:

	go run .

Or with flags:

	go run . -p 5000 -d zebrafish.db -static ./frontend/dist

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: zebrafish.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STATIC_DIR (-static): Directory served at /
  - CORS_ORIGIN (-cors-origin): Fixed allowed origin

A .env file in the working directory is loaded first.

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request ids, logging, metrics, JSON helpers
  - query: Read service, gene join and behavior grouping
  - importer: Spreadsheet loading and the import pipeline
  - store: Entity store over the four tables
  - db: Connections, schema and constraint error detection
  - models: Domain and response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
