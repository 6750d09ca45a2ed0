// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the catalog server.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnv reads a .env file (if present) into the environment first, so
values there act like ordinary environment variables.

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: zebrafish.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StaticDir: Directory served at / (optional)
  - CORSOrigin: Fixed Access-Control-Allow-Origin value (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-static       Static client directory
	-cors-origin  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          -> -p
	DATABASE_URL  -> -d
	DATABASE_TYPE -> -t
	STATIC_DIR    -> -static
	CORS_ORIGIN   -> -cors-origin

CLI flags take precedence over environment variables, and both take
precedence over .env.

# Validation

ParseFlags returns an error for a non-numeric PORT, a port outside
1-65535, or an unknown database type.
*/
package cliparse
