// Package db provides the embedded database schema and seed data.
package db

import _ "embed"

// Schema contains the DDL statements for all application tables.
//
//go:embed migrations/001_schema.sql
var Schema string

// Seed is the default demo data loaded by the seed-db command.
//
//go:embed seed/seed.yaml
var Seed []byte
