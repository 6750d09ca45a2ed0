// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/zebrafish-catalog/db"
	"github.com/danielhkuo/zebrafish-catalog/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
)

// Store is the entity store over the four catalog tables.
type Store struct {
	db      *sql.DB
	dialect db.Dialect
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

// DB exposes the underlying connection for tests and schema management.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() db.Dialect { return s.dialect }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Init creates any missing tables.
func (s *Store) Init() error {
	return db.CreateSchema(s.db, s.dialect)
}

// Rebuild drops every table and recreates the empty schema. It is the only
// way rows are ever removed, and it is not isolated from concurrent readers.
func (s *Store) Rebuild(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := db.DropSchema(s.db, s.dialect); err != nil {
		return err
	}
	return db.CreateSchema(s.db, s.dialect)
}

// Counts returns the number of rows in each table.
func (s *Store) Counts(ctx context.Context) (models.TableCounts, error) {
	var c models.TableCounts
	targets := []*int{&c.Genes, &c.Mutants, &c.SizeMetrics, &c.BehaviorData}
	for i, table := range db.Tables {
		// table names come from a fixed list
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(targets[i]); err != nil {
			return models.TableCounts{}, fmt.Errorf("failed to count %s: %w", table, err)
		}
	}
	return c, nil
}

// InTx runs fn in a transaction. The transaction commits if fn returns nil
// and rolls back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if !committed {
			_ = sqlTx.Rollback()
		}
	}()

	if err := fn(&Tx{tx: sqlTx}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	committed = true
	return nil
}

// classifyWrite maps constraint failures to store errors.
func classifyWrite(err error, what string) error {
	switch {
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", ErrDuplicateKey, what)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrForeignKey, what)
	default:
		return fmt.Errorf("failed to insert %s: %w", what, err)
	}
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
