/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Session is one unit of work pinned to a single pooled connection. It
// satisfies bun.IDB, so repositories accept it directly.
type Session struct {
	bun.Conn
	logger Logger
}

var _ bun.IDB = (*Session)(nil)

// SessionFactory hands out sessions over one pool. It holds no state besides
// the pool and is safe for concurrent use.
type SessionFactory struct {
	db     *bun.DB
	logger Logger
}

func NewSessionFactory(db *bun.DB, logger Logger) *SessionFactory {
	if logger == nil {
		logger = GetLogger()
	}
	return &SessionFactory{db: db, logger: logger}
}

// DB returns the pool the factory draws from.
func (f *SessionFactory) DB() *bun.DB {
	return f.db
}

// WithSession acquires a connection, runs fn on it and hands the connection
// back to the pool however fn exits, including panics. Records loaded inside
// fn are plain values and stay usable afterwards.
func (f *SessionFactory) WithSession(ctx context.Context, fn func(ctx context.Context, s *Session) error) (err error) {
	if f.db == nil {
		return fmt.Errorf("database not initialized")
	}
	conn, err := f.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			f.logger.Warn("Failed to release connection", "error", cerr)
			if err == nil {
				err = fmt.Errorf("release connection: %w", cerr)
			}
		}
	}()
	return fn(ctx, &Session{Conn: conn, logger: f.logger})
}

// WithTransaction runs fn inside a transaction on a fresh session.
func (f *SessionFactory) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return f.WithSession(ctx, func(ctx context.Context, s *Session) error {
		return s.Transaction(ctx, fn)
	})
}

// Transaction runs fn in a transaction on the session's connection. An error
// or panic from fn rolls back. A failed commit is returned wrapped and is
// never retried.
func (s *Session) Transaction(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Warn("Failed to rollback transaction", "error", rbErr)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
