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

package faber

import (
	"context"
	"fmt"

	"github.com/tomoncle/faber/config"
	"github.com/tomoncle/faber/database"
	"github.com/tomoncle/faber/models"
	"github.com/tomoncle/faber/utils"
	"github.com/uptrace/bun"
)

// Store owns the connection pool and the session factory drawing from it.
type Store struct {
	factory  *database.BaseDatabaseFactory
	sessions *database.SessionFactory
	logger   database.Logger
}

// Open connects to the PostgreSQL database described by settings and, unless
// DB_MIGRATE_ON_STARTUP is false, migrates it.
func Open(ctx context.Context, settings *config.Settings) (*Store, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: nil settings", config.ErrInvalidSettings)
	}
	utils.ConfigureLogLevel(settings.LogLevel)
	logger := database.NewDefaultLogger("faber")
	logger.Info("Opening store", "database", settings.Redacted())
	return open(ctx, settings.DatabaseConfig(), logger)
}

// OpenConfig is Open for an explicit database configuration, e.g. an embedded
// SQLite database.
func OpenConfig(ctx context.Context, cfg *database.Config) (*Store, error) {
	return open(ctx, cfg, database.NewDefaultLogger("faber"))
}

func open(ctx context.Context, cfg *database.Config, logger database.Logger) (*Store, error) {
	factory := database.NewDatabaseFactory(logger)
	if _, err := factory.CreateFromConfig(cfg); err != nil {
		return nil, err
	}
	if err := factory.InitializeDatabase(ctx, models.Schema()); err != nil {
		_ = factory.Close()
		return nil, err
	}
	sessions, err := factory.NewSessionFactory()
	if err != nil {
		_ = factory.Close()
		return nil, err
	}
	return &Store{factory: factory, sessions: sessions, logger: logger}, nil
}

// DB is the pool itself. Prefer WithSession for units of work.
func (s *Store) DB() *bun.DB {
	return s.sessions.DB()
}

func (s *Store) Sessions() *database.SessionFactory {
	return s.sessions
}

// WithSession runs fn on one pooled connection and releases it afterwards.
func (s *Store) WithSession(ctx context.Context, fn func(ctx context.Context, sess *database.Session) error) error {
	return s.sessions.WithSession(ctx, fn)
}

// WithTransaction runs fn in a transaction on its own session.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return s.sessions.WithTransaction(ctx, fn)
}

// Migrations lists the applied schema versions and SQL seed files.
func (s *Store) Migrations(ctx context.Context) ([]database.Migration, error) {
	return database.NewMigrationManager(s.DB(), s.logger, models.Schema()).GetAppliedMigrations(ctx)
}

func (s *Store) Health(ctx context.Context) *database.HealthStatus {
	return s.factory.GetHealthStatus(ctx)
}

func (s *Store) Stats() *database.DBStats {
	return s.factory.GetStats()
}

// Close closes the pool. Sessions still running fail with a closed-pool error.
func (s *Store) Close() error {
	return s.factory.Close()
}
