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
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func TestManagerSQLiteForeignKeysOn(t *testing.T) {
	db := newTestDB(t)
	var enabled int
	require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func openWithoutForeignKeys(t *testing.T, maxOpen int) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open(sqliteshim.ShimName, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	sqlDB.SetMaxOpenConns(maxOpen)
	return sqlDB
}

func TestEnsureSQLiteForeignKeysSingleConnection(t *testing.T) {
	ctx := context.Background()
	sqlDB := openWithoutForeignKeys(t, 1)
	logger := &recordingLogger{}

	require.NoError(t, ensureSQLiteForeignKeys(ctx, sqlDB, logger))
	assert.True(t, logger.contains("WARN SQLite driver ignored"))

	var enabled int
	require.NoError(t, sqlDB.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestEnsureSQLiteForeignKeysRejectsSharedPool(t *testing.T) {
	sqlDB := openWithoutForeignKeys(t, 4)
	err := ensureSQLiteForeignKeys(context.Background(), sqlDB, &recordingLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool of 4 connections")
}

func TestManagerMemoryPoolHasOneConnection(t *testing.T) {
	m := newTestManager(t, nil)
	assert.Equal(t, 1, m.GetStats().MaxOpenConns)
	assert.Equal(t, 1, m.GetSQLDB().Stats().MaxOpenConnections)
}

func TestManagerFilePoolLimits(t *testing.T) {
	cfg := DefaultConnectionConfig()
	cfg.Type = TypeSQLite
	cfg.Path = t.TempDir() + "/faber.db"
	cfg.MaxOpenConns = 7
	m := newTestManager(t, cfg)
	assert.Equal(t, 7, m.GetStats().MaxOpenConns)
}

func TestManagerHealthCheck(t *testing.T) {
	m := newTestManager(t, nil)
	status := m.HealthCheck(context.Background())
	assert.True(t, status.Healthy)
	assert.True(t, status.Connected)
	assert.Empty(t, status.LastError)

	require.NoError(t, m.Disconnect())
	status = m.HealthCheck(context.Background())
	assert.False(t, status.Healthy)
	assert.NotEmpty(t, status.LastError)
	assert.Error(t, m.Ping(context.Background()))
	assert.Nil(t, m.GetDB())
	assert.Equal(t, &DBStats{}, m.GetStats())
}

func TestManagerUnsupportedType(t *testing.T) {
	m := NewDatabaseManager(&ConnectionConfig{Type: "oracle"})
	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestManagerRunMigrations(t *testing.T) {
	m := newTestManager(t, nil)
	require.NoError(t, m.RunMigrations(context.Background(), testSchema()))
	assert.Equal(t, 1, countAuthors(t, context.Background(), m.GetDB()))

	assert.Error(t, NewDatabaseManager(nil).RunMigrations(context.Background(), testSchema()))
}

func TestQueryHooks(t *testing.T) {
	rec := &recordingLogger{}
	cfg := DefaultConnectionConfig()
	cfg.Type = TypeSQLite
	cfg.SlowQueryTime = time.Nanosecond

	m := NewDatabaseManager(cfg)
	m.SetLogger(rec)
	require.NoError(t, m.Connect(context.Background()))
	t.Cleanup(func() { _ = m.Disconnect() })

	_, err := m.GetDB().NewSelect().ColumnExpr("1").Exec(context.Background())
	require.NoError(t, err)
	assert.True(t, rec.contains("WARN slow query"), rec.String())

	_, err = m.GetDB().ExecContext(context.Background(), "SELECT * FROM missing_table")
	require.Error(t, err)
	assert.True(t, rec.contains("DEBUG query failed kind=no table"), rec.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("TRACE"))
	assert.Equal(t, LogLevelWarn, ParseLevel(" warning "))
	assert.Equal(t, LogLevelError, ParseLevel("fatal"))
	assert.Equal(t, LogLevelInfo, ParseLevel("verbose"))
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields())
	assert.Equal(t, " table=loads rows=3", formatFields("table", "loads", "rows", 3))
	assert.True(t, strings.HasSuffix(formatFields("table", "loads", "orphan"), " orphan"))
}
