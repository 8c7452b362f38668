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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *Config {
	cfg := &Config{ConnectionConfig: *DefaultConnectionConfig()}
	cfg.ConnectionConfig.Type = TypeSQLite
	cfg.DataMigrateConfig.EnableMigrateOnStartup = true
	return cfg
}

func TestFactoryCreateFromConfig(t *testing.T) {
	f := NewDatabaseFactory(&recordingLogger{})

	_, err := f.CreateFromConfig(nil)
	assert.Error(t, err)

	_, err = f.CreateFromConfig(&Config{ConnectionConfig: ConnectionConfig{Type: "oracle"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type: oracle")

	m, err := f.CreateFromConfig(sqliteConfig())
	require.NoError(t, err)
	assert.Same(t, m, f.GetManager())
	assert.Nil(t, f.GetDB())
}

func TestFactoryBeforeCreate(t *testing.T) {
	f := NewDatabaseFactory(nil)
	assert.Error(t, f.InitializeDatabase(context.Background(), testSchema()))
	_, err := f.NewSessionFactory()
	assert.Error(t, err)
	assert.NoError(t, f.Close())
	assert.False(t, f.GetHealthStatus(context.Background()).Healthy)
	assert.Equal(t, &DBStats{}, f.GetStats())
}

func TestFactoryInitializeDatabase(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "environments", "test", "001_authors.sql"), "INSERT INTO test_authors (name) VALUES ('Neuber');\n")

	cfg := sqliteConfig()
	cfg.DataInitConfig.Filepath = root
	cfg.DataInitConfig.Environment = "test"

	f := NewDatabaseFactory(&recordingLogger{})
	_, err := f.CreateFromConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, f.InitializeDatabase(ctx, testSchema()))
	t.Cleanup(func() { _ = f.Close() })

	sessions, err := f.NewSessionFactory()
	require.NoError(t, err)
	err = sessions.WithSession(ctx, func(ctx context.Context, s *Session) error {
		assert.Equal(t, 2, countAuthors(t, ctx, s))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, f.GetHealthStatus(ctx).Healthy)
	assert.Equal(t, 1, f.GetStats().MaxOpenConns)
}

func TestFactoryWithoutMigrations(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig()
	cfg.DataMigrateConfig.EnableMigrateOnStartup = false

	f := NewDatabaseFactory(&recordingLogger{})
	_, err := f.CreateFromConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, f.InitializeDatabase(ctx, testSchema()))
	t.Cleanup(func() { _ = f.Close() })

	var tables int
	err = f.GetDB().QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", "test_authors").Scan(&tables)
	require.NoError(t, err)
	assert.Zero(t, tables)
}
