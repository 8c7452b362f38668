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
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/faber/utils"
	"github.com/uptrace/bun"
)

type testAuthor struct {
	bun.BaseModel `bun:"table:test_authors,alias:ta"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

type testBook struct {
	bun.BaseModel `bun:"table:test_books,alias:tb"`

	ID       int64  `bun:"id,pk,autoincrement"`
	AuthorID int64  `bun:"author_id,notnull"`
	Title    string `bun:"title,notnull"`
}

func testSchema() *Schema {
	registry := NewModelRegistry()
	registry.Register(
		NewModelAdapter((*testBook)(nil), 10),
		NewModelAdapter((*testAuthor)(nil), 0),
	)
	return &Schema{
		Models:      registry,
		ForeignKeys: []ForeignKeyConstraint{Cascade("test_books", "author_id", "test_authors")},
		Seeders: []Seeder{{
			Name: "authors",
			Run: func(ctx context.Context, db bun.IDB) error {
				_, err := db.NewInsert().Model(&testAuthor{Name: "Wöhler"}).Exec(ctx)
				return err
			},
		}},
	}
}

func newTestManager(t *testing.T, cfg *ConnectionConfig) AbstractDatabaseManager {
	t.Helper()
	utils.ConfigureConsoleOutput(io.Discard)
	if cfg == nil {
		cfg = DefaultConnectionConfig()
		cfg.Type = TypeSQLite
	}
	m := NewDatabaseManager(cfg)
	require.NoError(t, m.Connect(context.Background()))
	t.Cleanup(func() { _ = m.Disconnect() })
	return m
}

func newTestDB(t *testing.T) *bun.DB {
	return newTestManager(t, nil).GetDB()
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) record(level, msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+msg+formatFields(fields...))
}

func (l *recordingLogger) SetLevel(LogLevel) {}

func (l *recordingLogger) Debug(msg string, fields ...interface{}) { l.record("DEBUG", msg, fields...) }

func (l *recordingLogger) Info(msg string, fields ...interface{}) { l.record("INFO", msg, fields...) }

func (l *recordingLogger) Warn(msg string, fields ...interface{}) { l.record("WARN", msg, fields...) }

func (l *recordingLogger) Error(msg string, fields ...interface{}) { l.record("ERROR", msg, fields...) }

func (l *recordingLogger) contains(prefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

func (l *recordingLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprint(l.entries)
}
