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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrationVersions(t *testing.T, mm *MigrationManager) []string {
	t.Helper()
	applied, err := mm.GetAppliedMigrations(context.Background())
	require.NoError(t, err)
	versions := make([]string, 0, len(applied))
	for _, m := range applied {
		versions = append(versions, m.Version)
	}
	return versions
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mm := NewMigrationManager(db, &recordingLogger{}, testSchema())

	require.NoError(t, mm.RunMigrations(ctx))
	require.NoError(t, mm.RunMigrations(ctx))

	assert.Equal(t, []string{"001", "002"}, migrationVersions(t, mm))
	assert.Equal(t, 1, countAuthors(t, ctx, db))
}

func TestRunMigrationsEnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, NewMigrationManager(db, &recordingLogger{}, testSchema()).RunMigrations(ctx))

	_, err := db.NewInsert().Model(&testBook{AuthorID: 999, Title: "Dangling"}).Exec(ctx)
	assert.ErrorIs(t, MapError(err), ErrForeignKeyViolation)

	author := new(testAuthor)
	require.NoError(t, db.NewSelect().Model(author).Limit(1).Scan(ctx))
	_, err = db.NewInsert().Model(&testBook{AuthorID: author.ID, Title: "Fatigue of Metals"}).Exec(ctx)
	require.NoError(t, err)

	_, err = db.NewDelete().Model((*testAuthor)(nil)).Where("id = ?", author.ID).Exec(ctx)
	require.NoError(t, err)
	n, err := db.NewSelect().Model((*testBook)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunMigrationsRejectsUnknownColumn(t *testing.T) {
	db := newTestDB(t)
	schema := testSchema()
	schema.ForeignKeys = append(schema.ForeignKeys, Cascade("test_books", "editor_id", "test_authors"))

	err := NewMigrationManager(db, &recordingLogger{}, schema).RunMigrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreign key constraint validation failed")
}

func TestRunMigrationsWithoutSchema(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, NewMigrationManager(db, nil, nil).RunMigrations(context.Background()))
	assert.Error(t, NewMigrationManager(nil, nil, testSchema()).RunMigrations(context.Background()))
}

func TestRunMigrationsAppliesSQLFilesOnce(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "common", "001_authors.sql"), "INSERT INTO test_authors (name) VALUES ('Coffin');\n")
	writeFile(t, filepath.Join(root, "environments", "dev", "001_books.sql"),
		"INSERT INTO test_books (author_id, title) SELECT id, 'Thermal fatigue' FROM test_authors WHERE name = 'Coffin';\n")
	fkFile := filepath.Join(root, "out", "foreign_keys.yaml")

	mm := NewMigrationManager(db, &recordingLogger{}, testSchema())
	mm.SetEnvironment("dev")
	mm.SetSQLRootPath(root)
	mm.SetForeignKeyFile(fkFile)

	require.NoError(t, mm.RunMigrations(ctx))
	require.NoError(t, mm.RunMigrations(ctx))

	assert.Equal(t, []string{"001", "002", "sql/common/001_authors.sql", "sql/dev/001_books.sql"}, migrationVersions(t, mm))
	assert.Equal(t, 2, countAuthors(t, ctx, db))
	books, err := db.NewSelect().Model((*testBook)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, books)

	_, err = os.Stat(fkFile)
	assert.NoError(t, err)
}

func TestRunMigrationsFailedSQLFileIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "common", "001_broken.sql"),
		"INSERT INTO test_authors (name) VALUES ('Manson');\nINSERT INTO test_books (author_id, title) VALUES (424242, 'Orphan');\n")

	mm := NewMigrationManager(db, &recordingLogger{}, testSchema())
	mm.SetSQLRootPath(root)

	err := mm.RunMigrations(ctx)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.Equal(t, []string{"001", "002"}, migrationVersions(t, mm))
	assert.Equal(t, 1, countAuthors(t, ctx, db))
}
