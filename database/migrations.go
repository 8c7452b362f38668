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
	"reflect"
	"sort"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// MigrationManager creates the schema, seeds reference rows and applies SQL
// seed files. Every step is recorded in the migrations table and runs once.
type MigrationManager struct {
	db             *bun.DB
	logger         Logger
	schema         *Schema
	environment    string
	sqlRootPath    string
	foreignKeyFile string
}

// Migration represents an applied migration record stored in the database.
type Migration struct {
	bun.BaseModel `bun:"table:migrations"`

	Version     string    `bun:"version,pk"`
	Name        string    `bun:"name,notnull"`
	AppliedAt   time.Time `bun:"applied_at,notnull"`
	Description string    `bun:"description"`
}

// MigrationFunc is a migration step executed within a transaction.
type MigrationFunc func(ctx context.Context, db bun.IDB) error

// MigrationItem describes a single migration version.
type MigrationItem struct {
	Version     string
	Name        string
	Description string
	Up          MigrationFunc
}

func NewMigrationManager(db *bun.DB, logger Logger, s *Schema) *MigrationManager {
	if logger == nil {
		logger = GetLogger()
	}
	return &MigrationManager{
		db:          db,
		logger:      logger,
		schema:      s,
		environment: "prod",
	}
}

// SetEnvironment selects environments/<env> under the SQL root path.
func (mm *MigrationManager) SetEnvironment(env string) {
	mm.environment = env
}

// SetSQLRootPath enables SQL seed files. An empty path disables them.
func (mm *MigrationManager) SetSQLRootPath(path string) {
	mm.sqlRootPath = path
}

// SetForeignKeyFile makes RunMigrations export the constraint list as YAML.
func (mm *MigrationManager) SetForeignKeyFile(path string) {
	mm.foreignKeyFile = path
}

// RunMigrations applies the pending migrations in version order, then the
// pending SQL seed files.
func (mm *MigrationManager) RunMigrations(ctx context.Context) error {
	if mm.db == nil {
		return fmt.Errorf("database not initialized")
	}
	if mm.schema == nil || mm.schema.Models == nil {
		return fmt.Errorf("no schema to migrate")
	}

	if err := mm.createMigrationTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	fkm := NewForeignKeyManager(mm.logger, mm.schema.ForeignKeys)
	if errs := fkm.ValidateConstraints(mm.describeColumns()); len(errs) > 0 {
		for _, err := range errs {
			mm.logger.Error("Foreign key constraint validation failed", "error", err.Error())
		}
		return fmt.Errorf("foreign key constraint validation failed, %d errors in total", len(errs))
	}

	migrations := mm.getAllMigrations(fkm)
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	for _, migration := range migrations {
		if err := mm.runMigration(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migration.Version, err)
		}
	}

	if mm.sqlRootPath != "" {
		if err := mm.seedDataFromSQL(ctx); err != nil {
			return err
		}
	}

	if mm.foreignKeyFile != "" {
		if err := fkm.ExportToConfig(mm.foreignKeyFile); err != nil {
			return fmt.Errorf("failed to export foreign keys: %w", err)
		}
	}

	mm.logger.Info("Database migrations completed!")
	return nil
}

func (mm *MigrationManager) createMigrationTable(ctx context.Context) error {
	_, err := mm.db.NewCreateTable().
		Model((*Migration)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (mm *MigrationManager) getAllMigrations(fkm *ForeignKeyManager) []MigrationItem {
	return []MigrationItem{
		{
			Version:     "001",
			Name:        "create_schema",
			Description: "Create entity tables with cascading foreign keys",
			Up: func(ctx context.Context, db bun.IDB) error {
				return mm.createTables(ctx, db, fkm)
			},
		},
		{
			Version:     "002",
			Name:        "seed_reference_data",
			Description: "Insert fixed enumeration rows",
			Up:          mm.seedReferenceData,
		},
	}
}

func (mm *MigrationManager) runMigration(ctx context.Context, migration MigrationItem) error {
	exists, err := mm.db.NewSelect().
		Model((*Migration)(nil)).
		Where("version = ?", migration.Version).
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		mm.logger.Debug("Migration already applied", "version", migration.Version)
		return nil
	}

	err = mm.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := migration.Up(ctx, tx); err != nil {
			return err
		}
		_, err := tx.NewInsert().
			Model(&Migration{
				Version:     migration.Version,
				Name:        migration.Name,
				AppliedAt:   time.Now().UTC(),
				Description: migration.Description,
			}).
			Exec(ctx)
		return err
	})
	if err != nil {
		return err
	}
	mm.logger.Info("Migration executed successfully", "version", migration.Version, "name", migration.Name)
	return nil
}

func (mm *MigrationManager) createTables(ctx context.Context, db bun.IDB, fkm *ForeignKeyManager) error {
	for _, model := range mm.schema.Models.Instances() {
		table := mm.tableOf(model)
		q := db.NewCreateTable().Model(model).IfNotExists()
		for _, fk := range fkm.GetConstraintsByTable(table.Name) {
			q = fk.ApplyTo(q)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
		mm.logger.Debug("Table created", "table", table.Name)
	}
	return nil
}

func (mm *MigrationManager) seedReferenceData(ctx context.Context, db bun.IDB) error {
	for _, seeder := range mm.schema.Seeders {
		if err := seeder.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", seeder.Name, err)
		}
		mm.logger.Debug("Reference data seeded", "seeder", seeder.Name)
	}
	return nil
}

func (mm *MigrationManager) seedDataFromSQL(ctx context.Context) error {
	sqlManager := NewSQLInitManager(mm.logger, mm.environment)
	sqlManager.SetSQLRootPath(mm.sqlRootPath)

	files, err := sqlManager.GetSQLFiles()
	if err != nil {
		return fmt.Errorf("failed to get SQL files: %w", err)
	}
	mm.logger.Info("Starting data initialization using SQL files", "environment", mm.environment, "files", len(files))
	for _, file := range files {
		item := MigrationItem{
			Version:     "sql/" + file.Environment + "/" + file.Name,
			Name:        file.Name,
			Description: "SQL seed file " + file.Path,
			Up: func(ctx context.Context, db bun.IDB) error {
				_, err := sqlManager.ExecuteFile(ctx, db, file)
				return err
			},
		}
		if err := mm.runMigration(ctx, item); err != nil {
			return fmt.Errorf("SQL file execution failed %s: %w", file.Path, err)
		}
	}
	return nil
}

func (mm *MigrationManager) tableOf(model interface{}) *schema.Table {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return mm.db.Table(t)
}

// describeColumns maps every registered table to its column names.
func (mm *MigrationManager) describeColumns() map[string]map[string]struct{} {
	columns := make(map[string]map[string]struct{})
	for _, model := range mm.schema.Models.Instances() {
		table := mm.tableOf(model)
		cols := make(map[string]struct{}, len(table.FieldMap))
		for name := range table.FieldMap {
			cols[name] = struct{}{}
		}
		columns[table.Name] = cols
	}
	return columns
}

// GetAppliedMigrations returns migration records ordered by version.
func (mm *MigrationManager) GetAppliedMigrations(ctx context.Context) ([]Migration, error) {
	var migrations []Migration
	err := mm.db.NewSelect().
		Model(&migrations).
		Order("version ASC").
		Scan(ctx)
	return migrations, err
}
