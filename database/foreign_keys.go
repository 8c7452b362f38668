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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uptrace/bun"
	"gopkg.in/yaml.v3"
)

const (
	ActionCascade  = "CASCADE"
	ActionRestrict = "RESTRICT"
	ActionSetNull  = "SET NULL"
	ActionNoAction = "NO ACTION"
)

var validActions = []string{ActionCascade, ActionRestrict, ActionSetNull, ActionNoAction}

// ForeignKeyConstraint describes a foreign key relationship between tables.
type ForeignKeyConstraint struct {
	Table           string
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnDelete        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string
	ConstraintName  string
}

// Cascade is the constraint used throughout the schema: child.column references
// parent.id and goes away with its parent.
func Cascade(table, column, referenceTable string) ForeignKeyConstraint {
	return ForeignKeyConstraint{
		Table:           table,
		Column:          column,
		ReferenceTable:  referenceTable,
		ReferenceColumn: "id",
		OnDelete:        ActionCascade,
	}
}

// GenerateConstraintName returns the explicit name or a derived name.
func (fk *ForeignKeyConstraint) GenerateConstraintName() string {
	if fk.ConstraintName != "" {
		return fk.ConstraintName
	}
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// ApplyTo adds the constraint to a CREATE TABLE statement. Constraints are
// declared inline because SQLite cannot add them to an existing table.
func (fk *ForeignKeyConstraint) ApplyTo(q *bun.CreateTableQuery) *bun.CreateTableQuery {
	clause := "(?) REFERENCES ? (?)"
	if fk.OnDelete != "" {
		clause += " ON DELETE " + strings.ToUpper(fk.OnDelete)
	}
	if fk.OnUpdate != "" {
		clause += " ON UPDATE " + strings.ToUpper(fk.OnUpdate)
	}
	return q.ForeignKey(clause,
		bun.Ident(fk.Column),
		bun.Ident(fk.ReferenceTable),
		bun.Ident(fk.ReferenceColumn),
	)
}

func (fk *ForeignKeyConstraint) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", fk.Table, fk.Column, fk.ReferenceTable, fk.ReferenceColumn)
}

// ForeignKeyManager holds the constraint list and validates it against the
// tables it is applied to.
type ForeignKeyManager struct {
	constraints []ForeignKeyConstraint
	logger      Logger
}

func NewForeignKeyManager(logger Logger, constraints []ForeignKeyConstraint) *ForeignKeyManager {
	return &ForeignKeyManager{constraints: constraints, logger: logger}
}

// GetConstraintsByTable returns the constraints defined for a table.
func (fkm *ForeignKeyManager) GetConstraintsByTable(tableName string) []ForeignKeyConstraint {
	var result []ForeignKeyConstraint
	for _, constraint := range fkm.constraints {
		if strings.EqualFold(constraint.Table, tableName) {
			result = append(result, constraint)
		}
	}
	return result
}

func (fkm *ForeignKeyManager) ListAllConstraints() []ForeignKeyConstraint {
	return fkm.constraints
}

// ValidateConstraints checks the constraints for missing names and unknown
// actions. When columns is not nil every referenced table and column must be
// present in it, keyed by table name.
func (fkm *ForeignKeyManager) ValidateConstraints(columns map[string]map[string]struct{}) []error {
	var errs []error
	for _, c := range fkm.constraints {
		if c.Table == "" || c.Column == "" || c.ReferenceTable == "" || c.ReferenceColumn == "" {
			errs = append(errs, fmt.Errorf("incomplete foreign key: %s", c.String()))
			continue
		}
		for _, action := range []string{c.OnDelete, c.OnUpdate} {
			if action != "" && !isValidAction(action) {
				errs = append(errs, fmt.Errorf("invalid action %q on %s", action, c.GenerateConstraintName()))
			}
		}
		if columns == nil {
			continue
		}
		if !hasColumn(columns, c.Table, c.Column) {
			errs = append(errs, fmt.Errorf("unknown column %s.%s in %s", c.Table, c.Column, c.GenerateConstraintName()))
		}
		if !hasColumn(columns, c.ReferenceTable, c.ReferenceColumn) {
			errs = append(errs, fmt.Errorf("unknown reference %s.%s in %s", c.ReferenceTable, c.ReferenceColumn, c.GenerateConstraintName()))
		}
	}
	return errs
}

func isValidAction(action string) bool {
	for _, a := range validActions {
		if strings.EqualFold(action, a) {
			return true
		}
	}
	return false
}

func hasColumn(columns map[string]map[string]struct{}, table, column string) bool {
	cols, ok := columns[table]
	if !ok {
		return false
	}
	_, ok = cols[column]
	return ok
}

// ForeignKeyConfig is the YAML document listing foreign key constraints, for
// external migration tools.
type ForeignKeyConfig struct {
	ForeignKeys []ForeignKeyConstraintConfig `yaml:"foreign_keys"`
}

// ForeignKeyConstraintConfig describes a single foreign key in configuration.
type ForeignKeyConstraintConfig struct {
	Table           string `yaml:"table"`
	Column          string `yaml:"column"`
	ReferenceTable  string `yaml:"reference_table"`
	ReferenceColumn string `yaml:"reference_column"`
	OnDelete        string `yaml:"on_delete,omitempty"`
	OnUpdate        string `yaml:"on_update,omitempty"`
	ConstraintName  string `yaml:"constraint_name"`
	Description     string `yaml:"description,omitempty"`
}

func (fkc *ForeignKeyConstraintConfig) ToForeignKeyConstraint() ForeignKeyConstraint {
	return ForeignKeyConstraint{
		Table:           fkc.Table,
		Column:          fkc.Column,
		ReferenceTable:  fkc.ReferenceTable,
		ReferenceColumn: fkc.ReferenceColumn,
		OnDelete:        fkc.OnDelete,
		OnUpdate:        fkc.OnUpdate,
		ConstraintName:  fkc.ConstraintName,
	}
}

// ToYAML renders the constraints as a ForeignKeyConfig document.
func (fkm *ForeignKeyManager) ToYAML() ([]byte, error) {
	cfg := ForeignKeyConfig{ForeignKeys: make([]ForeignKeyConstraintConfig, 0, len(fkm.constraints))}
	for _, c := range fkm.constraints {
		cfg.ForeignKeys = append(cfg.ForeignKeys, ForeignKeyConstraintConfig{
			Table:           c.Table,
			Column:          c.Column,
			ReferenceTable:  c.ReferenceTable,
			ReferenceColumn: c.ReferenceColumn,
			OnDelete:        c.OnDelete,
			OnUpdate:        c.OnUpdate,
			ConstraintName:  c.GenerateConstraintName(),
			Description:     c.String(),
		})
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize foreign keys: %w", err)
	}
	return data, nil
}

// ExportToConfig writes the constraints to outputPath, creating directories as
// needed.
func (fkm *ForeignKeyManager) ExportToConfig(outputPath string) error {
	data, err := fkm.ToYAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if fkm.logger != nil {
		fkm.logger.Debug("Foreign keys exported", "path", outputPath, "count", len(fkm.constraints))
	}
	return nil
}

// LoadForeignKeyConfig reads a document written by ExportToConfig.
func LoadForeignKeyConfig(path string) ([]ForeignKeyConstraint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg ForeignKeyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	constraints := make([]ForeignKeyConstraint, 0, len(cfg.ForeignKeys))
	for _, fkc := range cfg.ForeignKeys {
		constraints = append(constraints, fkc.ToForeignKeyConstraint())
	}
	return constraints, nil
}
