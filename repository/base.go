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

package repository

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/tomoncle/faber/database"
	"github.com/tomoncle/faber/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
	"github.com/uptrace/bun/schema"
)

var orderPattern = regexp.MustCompile(`(?i)^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?(\s+(asc|desc))?$`)

const (
	createdAtColumn = "created_at"
	updatedAtColumn = "updated_at"
)

type baseRepositoryImpl[T any] struct {
	db bun.IDB
}

// NewRepository returns a repository for T running on db.
func NewRepository[T any](db bun.IDB) Repository[T] {
	return &baseRepositoryImpl[T]{db: db}
}

func (r *baseRepositoryImpl[T]) WithDB(db bun.IDB) Repository[T] {
	return &baseRepositoryImpl[T]{db: db}
}

func (r *baseRepositoryImpl[T]) DB() bun.IDB { return r.db }

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T]) entityName() string {
	var zero T
	return reflect.TypeOf(zero).Name()
}

func (r *baseRepositoryImpl[T]) table() *schema.Table {
	var zero T
	return r.db.Dialect().Tables().Get(reflect.TypeOf(zero))
}

// mutatedFields adds updated_at to the columns an upsert rewrites on conflict.
func (r *baseRepositoryImpl[T]) mutatedFields(fields []string) []string {
	if !r.table().HasField(updatedAtColumn) {
		return fields
	}
	for _, field := range fields {
		if field == updatedAtColumn {
			return fields
		}
	}
	return append(append([]string(nil), fields...), updatedAtColumn)
}

func withRelations(q *bun.SelectQuery, relations []string) *bun.SelectQuery {
	for _, rel := range relations {
		q = q.Relation(rel)
	}
	return q
}

func (r *baseRepositoryImpl[T]) GetOne(ctx context.Context, id any, relations ...string) (*T, error) {
	entity := new(T)
	q := r.db.NewSelect().Model(entity).Where("?TableAlias.id = ?", id)
	if err := withRelations(q, relations).Scan(ctx); err != nil {
		return nil, fmt.Errorf("get %s %v: %w", r.entityName(), id, database.MapError(err))
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.db.NewSelect().Model(&entities).Order("id ASC").Scan(ctx)
	return entities, database.MapError(err)
}

func (r *baseRepositoryImpl[T]) List(ctx context.Context, filter *types.QueryFilter, relations ...string) ([]*T, error) {
	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	if err := withRelations(query, relations).OrderExpr("?TableAlias.id ASC").Scan(ctx); err != nil {
		return nil, database.MapError(err)
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.db.NewSelect().Model(&entities).Where(query, args...).Scan(ctx)
	return entities, database.MapError(err)
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	query := r.db.NewSelect().Model((*T)(nil))
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	n, err := query.Count(ctx)
	return n, database.MapError(err)
}

func (r *baseRepositoryImpl[T]) Exists(ctx context.Context, id any) (bool, error) {
	ok, err := r.db.NewSelect().Model((*T)(nil)).Where("?TableAlias.id = ?", id).Exists(ctx)
	return ok, database.MapError(err)
}

// Page returns one page of rows. Orders are column names with an optional
// ASC or DESC and are rejected when they look like anything else.
func (r *baseRepositoryImpl[T]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	for _, order := range pageRequest.GetOrders() {
		if !orderPattern.MatchString(strings.TrimSpace(order)) {
			return nil, fmt.Errorf("invalid order %q", order)
		}
	}

	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Schema, pageRequest.GetFilter().Args...)
	}
	pagination := types.NewDefaultPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, database.MapError(err)
	}
	if orders := pageRequest.GetOrders(); len(orders) > 0 {
		query = query.Order(orders...)
	} else {
		query = query.Order("id ASC")
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Scan(ctx)
	if err != nil {
		return nil, database.MapError(err)
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

// Create inserts the entities in one statement and fills in their ids.
func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity ...*T) error {
	if len(entity) == 0 {
		return nil
	}
	var err error
	if len(entity) == 1 {
		_, err = r.db.NewInsert().Model(entity[0]).Exec(ctx)
	} else {
		entities := append([]*T(nil), entity...)
		_, err = r.db.NewInsert().Model(&entities).Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", r.entityName(), database.MapError(err))
	}
	return nil
}

// Update writes every column of entity by primary key except created_at.
func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	q := r.db.NewUpdate().Model(entity).WherePK()
	if r.table().HasField(createdAtColumn) {
		q = q.ExcludeColumn(createdAtColumn)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.entityName(), database.MapError(err))
	}
	return database.CheckRowsAffected(res, r.entityName())
}

// Delete removes the row with id. Dependent rows go with it through the
// cascading foreign keys.
func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, id any) error {
	res, err := r.db.NewDelete().Model((*T)(nil)).Where("?TableAlias.id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %s %v: %w", r.entityName(), id, database.MapError(err))
	}
	return database.CheckRowsAffected(res, r.entityName())
}

// Upsert inserts the entities and, on a conflict over duplicateKeys, updates
// fields instead. updated_at is always refreshed on conflict.
func (r *baseRepositoryImpl[T]) Upsert(ctx context.Context, fields []string, duplicateKeys []string, entity ...*T) error {
	if len(fields) == 0 {
		return fmt.Errorf("fields cannot be empty")
	}
	if len(entity) == 0 {
		return nil
	}
	entities := append([]*T(nil), entity...)
	fields = r.mutatedFields(fields)

	features := r.db.Dialect().Features()
	var err error
	switch {
	case features.Has(feature.InsertOnConflict):
		err = r.upsertOnConflict(ctx, fields, duplicateKeys, entities)
	case features.Has(feature.InsertOnDuplicateKey):
		err = r.upsertOnDuplicateKey(ctx, fields, entities)
	default:
		err = r.upsertFallback(ctx, entities)
	}
	if err != nil {
		return fmt.Errorf("upsert %s: %w", r.entityName(), database.MapError(err))
	}
	return nil
}

func (r *baseRepositoryImpl[T]) upsertOnDuplicateKey(ctx context.Context, fields []string, entities []*T) error {
	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		set = append(set, "? = VALUES(?)")
		args = append(args, bun.Ident(field), bun.Ident(field))
	}
	_, err := r.db.NewInsert().
		Model(&entities).
		On("DUPLICATE KEY UPDATE "+strings.Join(set, ", "), args...).
		Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) upsertOnConflict(ctx context.Context, fields []string, duplicateKeys []string, entities []*T) error {
	if len(duplicateKeys) == 0 {
		duplicateKeys = []string{"id"}
	}
	keys := make([]string, 0, len(duplicateKeys))
	args := make([]interface{}, 0, len(duplicateKeys))
	for _, key := range duplicateKeys {
		keys = append(keys, "?")
		args = append(args, bun.Ident(key))
	}
	q := r.db.NewInsert().
		Model(&entities).
		On("CONFLICT ("+strings.Join(keys, ", ")+") DO UPDATE", args...)
	for _, field := range fields {
		q = q.Set("? = EXCLUDED.?", bun.Ident(field), bun.Ident(field))
	}
	_, err := q.Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) upsertFallback(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		if _, err := r.db.NewInsert().Model(entity).Exec(ctx); err != nil {
			if _, updateErr := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx); updateErr != nil {
				return fmt.Errorf("insert error: %w, update error: %v", err, updateErr)
			}
		}
	}
	return nil
}
