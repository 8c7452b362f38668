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
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/faber/database"
	"github.com/tomoncle/faber/models"
	"github.com/tomoncle/faber/types"
	"github.com/tomoncle/faber/utils"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

func openTestDB(t *testing.T) *bun.DB {
	t.Helper()
	utils.ConfigureConsoleOutput(io.Discard)
	m := database.NewDatabaseManager(nil)
	require.NoError(t, m.Connect(context.Background()))
	t.Cleanup(func() { _ = m.Disconnect() })
	require.NoError(t, m.RunMigrations(context.Background(), models.Schema()))
	return m.GetDB()
}

func setClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := models.Now
	models.Now = func() time.Time { return at }
	t.Cleanup(func() { models.Now = prev })
}

func seedElements(t *testing.T, repo Repository[models.ChemicalElement], n int) {
	t.Helper()
	elements := make([]*models.ChemicalElement, 0, n)
	for i := 0; i < n; i++ {
		elements = append(elements, &models.ChemicalElement{
			Symbol: fmt.Sprintf("E%02d", i),
			Name:   fmt.Sprintf("Element %02d", i),
		})
	}
	require.NoError(t, repo.Create(context.Background(), elements...))
	for _, e := range elements {
		require.NotZero(t, e.ID)
	}
}

func TestCreateAndGetOne(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.ChemicalElement](openTestDB(t))

	fe := &models.ChemicalElement{Symbol: "Fe", Name: "Iron"}
	require.NoError(t, repo.Create(ctx, fe))
	require.NotZero(t, fe.ID)

	got, err := repo.GetOne(ctx, fe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iron", got.Name)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))

	_, err = repo.GetOne(ctx, fe.ID+100)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.NoError(t, repo.Create(ctx))
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.ChemicalElement](openTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.ChemicalElement{Symbol: "C", Name: "Carbon"}))
	err := repo.Create(ctx, &models.ChemicalElement{Symbol: "C", Name: "Carbon again"})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "create ChemicalElement")
}

func TestCreateDanglingReference(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.MaterialSubCategory](openTestDB(t))

	err := repo.Create(ctx, &models.MaterialSubCategory{Name: "Carbon Steel", MaterialCategoryID: 42})
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.MaterialParameterName](openTestDB(t))

	p := &models.MaterialParameterName{Name: "Tensile strength", Unit: "MPa"}
	require.NoError(t, repo.Create(ctx, p))

	p.Unit = "N/mm2"
	require.NoError(t, repo.Update(ctx, p))
	got, err := repo.GetOne(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/mm2", got.Unit)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	require.NoError(t, repo.Delete(ctx, p.ID))
	ok, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), database.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p), database.ErrNotFound)
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.MaterialParameterName](openTestDB(t))
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, created)

	p := &models.MaterialParameterName{Name: "Yield strength", Unit: "MPa"}
	require.NoError(t, repo.Create(ctx, p))

	setClock(t, created.Add(time.Hour))
	detached := &models.MaterialParameterName{Meta: models.Meta{ID: p.ID}, Name: "Yield strength", Unit: "N/mm2"}
	require.NoError(t, repo.Update(ctx, detached))

	stale := &models.MaterialParameterName{Name: "Yield strength", Unit: "ksi"}
	stale.ID = p.ID
	stale.CreatedAt = created.Add(-24 * time.Hour)
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetOne(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ksi", got.Unit)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(created.Add(time.Hour)))
}

func TestListCountQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.ChemicalElement](openTestDB(t))
	seedElements(t, repo, 12)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	filter := types.NewQueryFilter("symbol LIKE ?", "E0%")
	listed, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, listed, 10)
	assert.Equal(t, "E00", listed[0].Symbol)

	n, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	queried, err := repo.Query(ctx, "name = ?", "Element 11")
	require.NoError(t, err)
	require.Len(t, queried, 1)
	assert.Equal(t, "E11", queried[0].Symbol)
}

func TestListWithRelations(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewRepository[models.MaterialCategory](db)
	subcategories := NewRepository[models.MaterialSubCategory](db)

	metals := &models.MaterialCategory{Name: "Metals"}
	require.NoError(t, categories.Create(ctx, metals))
	require.NoError(t, subcategories.Create(ctx,
		&models.MaterialSubCategory{Name: "Carbon Steel", MaterialCategoryID: metals.ID},
		&models.MaterialSubCategory{Name: "Stainless Steel", MaterialCategoryID: metals.ID},
	))

	got, err := categories.GetOne(ctx, metals.ID, "MaterialSubCategories")
	require.NoError(t, err)
	assert.Len(t, got.MaterialSubCategories, 2)

	subs, err := subcategories.List(ctx, types.NewQueryFilter("?TableAlias.name = ?", "Carbon Steel"), "MaterialCategory")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].MaterialCategory)
	assert.Equal(t, "Metals", subs[0].MaterialCategory.Name)
}

func TestPage(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.ChemicalElement](openTestDB(t))
	seedElements(t, repo, 25)

	page, err := repo.Page(ctx, types.NewDefaultPageRequest(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasNext())
	require.Len(t, page.Items, 10)
	assert.Equal(t, "E10", page.Items[0].Symbol)

	page, err = repo.Page(ctx, types.NewPageRequestWithOrders(1, 5, []string{"symbol DESC"}))
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "E24", page.Items[0].Symbol)

	page, err = repo.Page(ctx, types.NewPageRequestWithFilter(1, 10, types.NewQueryFilter("symbol = ?", "nothing")))
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext())

	_, err = repo.Page(ctx, types.NewPageRequestWithOrders(1, 10, []string{"symbol; DROP TABLE chemical_elements"}))
	assert.Error(t, err)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.ChemicalElement](openTestDB(t))
	require.NoError(t, repo.Create(ctx, &models.ChemicalElement{Symbol: "Cr", Name: "Chrom"}))

	err := repo.Upsert(ctx, []string{"name"}, []string{"symbol"},
		&models.ChemicalElement{Symbol: "Cr", Name: "Chromium"},
		&models.ChemicalElement{Symbol: "Ni", Name: "Nickel"},
	)
	require.NoError(t, err)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cr, err := repo.Query(ctx, "symbol = ?", "Cr")
	require.NoError(t, err)
	require.Len(t, cr, 1)
	assert.Equal(t, "Chromium", cr[0].Name)

	assert.Error(t, repo.Upsert(ctx, nil, []string{"symbol"}, &models.ChemicalElement{Symbol: "Mo", Name: "Molybdenum"}))
}

func TestUpsertRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.MaterialParameterName](openTestDB(t))
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, created)
	require.NoError(t, repo.Create(ctx, &models.MaterialParameterName{Name: "Rm", Unit: "MPa"}))

	setClock(t, created.Add(time.Minute))
	require.NoError(t, repo.Upsert(ctx, []string{"unit"}, []string{"name"},
		&models.MaterialParameterName{Name: "Rm", Unit: "N/mm2"}))

	got, err := repo.Query(ctx, "name = ?", "Rm")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "N/mm2", got[0].Unit)
	assert.True(t, got[0].CreatedAt.Equal(created))
	assert.True(t, got[0].UpdatedAt.Equal(created.Add(time.Minute)))

	// an explicit updated_at is not listed twice
	setClock(t, created.Add(2*time.Minute))
	require.NoError(t, repo.Upsert(ctx, []string{"unit", "updated_at"}, []string{"name"},
		&models.MaterialParameterName{Name: "Rm", Unit: "MPa"}))
	got, err = repo.Query(ctx, "name = ?", "Rm")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].UpdatedAt.Equal(created.Add(2*time.Minute)))
}

func TestWithDBRunsInTransaction(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewRepository[models.ChemicalElement](db)
	rollback := errors.New("rollback")

	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		txRepo := repo.WithDB(tx)
		if err := txRepo.Create(ctx, &models.ChemicalElement{Symbol: "Mn", Name: "Manganese"}); err != nil {
			return err
		}
		n, err := txRepo.Count(ctx, nil)
		if err != nil {
			return err
		}
		assert.Equal(t, 1, n)
		return rollback
	})
	assert.ErrorIs(t, err, rollback)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, db, repo.DB())
	assert.Equal(t, dialect.SQLite, repo.Dialect().Name())
}
