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

	"github.com/tomoncle/faber/database"
	"github.com/tomoncle/faber/models"
	"github.com/uptrace/bun"
)

// MaterialDescriptionDetails loads a material description with its
// classification, composition, parameters, microstructure and semi-product.
func MaterialDescriptionDetails(ctx context.Context, db bun.IDB, id int64) (*models.MaterialDescription, error) {
	md := new(models.MaterialDescription)
	err := db.NewSelect().
		Model(md).
		Relation("MaterialStandardName").
		Relation("MaterialCategory").
		Relation("MaterialSubCategory").
		Relation("ChemicalCompositions", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.id ASC")
		}).
		Relation("ChemicalCompositions.AlloyContents").
		Relation("ChemicalCompositions.AlloyContents.ChemicalElement").
		Relation("MaterialParameters").
		Relation("MaterialParameters.MaterialParameterName").
		Relation("Microstructure").
		Relation("SemiProduct").
		Relation("SemiProduct.Shape").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("material description %d: %w", id, database.MapError(err))
	}
	return md, nil
}

// SemiProductTreatments lists the treatments of a semi-product in order.
func SemiProductTreatments(ctx context.Context, db bun.IDB, semiProductID int64) ([]*models.Treatment, error) {
	var treatments []*models.Treatment
	err := db.NewSelect().
		Model(&treatments).
		Relation("TreatmentProcess").
		Relation("Environment").
		Relation("Medium").
		Where("?TableAlias.semi_product_id = ?", semiProductID).
		OrderExpr("?TableAlias.order_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("treatments of semi-product %d: %w", semiProductID, database.MapError(err))
	}
	return treatments, nil
}

// SpecimenDetails loads a specimen with its type, orientation, location,
// instances, stress concentration factors and roughness measurements.
func SpecimenDetails(ctx context.Context, db bun.IDB, id int64) (*models.Specimen, error) {
	sp := new(models.Specimen)
	err := db.NewSelect().
		Model(sp).
		Relation("SpecimenType").
		Relation("SpecimenOrientation").
		Relation("SpecimenLocation").
		Relation("SpecimenInstances", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.instance_number ASC")
		}).
		Relation("StressConcentrationFactors").
		Relation("SurfaceRoughness").
		Relation("SurfaceRoughness.SurfaceRoughnessType").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("specimen %d: %w", id, database.MapError(err))
	}
	return sp, nil
}

// FatigueTestDetails loads a fatigue test with the specimen instances it ran
// on and its loads in order.
func FatigueTestDetails(ctx context.Context, db bun.IDB, id int64) (*models.FatigueTest, error) {
	ft := new(models.FatigueTest)
	err := db.NewSelect().
		Model(ft).
		Relation("SpecimenFatigueTests").
		Relation("SpecimenFatigueTests.SpecimenInstance").
		Relation("Loads", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.order_number ASC")
		}).
		Relation("Loads.LoadMode").
		Relation("Loads.LoadSignal").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fatigue test %d: %w", id, database.MapError(err))
	}
	return ft, nil
}
