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

package models

import (
	"context"

	"github.com/tomoncle/faber/database"
	"github.com/uptrace/bun"
)

// Creation tiers. A table only references tables of a lower tier.
const (
	tierLookup = iota * 10
	tierSubCategory
	tierDescription
	tierMaterial
	tierSemiProduct
	tierSpecimenChild
	tierMeasurement
)

// Models lists every entity with the tier it is created in.
func Models() []database.SQLModel {
	return []database.SQLModel{
		database.NewModelAdapter((*MaterialStandardName)(nil), tierLookup),
		database.NewModelAdapter((*MaterialCategory)(nil), tierLookup),
		database.NewModelAdapter((*MaterialParameterName)(nil), tierLookup),
		database.NewModelAdapter((*ChemicalElement)(nil), tierLookup),
		database.NewModelAdapter((*Medium)(nil), tierLookup),
		database.NewModelAdapter((*Environment)(nil), tierLookup),
		database.NewModelAdapter((*TreatmentProcess)(nil), tierLookup),
		database.NewModelAdapter((*HardnessType)(nil), tierLookup),
		database.NewModelAdapter((*Shape)(nil), tierLookup),
		database.NewModelAdapter((*SpecimenType)(nil), tierLookup),
		database.NewModelAdapter((*SpecimenLocation)(nil), tierLookup),
		database.NewModelAdapter((*SpecimenOrientation)(nil), tierLookup),
		database.NewModelAdapter((*SurfaceRoughnessType)(nil), tierLookup),
		database.NewModelAdapter((*FatigueTest)(nil), tierLookup),
		database.NewModelAdapter((*LoadMode)(nil), tierLookup),
		database.NewModelAdapter((*LoadSignal)(nil), tierLookup),

		database.NewModelAdapter((*MaterialSubCategory)(nil), tierSubCategory),

		database.NewModelAdapter((*MaterialDescription)(nil), tierDescription),

		database.NewModelAdapter((*MaterialParameter)(nil), tierMaterial),
		database.NewModelAdapter((*ChemicalComposition)(nil), tierMaterial),
		database.NewModelAdapter((*Microstructure)(nil), tierMaterial),
		database.NewModelAdapter((*SemiProduct)(nil), tierMaterial),

		database.NewModelAdapter((*AlloyContent)(nil), tierSemiProduct),
		database.NewModelAdapter((*Treatment)(nil), tierSemiProduct),
		database.NewModelAdapter((*Hardness)(nil), tierSemiProduct),
		database.NewModelAdapter((*Specimen)(nil), tierSemiProduct),

		database.NewModelAdapter((*SpecimenInstance)(nil), tierSpecimenChild),
		database.NewModelAdapter((*StressConcentrationFactor)(nil), tierSpecimenChild),

		database.NewModelAdapter((*SurfaceRoughness)(nil), tierMeasurement),
		database.NewModelAdapter((*SpecimenFatigueTest)(nil), tierMeasurement),
		database.NewModelAdapter((*Load)(nil), tierMeasurement),
	}
}

// ForeignKeys lists every child reference. All of them cascade on delete.
func ForeignKeys() []database.ForeignKeyConstraint {
	return []database.ForeignKeyConstraint{
		database.Cascade("material_subcategories", "material_category_id", "material_categories"),

		database.Cascade("material_descriptions", "material_standard_name_id", "material_standard_names"),
		database.Cascade("material_descriptions", "material_category_id", "material_categories"),
		database.Cascade("material_descriptions", "material_subcategory_id", "material_subcategories"),

		database.Cascade("material_parameters", "material_description_id", "material_descriptions"),
		database.Cascade("material_parameters", "material_parameter_name_id", "material_parameter_names"),

		database.Cascade("chemical_compositions", "material_description_id", "material_descriptions"),
		database.Cascade("alloy_content", "chemical_composition_id", "chemical_compositions"),
		database.Cascade("alloy_content", "chemical_element_id", "chemical_elements"),
		database.Cascade("microstructures", "material_description_id", "material_descriptions"),

		database.Cascade("semi_products", "material_description_id", "material_descriptions"),
		database.Cascade("semi_products", "shape_id", "shapes"),

		database.Cascade("treatments", "semi_product_id", "semi_products"),
		database.Cascade("treatments", "treatment_process_id", "treatment_processes"),
		database.Cascade("treatments", "environment_id", "environments"),
		database.Cascade("treatments", "medium_id", "mediums"),

		database.Cascade("hardness", "semi_product_id", "semi_products"),
		database.Cascade("hardness", "hardness_type_id", "hardness_types"),

		database.Cascade("specimens", "specimen_type_id", "specimen_types"),
		database.Cascade("specimens", "specimen_orientation_id", "specimen_orientations"),
		database.Cascade("specimens", "specimen_location_id", "specimen_locations"),

		database.Cascade("stress_concentration_factors", "specimen_id", "specimens"),
		database.Cascade("specimen_instances", "specimen_id", "specimens"),

		database.Cascade("surface_roughness", "specimen_id", "specimens"),
		database.Cascade("surface_roughness", "specimen_instance_id", "specimen_instances"),
		database.Cascade("surface_roughness", "surface_roughness_type_id", "surface_roughness_types"),

		database.Cascade("specimen_fatigue_tests", "specimen_instance_id", "specimen_instances"),
		database.Cascade("specimen_fatigue_tests", "fatigue_test_id", "fatigue_tests"),

		database.Cascade("loads", "fatigue_test_id", "fatigue_tests"),
		database.Cascade("loads", "load_mode_id", "load_modes"),
		database.Cascade("loads", "load_signal_id", "load_signals"),
	}
}

// Seeders insert the fixed location and orientation rows. Rows that already
// exist are left alone.
func Seeders() []database.Seeder {
	return []database.Seeder{
		{Name: "specimen_locations", Run: seedLocations},
		{Name: "specimen_orientations", Run: seedOrientations},
	}
}

func seedLocations(ctx context.Context, db bun.IDB) error {
	kinds := LocationKinds()
	rows := make([]*SpecimenLocation, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, &SpecimenLocation{Location: k.Name()})
	}
	_, err := db.NewInsert().Model(&rows).Ignore().Returning("NULL").Exec(ctx)
	return err
}

func seedOrientations(ctx context.Context, db bun.IDB) error {
	kinds := OrientationKinds()
	rows := make([]*SpecimenOrientation, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, &SpecimenOrientation{Orientation: k.Name()})
	}
	_, err := db.NewInsert().Model(&rows).Ignore().Returning("NULL").Exec(ctx)
	return err
}

// Schema bundles the entities, their constraints and reference rows for
// migration.
func Schema() *database.Schema {
	registry := database.NewModelRegistry()
	registry.Register(Models()...)
	return &database.Schema{
		Models:      registry,
		ForeignKeys: ForeignKeys(),
		Seeders:     Seeders(),
	}
}
