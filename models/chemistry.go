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

import "github.com/uptrace/bun"

// ChemicalComposition records who reported a composition. It may exist
// without a material description.
type ChemicalComposition struct {
	bun.BaseModel `bun:"table:chemical_compositions,alias:cc"`
	Meta

	Source                string `bun:"source,notnull" json:"source"`
	MaterialDescriptionID *int64 `bun:"material_description_id" json:"material_description_id,omitempty"`

	MaterialDescription *MaterialDescription `bun:"rel:belongs-to,join:material_description_id=id" json:"material_description,omitempty"`
	AlloyContents       []*AlloyContent      `bun:"rel:has-many,join:id=chemical_composition_id" json:"alloy_contents,omitempty"`
}

type ChemicalElement struct {
	bun.BaseModel `bun:"table:chemical_elements,alias:ce"`
	Meta

	Symbol string `bun:"symbol,notnull,unique" json:"symbol"`
	Name   string `bun:"name,notnull" json:"name"`

	AlloyContents []*AlloyContent `bun:"rel:has-many,join:id=chemical_element_id" json:"alloy_contents,omitempty"`
}

// AlloyContent is the weight percentage of one element in a composition.
type AlloyContent struct {
	bun.BaseModel `bun:"table:alloy_content,alias:ac"`
	Meta

	Name                  string  `bun:"name,notnull,unique" json:"name"`
	Percentage            float64 `bun:"percentage,notnull" json:"percentage"`
	ChemicalCompositionID int64   `bun:"chemical_composition_id,notnull" json:"chemical_composition_id"`
	ChemicalElementID     int64   `bun:"chemical_element_id,notnull" json:"chemical_element_id"`

	ChemicalComposition *ChemicalComposition `bun:"rel:belongs-to,join:chemical_composition_id=id" json:"chemical_composition,omitempty"`
	ChemicalElement     *ChemicalElement     `bun:"rel:belongs-to,join:chemical_element_id=id" json:"chemical_element,omitempty"`
}

// Microstructure units: grain size in micrometers, dislocation density in m^-2.
type Microstructure struct {
	bun.BaseModel `bun:"table:microstructures,alias:ms"`
	Meta

	Name                  string  `bun:"name,notnull,unique" json:"name"`
	GrainSize             float64 `bun:"grain_size,notnull" json:"grain_size"`
	CrystalStructure      string  `bun:"crystal_structure,notnull" json:"crystal_structure"`
	DislocationDensity    float64 `bun:"dislocation_density,notnull" json:"dislocation_density"`
	ImageFile             *string `bun:"image_file" json:"image_file,omitempty"`
	MaterialDescriptionID *int64  `bun:"material_description_id" json:"material_description_id,omitempty"`

	MaterialDescription *MaterialDescription `bun:"rel:belongs-to,join:material_description_id=id" json:"material_description,omitempty"`
}
