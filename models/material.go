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

type MaterialStandardName struct {
	bun.BaseModel `bun:"table:material_standard_names,alias:msn"`
	Meta

	Name string `bun:"name,notnull,unique" json:"name"`

	MaterialDescriptions []*MaterialDescription `bun:"rel:has-many,join:id=material_standard_name_id" json:"material_descriptions,omitempty"`
}

type MaterialCategory struct {
	bun.BaseModel `bun:"table:material_categories,alias:mc"`
	Meta

	Name string `bun:"name,notnull,unique" json:"name"`

	MaterialSubCategories []*MaterialSubCategory `bun:"rel:has-many,join:id=material_category_id" json:"material_subcategories,omitempty"`
	MaterialDescriptions  []*MaterialDescription `bun:"rel:has-many,join:id=material_category_id" json:"material_descriptions,omitempty"`
}

type MaterialSubCategory struct {
	bun.BaseModel `bun:"table:material_subcategories,alias:msc"`
	Meta

	Name               string `bun:"name,notnull,unique" json:"name"`
	MaterialCategoryID int64  `bun:"material_category_id,notnull" json:"material_category_id"`

	MaterialCategory     *MaterialCategory      `bun:"rel:belongs-to,join:material_category_id=id" json:"material_category,omitempty"`
	MaterialDescriptions []*MaterialDescription `bun:"rel:has-many,join:id=material_subcategory_id" json:"material_descriptions,omitempty"`
}

// MaterialDescription is the hub of the material side of the schema. Deleting
// it removes its compositions, parameters, microstructure and semi-product.
type MaterialDescription struct {
	bun.BaseModel `bun:"table:material_descriptions,alias:md"`
	Meta

	Name                   string  `bun:"name,notnull" json:"name"`
	Group                  *string `bun:"group" json:"group,omitempty"`
	MaterialStandardNameID int64   `bun:"material_standard_name_id,notnull" json:"material_standard_name_id"`
	MaterialCategoryID     int64   `bun:"material_category_id,notnull" json:"material_category_id"`
	MaterialSubCategoryID  int64   `bun:"material_subcategory_id,notnull" json:"material_subcategory_id"`

	MaterialStandardName *MaterialStandardName  `bun:"rel:belongs-to,join:material_standard_name_id=id" json:"material_standard_name,omitempty"`
	MaterialCategory     *MaterialCategory      `bun:"rel:belongs-to,join:material_category_id=id" json:"material_category,omitempty"`
	MaterialSubCategory  *MaterialSubCategory   `bun:"rel:belongs-to,join:material_subcategory_id=id" json:"material_subcategory,omitempty"`
	ChemicalCompositions []*ChemicalComposition `bun:"rel:has-many,join:id=material_description_id" json:"chemical_compositions,omitempty"`
	MaterialParameters   []*MaterialParameter   `bun:"rel:has-many,join:id=material_description_id" json:"material_parameters,omitempty"`
	Microstructure       *Microstructure        `bun:"rel:has-one,join:id=material_description_id" json:"microstructure,omitempty"`
	SemiProduct          *SemiProduct           `bun:"rel:has-one,join:id=material_description_id" json:"semi_product,omitempty"`
}

type MaterialParameterName struct {
	bun.BaseModel `bun:"table:material_parameter_names,alias:mpn"`
	Meta

	Name string `bun:"name,notnull,unique" json:"name"`
	Unit string `bun:"unit,notnull" json:"unit"`

	MaterialParameters []*MaterialParameter `bun:"rel:has-many,join:id=material_parameter_name_id" json:"material_parameters,omitempty"`
}

// MaterialParameter stores its value as free text, units included.
type MaterialParameter struct {
	bun.BaseModel `bun:"table:material_parameters,alias:mp"`
	Meta

	Value                   string  `bun:"value,notnull" json:"value"`
	Commentary              *string `bun:"commentary" json:"commentary,omitempty"`
	MaterialDescriptionID   int64   `bun:"material_description_id,notnull" json:"material_description_id"`
	MaterialParameterNameID int64   `bun:"material_parameter_name_id,notnull" json:"material_parameter_name_id"`

	MaterialDescription   *MaterialDescription   `bun:"rel:belongs-to,join:material_description_id=id" json:"material_description,omitempty"`
	MaterialParameterName *MaterialParameterName `bun:"rel:belongs-to,join:material_parameter_name_id=id" json:"material_parameter_name,omitempty"`
}
