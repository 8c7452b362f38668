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

// Shape names the dimensions of the semi-products cut to it.
type Shape struct {
	bun.BaseModel `bun:"table:shapes,alias:sh"`
	Meta

	ShapeType         string  `bun:"shape_type,notnull" json:"shape_type"`
	Dimension1Meaning string  `bun:"dimension1_meaning,notnull" json:"dimension1_meaning"`
	Dimension2Meaning *string `bun:"dimension2_meaning" json:"dimension2_meaning,omitempty"`
	Dimension3Meaning *string `bun:"dimension3_meaning" json:"dimension3_meaning,omitempty"`
	Dimension4Meaning *string `bun:"dimension4_meaning" json:"dimension4_meaning,omitempty"`
	DrawingFile       *string `bun:"drawing_file" json:"drawing_file,omitempty"`

	SemiProduct *SemiProduct `bun:"rel:has-one,join:id=shape_id" json:"semi_product,omitempty"`
}

// SemiProduct is the bar or plate specimens are machined from. Dimensions
// follow the meanings declared by its shape.
type SemiProduct struct {
	bun.BaseModel `bun:"table:semi_products,alias:sp"`
	Meta

	Dimension1            float64  `bun:"dimension1,notnull" json:"dimension1"`
	Dimension2            *float64 `bun:"dimension2" json:"dimension2,omitempty"`
	Dimension3            *float64 `bun:"dimension3" json:"dimension3,omitempty"`
	Dimension4            *float64 `bun:"dimension4" json:"dimension4,omitempty"`
	MaterialDescriptionID int64    `bun:"material_description_id,notnull" json:"material_description_id"`
	ShapeID               int64    `bun:"shape_id,notnull" json:"shape_id"`

	MaterialDescription *MaterialDescription `bun:"rel:belongs-to,join:material_description_id=id" json:"material_description,omitempty"`
	Shape               *Shape               `bun:"rel:belongs-to,join:shape_id=id" json:"shape,omitempty"`
	Hardness            []*Hardness          `bun:"rel:has-many,join:id=semi_product_id" json:"hardness,omitempty"`
	Treatments          []*Treatment         `bun:"rel:has-many,join:id=semi_product_id" json:"treatments,omitempty"`
}
