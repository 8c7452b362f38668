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

type Medium struct {
	bun.BaseModel `bun:"table:mediums,alias:med"`
	Meta

	Description        string `bun:"description,notnull" json:"description"`
	ParamMediumMeaning string `bun:"param_medium_meaning,notnull" json:"param_medium_meaning"`

	Treatments []*Treatment `bun:"rel:has-many,join:id=medium_id" json:"treatments,omitempty"`
}

type Environment struct {
	bun.BaseModel `bun:"table:environments,alias:env"`
	Meta

	Description             string `bun:"description,notnull" json:"description"`
	ParamEnvironmentMeaning string `bun:"param_environment_meaning,notnull" json:"param_environment_meaning"`

	Treatments []*Treatment `bun:"rel:has-many,join:id=environment_id" json:"treatments,omitempty"`
}

// TreatmentProcess labels what the numbered parameters of its treatments mean.
type TreatmentProcess struct {
	bun.BaseModel `bun:"table:treatment_processes,alias:tp"`
	Meta

	TreatmentProcessType string  `bun:"treatment_process_type,notnull" json:"treatment_process_type"`
	Param1Meaning        *string `bun:"param1_meaning" json:"param1_meaning,omitempty"`
	Param2Meaning        *string `bun:"param2_meaning" json:"param2_meaning,omitempty"`
	Param3Meaning        *string `bun:"param3_meaning" json:"param3_meaning,omitempty"`
	Param4Meaning        *string `bun:"param4_meaning" json:"param4_meaning,omitempty"`

	Treatments []*Treatment `bun:"rel:has-many,join:id=treatment_process_id" json:"treatments,omitempty"`
}

// Treatment is one ordered step applied to a semi-product.
type Treatment struct {
	bun.BaseModel `bun:"table:treatments,alias:tr"`
	Meta

	OrderNumber        int      `bun:"order_number,notnull" json:"order_number"`
	Param1             *float64 `bun:"param1" json:"param1,omitempty"`
	Param2             *float64 `bun:"param2" json:"param2,omitempty"`
	Param3             *float64 `bun:"param3" json:"param3,omitempty"`
	Param4             *float64 `bun:"param4" json:"param4,omitempty"`
	ParamEnvironment   *float64 `bun:"param_environment" json:"param_environment,omitempty"`
	ParamMedium        *float64 `bun:"param_medium" json:"param_medium,omitempty"`
	SemiProductID      int64    `bun:"semi_product_id,notnull" json:"semi_product_id"`
	TreatmentProcessID int64    `bun:"treatment_process_id,notnull" json:"treatment_process_id"`
	EnvironmentID      int64    `bun:"environment_id,notnull" json:"environment_id"`
	MediumID           int64    `bun:"medium_id,notnull" json:"medium_id"`

	SemiProduct      *SemiProduct      `bun:"rel:belongs-to,join:semi_product_id=id" json:"semi_product,omitempty"`
	TreatmentProcess *TreatmentProcess `bun:"rel:belongs-to,join:treatment_process_id=id" json:"treatment_process,omitempty"`
	Environment      *Environment      `bun:"rel:belongs-to,join:environment_id=id" json:"environment,omitempty"`
	Medium           *Medium           `bun:"rel:belongs-to,join:medium_id=id" json:"medium,omitempty"`
}

type HardnessType struct {
	bun.BaseModel `bun:"table:hardness_types,alias:ht"`
	Meta

	Name string `bun:"name,notnull,unique" json:"name"`

	Hardness []*Hardness `bun:"rel:has-many,join:id=hardness_type_id" json:"hardness,omitempty"`
}

type Hardness struct {
	bun.BaseModel `bun:"table:hardness,alias:hd"`
	Meta

	Position       *string `bun:"position" json:"position,omitempty"`
	Value          float64 `bun:"value,notnull" json:"value"`
	SemiProductID  int64   `bun:"semi_product_id,notnull" json:"semi_product_id"`
	HardnessTypeID int64   `bun:"hardness_type_id,notnull" json:"hardness_type_id"`

	SemiProduct  *SemiProduct  `bun:"rel:belongs-to,join:semi_product_id=id" json:"semi_product,omitempty"`
	HardnessType *HardnessType `bun:"rel:belongs-to,join:hardness_type_id=id" json:"hardness_type,omitempty"`
}
