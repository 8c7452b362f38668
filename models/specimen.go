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

// SpecimenType labels what the twelve numbered parameters of its specimens
// mean. Only the first label is mandatory.
type SpecimenType struct {
	bun.BaseModel `bun:"table:specimen_types,alias:st"`
	Meta

	Param1Meaning  string  `bun:"param1_meaning,notnull" json:"param1_meaning"`
	Param2Meaning  *string `bun:"param2_meaning" json:"param2_meaning,omitempty"`
	Param3Meaning  *string `bun:"param3_meaning" json:"param3_meaning,omitempty"`
	Param4Meaning  *string `bun:"param4_meaning" json:"param4_meaning,omitempty"`
	Param5Meaning  *string `bun:"param5_meaning" json:"param5_meaning,omitempty"`
	Param6Meaning  *string `bun:"param6_meaning" json:"param6_meaning,omitempty"`
	Param7Meaning  *string `bun:"param7_meaning" json:"param7_meaning,omitempty"`
	Param8Meaning  *string `bun:"param8_meaning" json:"param8_meaning,omitempty"`
	Param9Meaning  *string `bun:"param9_meaning" json:"param9_meaning,omitempty"`
	Param10Meaning *string `bun:"param10_meaning" json:"param10_meaning,omitempty"`
	Param11Meaning *string `bun:"param11_meaning" json:"param11_meaning,omitempty"`
	Param12Meaning *string `bun:"param12_meaning" json:"param12_meaning,omitempty"`
	DrawingFile    *string `bun:"drawing_file" json:"drawing_file,omitempty"`

	Specimens []*Specimen `bun:"rel:has-many,join:id=specimen_type_id" json:"specimens,omitempty"`
}

// SpecimenLocation holds one LocationKind name. The rows are seeded by
// migration.
type SpecimenLocation struct {
	bun.BaseModel `bun:"table:specimen_locations,alias:sl"`
	Meta

	Location string `bun:"location,notnull,unique" json:"location"`

	Specimens []*Specimen `bun:"rel:has-many,join:id=specimen_location_id" json:"specimens,omitempty"`
}

func (l *SpecimenLocation) Kind() (LocationKind, error) {
	return ParseLocationKind(l.Location)
}

// SpecimenOrientation holds one OrientationKind name. The rows are seeded by
// migration.
type SpecimenOrientation struct {
	bun.BaseModel `bun:"table:specimen_orientations,alias:so"`
	Meta

	Orientation string `bun:"orientation,notnull,unique" json:"orientation"`

	Specimens []*Specimen `bun:"rel:has-many,join:id=specimen_orientation_id" json:"specimens,omitempty"`
}

func (o *SpecimenOrientation) Kind() (OrientationKind, error) {
	return ParseOrientationKind(o.Orientation)
}

type StressConcentrationFactor struct {
	bun.BaseModel `bun:"table:stress_concentration_factors,alias:scf"`
	Meta

	SCF        string  `bun:"scf,notnull" json:"scf"`
	Value      float64 `bun:"value,notnull" json:"value"`
	Origin     *string `bun:"origin" json:"origin,omitempty"`
	SpecimenID int64   `bun:"specimen_id,notnull" json:"specimen_id"`

	Specimen *Specimen `bun:"rel:belongs-to,join:specimen_id=id" json:"specimen,omitempty"`
}

func (f *StressConcentrationFactor) Kind() (SCFKind, error) {
	return ParseSCFKind(f.SCF)
}

// Specimen is a specimen design: geometry parameters whose meanings come from
// its type, plus where and how it is cut from the semi-product.
type Specimen struct {
	bun.BaseModel `bun:"table:specimens,alias:spc"`
	Meta

	Position              string   `bun:"position,notnull" json:"position"`
	Param1                float64  `bun:"param1,notnull" json:"param1"`
	Param2                *float64 `bun:"param2" json:"param2,omitempty"`
	Param3                *float64 `bun:"param3" json:"param3,omitempty"`
	Param4                *float64 `bun:"param4" json:"param4,omitempty"`
	Param5                *float64 `bun:"param5" json:"param5,omitempty"`
	Param6                *float64 `bun:"param6" json:"param6,omitempty"`
	Param7                *float64 `bun:"param7" json:"param7,omitempty"`
	Param8                *float64 `bun:"param8" json:"param8,omitempty"`
	Param9                *float64 `bun:"param9" json:"param9,omitempty"`
	Param10               *float64 `bun:"param10" json:"param10,omitempty"`
	Param11               *float64 `bun:"param11" json:"param11,omitempty"`
	Param12               *float64 `bun:"param12" json:"param12,omitempty"`
	LayoutFile            *string  `bun:"layout_file" json:"layout_file,omitempty"`
	DrawingFile           *string  `bun:"drawing_file" json:"drawing_file,omitempty"`
	SpecimenTypeID        int64    `bun:"specimen_type_id,notnull" json:"specimen_type_id"`
	SpecimenOrientationID int64    `bun:"specimen_orientation_id,notnull" json:"specimen_orientation_id"`
	SpecimenLocationID    int64    `bun:"specimen_location_id,notnull" json:"specimen_location_id"`

	SpecimenType               *SpecimenType                `bun:"rel:belongs-to,join:specimen_type_id=id" json:"specimen_type,omitempty"`
	SpecimenOrientation        *SpecimenOrientation         `bun:"rel:belongs-to,join:specimen_orientation_id=id" json:"specimen_orientation,omitempty"`
	SpecimenLocation           *SpecimenLocation            `bun:"rel:belongs-to,join:specimen_location_id=id" json:"specimen_location,omitempty"`
	SpecimenInstances          []*SpecimenInstance          `bun:"rel:has-many,join:id=specimen_id" json:"specimen_instances,omitempty"`
	StressConcentrationFactors []*StressConcentrationFactor `bun:"rel:has-many,join:id=specimen_id" json:"stress_concentration_factors,omitempty"`
	SurfaceRoughness           []*SurfaceRoughness          `bun:"rel:has-many,join:id=specimen_id" json:"surface_roughness,omitempty"`
}

// SurfaceRoughnessType has no descriptive columns yet.
type SurfaceRoughnessType struct {
	bun.BaseModel `bun:"table:surface_roughness_types,alias:srt"`
	Meta

	SurfaceRoughness []*SurfaceRoughness `bun:"rel:has-many,join:id=surface_roughness_type_id" json:"surface_roughness,omitempty"`
}

// SurfaceRoughness belongs to a specimen design and, when measured on a
// physical piece, to that specimen instance as well.
type SurfaceRoughness struct {
	bun.BaseModel `bun:"table:surface_roughness,alias:sr"`
	Meta

	Value                  float64 `bun:"value,notnull" json:"value"`
	SpecimenID             int64   `bun:"specimen_id,notnull" json:"specimen_id"`
	SpecimenInstanceID     *int64  `bun:"specimen_instance_id" json:"specimen_instance_id,omitempty"`
	SurfaceRoughnessTypeID int64   `bun:"surface_roughness_type_id,notnull" json:"surface_roughness_type_id"`

	Specimen             *Specimen             `bun:"rel:belongs-to,join:specimen_id=id" json:"specimen,omitempty"`
	SpecimenInstance     *SpecimenInstance     `bun:"rel:belongs-to,join:specimen_instance_id=id" json:"specimen_instance,omitempty"`
	SurfaceRoughnessType *SurfaceRoughnessType `bun:"rel:belongs-to,join:surface_roughness_type_id=id" json:"surface_roughness_type,omitempty"`
}

// SpecimenInstance is one physical piece manufactured to a specimen design.
type SpecimenInstance struct {
	bun.BaseModel `bun:"table:specimen_instances,alias:si"`
	Meta

	InstanceNumber int   `bun:"instance_number,notnull" json:"instance_number"`
	SpecimenID     int64 `bun:"specimen_id,notnull" json:"specimen_id"`

	Specimen             *Specimen              `bun:"rel:belongs-to,join:specimen_id=id" json:"specimen,omitempty"`
	SpecimenFatigueTests []*SpecimenFatigueTest `bun:"rel:has-many,join:id=specimen_instance_id" json:"specimen_fatigue_tests,omitempty"`
	SurfaceRoughness     []*SurfaceRoughness    `bun:"rel:has-many,join:id=specimen_instance_id" json:"surface_roughness,omitempty"`
}
