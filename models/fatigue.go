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

type FatigueTest struct {
	bun.BaseModel `bun:"table:fatigue_tests,alias:ft"`
	Meta

	Description string `bun:"description,notnull" json:"description"`

	SpecimenFatigueTests []*SpecimenFatigueTest `bun:"rel:has-many,join:id=fatigue_test_id" json:"specimen_fatigue_tests,omitempty"`
	Loads                []*Load                `bun:"rel:has-many,join:id=fatigue_test_id" json:"loads,omitempty"`
}

// SpecimenFatigueTest is the outcome of running one specimen instance in a
// fatigue test. A nil IsValid takes the column default of true on insert and
// is filled in from the returned row.
type SpecimenFatigueTest struct {
	bun.BaseModel `bun:"table:specimen_fatigue_tests,alias:sft"`
	Meta

	StressLevel               float64 `bun:"stress_level,notnull" json:"stress_level"`
	NumberOfCyclesAtEndOfTest int64   `bun:"number_of_cycles_at_end_of_test,notnull" json:"number_of_cycles_at_end_of_test"`
	NumberOfCyclesAtBreak     int64   `bun:"number_of_cycles_at_break,notnull" json:"number_of_cycles_at_break"`
	IsRunOut                  bool    `bun:"is_run_out,notnull,default:false" json:"is_run_out"`
	IsValid                   *bool   `bun:"is_valid,notnull,default:true" json:"is_valid"`
	Commentary                *string `bun:"commentary" json:"commentary,omitempty"`
	Visuals                   *string `bun:"visuals" json:"visuals,omitempty"`
	SpecimenInstanceID        int64   `bun:"specimen_instance_id,notnull" json:"specimen_instance_id"`
	FatigueTestID             int64   `bun:"fatigue_test_id,notnull" json:"fatigue_test_id"`

	SpecimenInstance *SpecimenInstance `bun:"rel:belongs-to,join:specimen_instance_id=id" json:"specimen_instance,omitempty"`
	FatigueTest      *FatigueTest      `bun:"rel:belongs-to,join:fatigue_test_id=id" json:"fatigue_test,omitempty"`
}

type LoadMode struct {
	bun.BaseModel `bun:"table:load_modes,alias:lm"`
	Meta

	Param1Meaning string  `bun:"param1_meaning,notnull" json:"param1_meaning"`
	Param2Meaning *string `bun:"param2_meaning" json:"param2_meaning,omitempty"`
	Param3Meaning *string `bun:"param3_meaning" json:"param3_meaning,omitempty"`

	Loads []*Load `bun:"rel:has-many,join:id=load_mode_id" json:"loads,omitempty"`
}

type LoadSignal struct {
	bun.BaseModel `bun:"table:load_signals,alias:ls"`
	Meta

	Param1Meaning string  `bun:"param1_meaning,notnull" json:"param1_meaning"`
	Param2Meaning *string `bun:"param2_meaning" json:"param2_meaning,omitempty"`
	Param3Meaning *string `bun:"param3_meaning" json:"param3_meaning,omitempty"`

	Loads []*Load `bun:"rel:has-many,join:id=load_signal_id" json:"loads,omitempty"`
}

// Load is one ordered block of a fatigue test's load sequence. Signal and mode
// parameters follow the meanings of the referenced LoadSignal and LoadMode.
type Load struct {
	bun.BaseModel `bun:"table:loads,alias:ld"`
	Meta

	OrderNumber      int      `bun:"order_number,notnull" json:"order_number"`
	RepetitionsCount int64    `bun:"repetitions_count,notnull" json:"repetitions_count"`
	Failure          bool     `bun:"failure,notnull,default:false" json:"failure"`
	Param1Signal     float64  `bun:"param1_signal,notnull" json:"param1_signal"`
	Param2Signal     *float64 `bun:"param2_signal" json:"param2_signal,omitempty"`
	Param3Signal     *float64 `bun:"param3_signal" json:"param3_signal,omitempty"`
	Param1Mode       *float64 `bun:"param1_mode" json:"param1_mode,omitempty"`
	Param2Mode       *float64 `bun:"param2_mode" json:"param2_mode,omitempty"`
	Param3Mode       *float64 `bun:"param3_mode" json:"param3_mode,omitempty"`
	FatigueTestID    int64    `bun:"fatigue_test_id,notnull" json:"fatigue_test_id"`
	LoadModeID       int64    `bun:"load_mode_id,notnull" json:"load_mode_id"`
	LoadSignalID     int64    `bun:"load_signal_id,notnull" json:"load_signal_id"`

	FatigueTest *FatigueTest `bun:"rel:belongs-to,join:fatigue_test_id=id" json:"fatigue_test,omitempty"`
	LoadMode    *LoadMode    `bun:"rel:belongs-to,join:load_mode_id=id" json:"load_mode,omitempty"`
	LoadSignal  *LoadSignal  `bun:"rel:belongs-to,join:load_signal_id=id" json:"load_signal,omitempty"`
}
