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


package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelRegistryOrdersByPriority(t *testing.T) {
	r := NewModelRegistry()
	r.Register(
		NewModelAdapter("loads", 20),
		NewModelAdapter("fatigue_tests", 0),
		NewModelAdapter("load_modes", 0),
		NewModelAdapter("specimen_fatigue_tests", 10),
	)
	assert.Equal(t, []interface{}{"fatigue_tests", "load_modes", "specimen_fatigue_tests", "loads"}, r.Instances())
	assert.Len(t, r.Models(), 4)
}
