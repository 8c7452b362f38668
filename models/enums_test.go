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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/faber/types"
)

func TestParseLocationKind(t *testing.T) {
	k, err := ParseLocationKind("core")
	require.NoError(t, err)
	assert.Equal(t, LocationCore, k)
	assert.Equal(t, 2, k.Number())
	assert.Equal(t, "Core", k.String())

	_, err = ParseLocationKind("Edge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Surface")
}

func TestParseOrientationKind(t *testing.T) {
	for _, name := range []string{"Horizontal", "Vertical", "Inclined", "Random"} {
		k, err := ParseOrientationKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name())
	}
	_, err := ParseOrientationKind("Diagonal")
	assert.Error(t, err)
}

func TestParseSCFKind(t *testing.T) {
	assert.Len(t, SCFKinds(), 5)
	k, err := ParseSCFKind("THREAD")
	require.NoError(t, err)
	assert.Equal(t, SCFThread, k)

	_, err = ParseSCFKind("")
	assert.Error(t, err)
}

func TestInvalidKinds(t *testing.T) {
	for _, k := range []types.BaseEnum{LocationKind(0), OrientationKind(9), SCFKind(-1)} {
		assert.False(t, k.IsValid())
		assert.Equal(t, types.IllegalValue, k.Number())
		assert.Equal(t, types.IllegalName, k.Name())
		assert.Equal(t, types.IllegalDesc, k.Desc())
	}
}

func TestEntityKinds(t *testing.T) {
	loc, err := (&SpecimenLocation{Location: "Interior"}).Kind()
	require.NoError(t, err)
	assert.Equal(t, LocationInterior, loc)

	_, err = (&SpecimenOrientation{Orientation: "sideways"}).Kind()
	assert.Error(t, err)

	scf, err := (&StressConcentrationFactor{SCF: "Notch"}).Kind()
	require.NoError(t, err)
	assert.Equal(t, SCFNotch, scf)
}
