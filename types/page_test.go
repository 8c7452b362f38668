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


package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestClamping(t *testing.T) {
	p := NewDefaultPageRequest(0, 0)
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, DefaultPageSize, p.GetPageSize())
	assert.Equal(t, 0, p.GetOffset())

	p = NewDefaultPageRequest(3, 5000)
	assert.Equal(t, MaxPageSize, p.GetPageSize())
	assert.Equal(t, 2*MaxPageSize, p.GetOffset())
}

func TestPageRequestParts(t *testing.T) {
	f := NewQueryFilter("name = ?", "Metals")
	p := NewPageRequest(1, 10, f, []string{"name DESC"})
	assert.Same(t, f, p.GetFilter())
	assert.Equal(t, []string{"name DESC"}, p.GetOrders())
	assert.Equal(t, []interface{}{"Metals"}, p.GetFilter().Args)

	assert.Nil(t, NewPageRequestWithOrders(1, 10, nil).GetFilter())
	assert.Nil(t, NewPageRequestWithFilter(1, 10, f).GetOrders())
}

func TestPagination(t *testing.T) {
	p := NewDefaultPagination[string](1, 10)
	assert.Zero(t, p.TotalPages())
	assert.False(t, p.HasNext())
	assert.NotNil(t, p.Items)

	p.Total = 21
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.False(t, p.HasNext())
}
