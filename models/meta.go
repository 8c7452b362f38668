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
	"time"

	"github.com/uptrace/bun"
)

// Meta is embedded by every entity. Entities must not declare their own
// BeforeAppendModel, it would hide this one.
type Meta struct {
	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

var _ bun.BeforeAppendModelHook = (*Meta)(nil)

// Now is the clock used for timestamps. Microsecond precision matches what
// PostgreSQL stores, so values survive a round trip unchanged.
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// BeforeAppendModel stamps both timestamps with one instant on insert and
// refreshes updated_at on update.
func (m *Meta) BeforeAppendModel(_ context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		if m.CreatedAt.IsZero() {
			m.CreatedAt = Now()
		}
		m.UpdatedAt = m.CreatedAt
	case *bun.UpdateQuery:
		m.UpdatedAt = Now()
	}
	return nil
}

func (m *Meta) GetID() int64 {
	return m.ID
}
