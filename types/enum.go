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
	"fmt"
	"strings"
)

// Common illegal/default values used by enums.
const (
	IllegalValue = -1
	IllegalName  = "unknown"
	IllegalDesc  = "unknown"
)

// BaseEnum is the contract of the fixed vocabularies stored as text columns.
// Name is the stored value.
type BaseEnum interface {
	IsValid() bool
	Number() int
	String() string
	Desc() string
	Name() string
}

// ParseEnum returns the member of values whose Name matches s, ignoring case
// and surrounding blanks.
func ParseEnum[E BaseEnum](values []E, s string) (E, error) {
	needle := strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(v.Name(), needle) {
			return v, nil
		}
	}
	var zero E
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name()
	}
	return zero, fmt.Errorf("invalid value %q, expected one of %s", s, strings.Join(names, ", "))
}

// EnumNames lists the stored values of an enum in declaration order.
func EnumNames[E BaseEnum](values []E) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name()
	}
	return names
}
