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

import "github.com/tomoncle/faber/types"

// LocationKind is where on the semi-product a specimen was taken.
type LocationKind int

const (
	LocationSurface LocationKind = iota + 1
	LocationCore
	LocationInterior
	LocationExterior
)

var locationNames = map[LocationKind]string{
	LocationSurface:  "Surface",
	LocationCore:     "Core",
	LocationInterior: "Interior",
	LocationExterior: "Exterior",
}

var _ types.BaseEnum = LocationKind(0)

// LocationKinds lists every location in declaration order.
func LocationKinds() []LocationKind {
	return []LocationKind{LocationSurface, LocationCore, LocationInterior, LocationExterior}
}

func ParseLocationKind(s string) (LocationKind, error) {
	return types.ParseEnum(LocationKinds(), s)
}

func (k LocationKind) IsValid() bool {
	_, ok := locationNames[k]
	return ok
}

func (k LocationKind) Number() int {
	if !k.IsValid() {
		return types.IllegalValue
	}
	return int(k)
}

func (k LocationKind) Name() string {
	if n, ok := locationNames[k]; ok {
		return n
	}
	return types.IllegalName
}

func (k LocationKind) String() string { return k.Name() }

func (k LocationKind) Desc() string {
	if !k.IsValid() {
		return types.IllegalDesc
	}
	return "specimen location " + k.Name()
}

// OrientationKind is the direction of a specimen relative to the semi-product.
type OrientationKind int

const (
	OrientationHorizontal OrientationKind = iota + 1
	OrientationVertical
	OrientationInclined
	OrientationRandom
)

var orientationNames = map[OrientationKind]string{
	OrientationHorizontal: "Horizontal",
	OrientationVertical:   "Vertical",
	OrientationInclined:   "Inclined",
	OrientationRandom:     "Random",
}

var _ types.BaseEnum = OrientationKind(0)

func OrientationKinds() []OrientationKind {
	return []OrientationKind{OrientationHorizontal, OrientationVertical, OrientationInclined, OrientationRandom}
}

func ParseOrientationKind(s string) (OrientationKind, error) {
	return types.ParseEnum(OrientationKinds(), s)
}

func (k OrientationKind) IsValid() bool {
	_, ok := orientationNames[k]
	return ok
}

func (k OrientationKind) Number() int {
	if !k.IsValid() {
		return types.IllegalValue
	}
	return int(k)
}

func (k OrientationKind) Name() string {
	if n, ok := orientationNames[k]; ok {
		return n
	}
	return types.IllegalName
}

func (k OrientationKind) String() string { return k.Name() }

func (k OrientationKind) Desc() string {
	if !k.IsValid() {
		return types.IllegalDesc
	}
	return "specimen orientation " + k.Name()
}

// SCFKind is the geometric feature a stress concentration factor belongs to.
type SCFKind int

const (
	SCFNotch SCFKind = iota + 1
	SCFHole
	SCFCorner
	SCFThread
	SCFFillet
)

var scfNames = map[SCFKind]string{
	SCFNotch:  "Notch",
	SCFHole:   "Hole",
	SCFCorner: "Corner",
	SCFThread: "Thread",
	SCFFillet: "Fillet",
}

var _ types.BaseEnum = SCFKind(0)

func SCFKinds() []SCFKind {
	return []SCFKind{SCFNotch, SCFHole, SCFCorner, SCFThread, SCFFillet}
}

func ParseSCFKind(s string) (SCFKind, error) {
	return types.ParseEnum(SCFKinds(), s)
}

func (k SCFKind) IsValid() bool {
	_, ok := scfNames[k]
	return ok
}

func (k SCFKind) Number() int {
	if !k.IsValid() {
		return types.IllegalValue
	}
	return int(k)
}

func (k SCFKind) Name() string {
	if n, ok := scfNames[k]; ok {
		return n
	}
	return types.IllegalName
}

func (k SCFKind) String() string { return k.Name() }

func (k SCFKind) Desc() string {
	if !k.IsValid() {
		return types.IllegalDesc
	}
	return "stress concentration at a " + k.Name()
}
