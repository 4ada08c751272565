// SPDX-License-Identifier: MIT
//
// File: weight.go
// Role: Edge-weight selectors shared by distance algorithms.
// AI-HINT (file):
//   - A nil WeightFunc means unit weight; algorithms choose BFS for it.
//   - Attribute(name) mirrors the "missing attribute counts as 1" convention.

package core

// WeightFunc selects the distance contributed by traversing e.
// Implementations must be pure: they are called concurrently from many goroutines.
type WeightFunc func(e *Edge) float64

// defaultAttributeWeight is the weight of an edge lacking the selected attribute.
const defaultAttributeWeight = 1.0

// UnitWeight treats every edge as distance 1.
func UnitWeight(*Edge) float64 { return 1 }

// EdgeWeight reads Edge.Weight.
func EdgeWeight(e *Edge) float64 { return e.Weight }

// Attribute returns a WeightFunc reading the named edge attribute.
// Edges without that attribute weigh 1.
func Attribute(name string) WeightFunc {
	return func(e *Edge) float64 {
		if w, ok := e.Attrs[name]; ok {
			return w
		}

		return defaultAttributeWeight
	}
}
