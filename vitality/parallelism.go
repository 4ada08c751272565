// SPDX-License-Identifier: MIT

package vitality

import "runtime"

// numUnits reports available execution units; queried on every call.
var numUnits = runtime.NumCPU

// Workers resolves a requested parallelism to a worker count against the
// units available right now.
func Workers(requested int) int {
	return resolveParallelism(requested, numUnits())
}

func resolveParallelism(requested, units int) int {
	if units < 1 {
		units = 1
	}

	n := requested
	switch {
	case n > units:
		return units
	case n < -units:
		// Clamped to the unit count itself, as for a large positive request.
		return units
	}

	switch {
	case n > 0:
		return n
	case n < 0:
		return max(1, units+1+n)
	default:
		return units
	}
}
