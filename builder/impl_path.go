// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: vertices idFn(0..n-1), edges (i-1)-i.
// Every inner vertex of a path is an articulation point.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n, cfg); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addBoth(g, methodPath, cfg.idFn(i-1), cfg.idFn(i), cfg.edgeWeight(g.Weighted())); err != nil {
				return err
			}
		}

		return nil
	}
}
