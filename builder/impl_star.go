// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

// Star builds a star with hub CenterVertexID and leaves idFn(1..n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addBoth(g, methodStar, CenterVertexID, leaf, cfg.edgeWeight(g.Weighted())); err != nil {
				return err
			}
		}

		return nil
	}
}
