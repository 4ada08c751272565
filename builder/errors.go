// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed is returned for a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology is returned by Topology for an unregistered name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
