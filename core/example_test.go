package core_test

import (
	"fmt"

	"github.com/katalvlaran/vitality/core"
)

// ExampleWithoutVertex shows the removal view leaving the source untouched.
func ExampleWithoutVertex() {
	// A triangle A-B-C plus a pendant D hanging off C.
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "A", 0)
	g.AddEdge("C", "D", 0)

	view, err := core.WithoutVertex(g, "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("view:", view.Vertices(), view.EdgeCount())
	fmt.Println("source:", g.Vertices(), g.EdgeCount())
	// Output:
	// view: [A B D] 1
	// source: [A B C D] 4
}
