package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/skypath/bfs"
	"github.com/katalvlaran/skypath/builder"
	"github.com/katalvlaran/skypath/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 walkable grid.
func ExampleBFS_gridTraversal() {
	g := core.NewAdjacencyList[string](core.WithUndirected())
	ids, _ := builder.BuildGraph(g, nil, builder.Grid(3, 3))

	res, err := bfs.BFS(g, ids[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		label, _ := g.Vertex(v)
		d, _ := res.Depth(v)
		fmt.Printf("%s@%d ", label, d)
	}
	fmt.Println()
	// Output: 0,0@0 0,1@1 1,0@1 0,2@2 1,1@2 2,0@2 1,2@3 2,1@3 2,2@4
}
