// Package srg_test provides a runnable example of seeded region growing.
package srg_test

import (
	"fmt"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/srg"
)

// ExampleGrower demonstrates growing a single seed over a sealed 2×2 ring
// of cells, cheapest boundary first.
func ExampleGrower() {
	// 1) Build the sealed ring: four cells around the center node, border
	//    protected.
	g, err := builder.RingMap()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Price the four interior boundaries; the border stays impassable.
	costs := map[int]float64{8: 1, 4: 2, 11: 1, 3: 3}
	cost := func(d core.Dart) (float64, bool) {
		c, ok := costs[d.EdgeLabel()]

		return c, ok
	}

	// 3) Seed the bottom-left cell and grow until nothing is left to absorb.
	g.Map.Face(1).SetFlag(core.SRGSeed)
	merges, err := srg.NewGrower(g.Map, cost).Grow()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) All three neighbors joined the seed region.
	fmt.Printf("merges=%d faces=%d\n", merges, g.Map.FaceCount())
	// Output: merges=3 faces=2
}
