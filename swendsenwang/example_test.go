// File: swendsenwang/example_test.go
package swendsenwang_test

import (
	"fmt"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/rng"
	"github.com/katalvlaran/lvising/swendsenwang"
)

// ExampleAlgorithm_RunSweep builds clusters on a small striped lattice with
// p=1, where clusters are exactly the stripes (the torus joins the two
// edge columns into one stripe).
//
//	+ + - - +
//	+ + - - +
//	+ + - - +
func ExampleAlgorithm_RunSweep() {
	spins, _ := lattice.From2D([][]int{
		{1, 1, -1, -1, 1},
		{1, 1, -1, -1, 1},
		{1, 1, -1, -1, 1},
	})
	alg, _ := swendsenwang.New(3, 5, swendsenwang.DefaultOptions())

	energy, mag, _ := alg.RunSweep(spins, rng.New(1), 1)
	fmt.Println("energy:", energy, "magnetization:", mag)
	fmt.Println("clusters:", alg.Clusters())
	fmt.Println("(0,0) and (2,4) together:", alg.Cluster(0, 0) == alg.Cluster(2, 4))

	// Output:
	// energy: -18 magnetization: 3
	// clusters: 2
	// (0,0) and (2,4) together: true
}
