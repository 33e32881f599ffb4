// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/phonxs/grid"
)

// ExampleLogspace shows a three-decade grid with one point per decade.
func ExampleLogspace() {
	g, err := grid.Logspace(0.001, 1, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range g {
		fmt.Printf("%.3g\n", e)
	}
	// Output:
	// 0.001
	// 0.01
	// 0.1
	// 1
}
