// SPDX-License-Identifier: MIT

package curve_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCurve_ConcurrentQueries hammers one finalized curve from several
// goroutines; run with -race to catch hidden mutation.
func TestCurve_ConcurrentQueries(t *testing.T) {
	energies := testGrid(t)
	c := finalize(t, energies, cropFixture(energies), testSaturation)

	probe := make([]float64, 0, 512)
	for i := 0; i < 512; i++ {
		probe = append(probe, 1e-7*float64(i+1)*float64(i+1))
	}
	want := c.XSMany(nil, probe)

	const workers = 8
	results := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]float64, len(probe))
			for i, e := range probe {
				out[i] = c.XS(e)
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	for w := range results {
		require.Equal(t, want, results[w], "worker %d", w)
	}
}
