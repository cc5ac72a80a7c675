package grid

import (
	"runtime"
	"sync"
)

// MinChunk is the smallest number of cells handed to one worker. Grids no
// larger than this are evaluated on the calling goroutine.
const MinChunk = 4096

// ParallelFor executes fn over [0, n) split into contiguous chunks of at
// least minChunk elements.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.NumCPU()
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// Map returns f applied to every cell of a.
func Map(a *Grid, f func(a float64) float64) *Grid {
	out := &Grid{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	ParallelFor(len(out.data), MinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = f(a.data[i])
		}
	})
	return out
}

// Map2 applies f cell by cell. a and b must share a shape; callers validate
// with MatchShape or Broadcast first.
func Map2(a, b *Grid, f func(a, b float64) float64) *Grid {
	mustSameLen(a, b)
	out := &Grid{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	ParallelFor(len(out.data), MinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = f(a.data[i], b.data[i])
		}
	})
	return out
}

// Map3 is Map2 over three same-shape grids.
func Map3(a, b, c *Grid, f func(a, b, c float64) float64) *Grid {
	mustSameLen(a, b, c)
	out := &Grid{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	ParallelFor(len(out.data), MinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = f(a.data[i], b.data[i], c.data[i])
		}
	})
	return out
}

// Map4 is Map2 over four same-shape grids.
func Map4(a, b, c, d *Grid, f func(a, b, c, d float64) float64) *Grid {
	mustSameLen(a, b, c, d)
	out := &Grid{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	ParallelFor(len(out.data), MinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = f(a.data[i], b.data[i], c.data[i], d.data[i])
		}
	})
	return out
}

// mustSameLen guards the kernels against unvalidated input; it is a
// programmer error, not a user error.
func mustSameLen(gs ...*Grid) {
	for _, g := range gs[1:] {
		if g.r != gs[0].r || g.c != gs[0].c {
			panic("grid: kernel operands differ in shape: " + gs[0].Shape().String() + " vs " + g.Shape().String())
		}
	}
}
