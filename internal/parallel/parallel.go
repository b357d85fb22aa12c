package parallel

import (
	"runtime"
	"sync"
)

// MinChunk is the smallest range handed to a single worker. Ranges shorter
// than this run on the calling goroutine.
const MinChunk = 4096

// For splits [0, n) into contiguous chunks and runs fn on each chunk,
// returning once every chunk is done. Chunks never overlap, so fn may write
// to disjoint parts of a shared output slice without locking.
func For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if limit := (n + MinChunk - 1) / MinChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
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
