package imgscale

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// RenderRowsParallel renders destination rows [firstRow, firstRow+numRows)
// across workers goroutines (runtime.GOMAXPROCS(0) if workers <= 0), each
// claiming rows one at a time from a shared atomic counter. Rows have no
// cross-row dependency in this package (unlike the teacher's macroblock
// prediction chain), so unlike encode_parallel.go's rowSync handshake no
// worker ever waits on another — the counter alone is enough to split the
// work evenly without a fixed static partition.
func (c *Context) RenderRowsParallel(firstRow, numRows, workers int) error {
	return c.renderRowsParallelTo(c.dst, firstRow, numRows, workers)
}

func (c *Context) renderRowsParallelTo(dst Buffer, firstRow, numRows, workers int) error {
	if numRows <= 0 {
		return nil
	}
	if dst.Width != c.dst.Width || dst.Height != c.dst.Height || dst.Format != c.dst.Format {
		return fmt.Errorf("imgscale: RenderRowsParallel buffer shape mismatch")
	}
	if firstRow < 0 || firstRow+numRows > dst.Height {
		return fmt.Errorf("imgscale: row range [%d,%d) out of bounds for height %d", firstRow, firstRow+numRows, dst.Height)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > numRows {
		workers = numRows
	}
	if workers <= 1 {
		return c.RenderRowsTo(dst, firstRow, numRows)
	}

	var nextRow atomic.Int32
	nextRow.Store(int32(firstRow))
	end := int32(firstRow + numRows)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			lc := newLocalContext(c)
			defer lc.release()
			for {
				y := nextRow.Add(1) - 1
				if y >= end {
					return
				}
				if err := c.renderRow(lc, dst, int(y)); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
