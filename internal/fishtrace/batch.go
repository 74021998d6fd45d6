package fishtrace

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Result holds the outcome of solving one line set.
type Result struct {
	Name     string
	Point    Point3
	Residual Real
	Dists    []Real // perpendicular distance from the solved point to each line
	Err      string // empty on success
}

// solveSet builds and solves one configured set.
func solveSet(sc SetCfg) Result {
	lines, err := sc.Build()
	if err == nil {
		var p Point3
		var residual Real
		p, residual, err = ClosestPoint(lines)
		if err == nil {
			dists := make([]Real, len(lines))
			for i, l := range lines {
				dists[i] = l.DistToPoint(p)
			}
			logSolve(sc.Name, Solved, p, residual, len(lines))
			return Result{Name: sc.Name, Point: p, Residual: residual, Dists: dists}
		}
	}
	cat := Invalid
	if errors.Is(err, ErrDegenerateConfiguration) {
		cat = Degenerate
	}
	logSolve(sc.Name, cat, Point3{}, 0, len(sc.Lines))
	return Result{Name: sc.Name, Err: err.Error()}
}

// SolveAll solves every configured set using a worker pool. Results are
// indexed by input order, so the output is deterministic regardless of
// worker scheduling.
func SolveAll(cfg *Config) []Result {
	total := len(cfg.Sets)
	results := make([]Result, total)
	workers := imax(1, cfg.Workers)
	if workers > total {
		workers = total
	}

	var counter int64
	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = int64(total / 100)
	}

	idxChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range idxChan {
				results[idx] = solveSet(cfg.Sets[idx])
				done := atomic.AddInt64(&counter, 1)
				if total >= 100 && done%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", float64(done)*100/float64(total))
				}
			}
		}()
	}
	for i := 0; i < total; i++ {
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()
	return results
}
