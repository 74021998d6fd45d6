package fishtrace

import (
	"fmt"
	"sync"
)

type Category uint8

const (
	Solved     Category = iota // unique minimizer found
	Degenerate                 // singular system (e.g. all lines parallel)
	Invalid                    // malformed input (too few lines, zero direction)
)

func (c Category) String() string {
	switch c {
	case Solved:
		return "solved"
	case Degenerate:
		return "degenerate"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

type SolveLog struct {
	Name     string
	Category Category
	Point    Point3 // solved point, if any
	Residual Real
	Lines    int // number of input lines
}

type SolveLogCache struct {
	mu     sync.Mutex
	solves map[Category][]SolveLog
}

var cache = &SolveLogCache{
	solves: make(map[Category][]SolveLog),
}

func logSolve(name string, category Category, point Point3, residual Real, lines int) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.solves[category] = append(cache.solves[category], SolveLog{
		Name:     name,
		Category: category,
		Point:    point,
		Residual: residual,
		Lines:    lines,
	})
}

func solveStats() {
	for k, v := range cache.solves {
		fmt.Printf("Solve outcome %s: %d sets\n", k, len(v))
	}
}
