package fishtrace

import (
	"math"
	"strings"
	"testing"
)

func testConfig() *Config {
	return &Config{
		Workers: 4,
		Sets: []SetCfg{
			{Name: "skew", Lines: []LineCfg{
				{Point: [3]Real{0, 0, 0}, Unit: [3]Real{1, 0, 0}},
				{Point: [3]Real{0, 0, 1}, Unit: [3]Real{0, 1, 0}},
			}},
			{Name: "parallel", Lines: []LineCfg{
				{Point: [3]Real{0, 0, 0}, Unit: [3]Real{1, 0, 0}},
				{Point: [3]Real{0, 1, 0}, Unit: [3]Real{1, 0, 0}},
			}},
			{Name: "short", Lines: []LineCfg{
				{Point: [3]Real{0, 0, 0}, Unit: [3]Real{1, 0, 0}},
			}},
			{Name: "concurrent", Lines: []LineCfg{
				{Point: [3]Real{3, 1, -2}, Unit: [3]Real{1, 0, 0}},
				{Point: [3]Real{3, 1, -2}, Unit: [3]Real{0, 1, 0}},
				{Point: [3]Real{3, 1, -2}, Unit: [3]Real{0, 0, 1}},
			}},
		},
	}
}

func TestSolveAll(t *testing.T) {
	cfg := testConfig()
	results := SolveAll(cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	// results keep input order
	for i, want := range []string{"skew", "parallel", "short", "concurrent"} {
		if results[i].Name != want {
			t.Fatalf("result #%d name %q, want %q", i, results[i].Name, want)
		}
	}

	skew := results[0]
	if skew.Err != "" {
		t.Fatalf("skew set failed: %s", skew.Err)
	}
	if !pointsNear(skew.Point, Point3{0, 0, 0.5}, 1e-9) {
		t.Fatalf("skew point mismatch: %+v", skew.Point)
	}
	if len(skew.Dists) != 2 || math.Abs(float64(skew.Dists[0]-0.5)) > 1e-9 {
		t.Fatalf("skew dists mismatch: %+v", skew.Dists)
	}

	if results[1].Err == "" || !strings.Contains(results[1].Err, "degenerate") {
		t.Fatalf("parallel set should report degeneracy: %q", results[1].Err)
	}
	if results[2].Err == "" || !strings.Contains(results[2].Err, "invalid") {
		t.Fatalf("single-line set should report invalid input: %q", results[2].Err)
	}

	conc := results[3]
	if conc.Err != "" {
		t.Fatalf("concurrent set failed: %s", conc.Err)
	}
	if !pointsNear(conc.Point, Point3{3, 1, -2}, 1e-9) || conc.Residual > 1e-9 {
		t.Fatalf("concurrent set mismatch: %+v residual=%.12g", conc.Point, conc.Residual)
	}
}

func TestSolveAllSingleWorker(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 1
	a := SolveAll(cfg)
	cfg.Workers = 8
	b := SolveAll(cfg)
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Err != b[i].Err || !pointsNear(a[i].Point, b[i].Point, 1e-12) {
			t.Fatalf("worker count changed result #%d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
