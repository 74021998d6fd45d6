package fishtrace

import (
	"fmt"
	"time"
)

// Run loads a config, solves every line set and reports the results,
// then writes the diagnostic render unless disabled.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	start := time.Now()
	results := SolveAll(cfg)
	elapsed := time.Since(start)
	DebugLog("Sets: %d, time: %s", len(results), elapsed)

	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("%s: error: %s\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("%s: point=(%.6f, %.6f, %.6f) residual=%.6g\n", r.Name, r.Point.X, r.Point.Y, r.Point.Z, r.Residual)
	}

	if Debug {
		solveStats()
	}

	if !NoRender {
		if err := RenderWebP(cfg, results, cfg.WebPOut); err != nil {
			return err
		}
		DebugLog("Saved diagnostic render: %s", cfg.WebPOut)
	}
	return nil
}
