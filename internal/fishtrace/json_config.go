package fishtrace

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// LineCfg is one observation ray in the config file: a point the ray passes
// through and its direction. Key names follow the upstream tracking pipeline
// ("point" / "unit"); the direction does not have to be pre-normalized.
type LineCfg struct {
	Point [3]Real `json:"point"`
	Unit  [3]Real `json:"unit"`
}

// SetCfg groups the rays observing one target.
type SetCfg struct {
	Name  string    `json:"name,omitempty"`
	Lines []LineCfg `json:"lines"`
}

type Config struct {
	Sets        []SetCfg `json:"sets"`
	Workers     int      `json:"workers,omitempty"`
	WebPOut     string   `json:"webpOut,omitempty"`
	RenderSize  int      `json:"renderSize,omitempty"`
	Supersample int      `json:"supersample,omitempty"`
	RenderSpan  Real     `json:"renderSpan,omitempty"` // world half-width of the render window; 0 = auto
}

// Build validates and constructs the runtime line.
func (lc LineCfg) Build() (Line, error) {
	return NewLine(
		Point3{lc.Point[0], lc.Point[1], lc.Point[2]},
		Vector3{lc.Unit[0], lc.Unit[1], lc.Unit[2]},
	)
}

// Build constructs every line of the set. The per-set line count check lives
// in the solver, not here.
func (sc SetCfg) Build() ([]Line, error) {
	lines := make([]Line, 0, len(sc.Lines))
	for i, lc := range sc.Lines {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("line #%d: %w", i, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if len(cfg.Sets) == 0 {
		return nil, fmt.Errorf("config has no line sets")
	}
	for i := range cfg.Sets {
		if cfg.Sets[i].Name == "" {
			cfg.Sets[i].Name = fmt.Sprintf("set-%d", i)
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.WebPOut == "" {
		cfg.WebPOut = WebPOut
	}
	if cfg.RenderSize <= 0 {
		cfg.RenderSize = RenderSize
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = Supersample
	}
	DebugLog("Loaded config from %s: sets=%d, workers=%d, webpOut=%q, renderSize=%d", path, len(cfg.Sets), cfg.Workers, cfg.WebPOut, cfg.RenderSize)
	return &cfg, nil
}
