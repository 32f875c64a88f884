package sim

import "fmt"

// Snapshot captures every buffer occupancy and stock level at the end of a
// week, including the painting rework queue so no unit is lost across the
// boundary. It is the exact carry-over contract: feeding a week's final
// snapshot in as the next week's starting state reproduces the same
// occupancy and stock values.
type Snapshot struct {
	BodyPrePaint  int `json:"body_pre_paint" yaml:"body_pre_paint"`
	NeckPrePaint  int `json:"neck_pre_paint" yaml:"neck_pre_paint"`
	BodyPostPaint int `json:"body_post_paint" yaml:"body_post_paint"`
	NeckPostPaint int `json:"neck_post_paint" yaml:"neck_post_paint"`
	FinishedGoods int `json:"finished_goods" yaml:"finished_goods"`
	PaintRework   int `json:"paint_rework" yaml:"paint_rework"`
	Wood          int `json:"wood" yaml:"wood"`
	Electronics   int `json:"electronics" yaml:"electronics"`
}

// initialSnapshot is week 1's starting state: empty buffers, initial stock.
func initialSnapshot(cfg Config) Snapshot {
	return Snapshot{
		Wood:        cfg.Materials.Wood.Initial,
		Electronics: cfg.Materials.Electronics.Initial,
	}
}

// validate rejects carried-over state that does not fit the configured
// capacities. A corrupt snapshot must fail fast, not seed a broken run.
func (s Snapshot) validate(cfg Config) error {
	for _, chk := range []struct {
		name     string
		level    int
		capacity int
	}{
		{"body_pre_paint", s.BodyPrePaint, cfg.Buffers.BodyPrePaint},
		{"neck_pre_paint", s.NeckPrePaint, cfg.Buffers.NeckPrePaint},
		{"body_post_paint", s.BodyPostPaint, cfg.Buffers.BodyPostPaint},
		{"neck_post_paint", s.NeckPostPaint, cfg.Buffers.NeckPostPaint},
		{"finished_goods", s.FinishedGoods, cfg.Buffers.FinishedGoods},
		{"wood", s.Wood, cfg.Materials.Wood.Capacity},
		{"electronics", s.Electronics, cfg.Materials.Electronics.Capacity},
	} {
		if chk.level < 0 || chk.level > chk.capacity {
			return fmt.Errorf("snapshot: %s level %d outside [0, %d]", chk.name, chk.level, chk.capacity)
		}
	}
	if s.PaintRework < 0 {
		return fmt.Errorf("snapshot: paint rework queue must not be negative, got %d", s.PaintRework)
	}
	return nil
}
