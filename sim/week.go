package sim

import "github.com/shopspring/decimal"

// WeekResult is the structured outcome of one simulated work-period: the
// engine's half of the boundary contract with the API layer. The financial
// breakdown is the finalized ledger; FinalState is the exact carry-over
// snapshot for the next week.
type WeekResult struct {
	Week            int                      `json:"week" yaml:"week"`
	GuitarsProduced int                      `json:"guitars_produced" yaml:"guitars_produced"`
	GuitarsShipped  int                      `json:"guitars_shipped" yaml:"guitars_shipped"`
	Overproduction  int                      `json:"overproduction" yaml:"overproduction"`
	RemainingDemand int                      `json:"remaining_demand" yaml:"remaining_demand"`
	Financials      FinancialBreakdown       `json:"financials" yaml:"financials"`
	Production      Metrics                  `json:"production" yaml:"production"`
	StageStats      map[StageKind]StageStats `json:"stage_stats" yaml:"stage_stats"`
	Logs            []string                 `json:"logs" yaml:"logs"`
	FinalState      Snapshot                 `json:"final_state" yaml:"final_state"`
}

// RunWeek executes one simulated week and rolls the outcome into a result.
// prior is the previous week's final snapshot, or nil for week 1.
// demandRemaining is the campaign demand still open before this week;
// weeklyTarget is the per-week share of the campaign target, used only for
// the overproduction figure.
func RunWeek(cfg Config, week int, seed int64, demandRemaining, weeklyTarget int, prior *Snapshot) (*WeekResult, error) {
	f, err := NewFactory(cfg, seed, prior)
	if err != nil {
		return nil, err
	}
	f.Run()

	idle := decimal.Zero
	for _, st := range f.stages {
		idle = idle.Add(st.pool.IdleCost())
	}
	f.ledger.AddIdleCost(idle)
	fin := f.ledger.Finalize()

	produced := f.metrics.Produced
	remaining := demandRemaining - produced
	if remaining < 0 {
		remaining = 0
	}

	stats := make(map[StageKind]StageStats, len(f.stages))
	for _, st := range f.stages {
		stats[st.kind] = st.stats
	}

	return &WeekResult{
		Week:            week,
		GuitarsProduced: produced,
		GuitarsShipped:  f.dispatch.Shipped(),
		Overproduction:  produced - weeklyTarget,
		RemainingDemand: remaining,
		Financials:      fin,
		Production:      *f.metrics,
		StageStats:      stats,
		Logs:            f.flog.Lines(),
		FinalState:      f.Snapshot(),
	}, nil
}
