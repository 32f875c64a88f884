package sim

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CampaignConfig sets the cross-week game parameters: how many weeks the
// campaign runs, the cumulative demand to fulfil, and the per-unit penalty
// applied to any shortfall when the campaign completes.
type CampaignConfig struct {
	Weeks          int             `json:"weeks" yaml:"weeks"`
	DemandTarget   int             `json:"demand_target" yaml:"demand_target"`
	PenaltyPerUnit decimal.Decimal `json:"penalty_per_unit" yaml:"penalty_per_unit"`
}

// DefaultCampaignConfig returns the baseline campaign: four weeks, two
// hundred guitars, a stiff per-unit shortfall penalty.
func DefaultCampaignConfig() CampaignConfig {
	return CampaignConfig{
		Weeks:          4,
		DemandTarget:   200,
		PenaltyPerUnit: decimal.NewFromInt(150),
	}
}

// Validate rejects invalid campaign parameters.
func (c CampaignConfig) Validate() error {
	if c.Weeks <= 0 {
		return fmt.Errorf("campaign weeks must be positive, got %d", c.Weeks)
	}
	if c.DemandTarget <= 0 {
		return fmt.Errorf("campaign demand target must be positive, got %d", c.DemandTarget)
	}
	if c.PenaltyPerUnit.IsNegative() {
		return fmt.Errorf("penalty per unit must not be negative")
	}
	return nil
}

// Campaign chains simulation weeks, carrying each week's final snapshot
// into the next week's starting state and tracking cumulative demand
// fulfilment. It only ever reads a completed week's finalized result; a
// finished run is never re-entered.
type Campaign struct {
	cfg  Config
	ccfg CampaignConfig
	seed int64

	remaining int
	weeks     []*WeekResult
	snapshot  *Snapshot
	done      bool
}

// CampaignSummary is the final roll-up once all weeks have elapsed. The
// demand-shortfall penalty appears here only, never in a weekly ledger.
type CampaignSummary struct {
	Weeks           int             `json:"weeks" yaml:"weeks"`
	DemandTarget    int             `json:"demand_target" yaml:"demand_target"`
	TotalProduced   int             `json:"total_produced" yaml:"total_produced"`
	TotalShipped    int             `json:"total_shipped" yaml:"total_shipped"`
	RemainingDemand int             `json:"remaining_demand" yaml:"remaining_demand"`
	TotalProfit     decimal.Decimal `json:"total_profit" yaml:"total_profit"`
	DemandPenalty   decimal.Decimal `json:"demand_penalty" yaml:"demand_penalty"`
	NetOutcome      decimal.Decimal `json:"net_outcome" yaml:"net_outcome"`
	WeekResults     []*WeekResult   `json:"week_results" yaml:"week_results"`
}

// NewCampaign validates both configurations and sets up an un-started
// campaign.
func NewCampaign(cfg Config, ccfg CampaignConfig, seed int64) (*Campaign, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ccfg.Validate(); err != nil {
		return nil, err
	}
	return &Campaign{
		cfg:       cfg,
		ccfg:      ccfg,
		seed:      seed,
		remaining: ccfg.DemandTarget,
	}, nil
}

// Completed reports whether the fixed number of weeks has elapsed.
func (c *Campaign) Completed() bool { return c.done }

// WeekIndex returns the 1-based index of the next week to run.
func (c *Campaign) WeekIndex() int { return len(c.weeks) + 1 }

// Remaining returns the campaign demand still open.
func (c *Campaign) Remaining() int { return c.remaining }

// RunWeek advances the campaign by one simulated week, seeding it with the
// previous week's final snapshot. Each week derives its own seed from the
// campaign seed so a campaign is reproducible end to end.
func (c *Campaign) RunWeek() (*WeekResult, error) {
	if c.done {
		return nil, errors.New("campaign already complete")
	}
	week := c.WeekIndex()
	weeklyTarget := c.ccfg.DemandTarget / c.ccfg.Weeks
	res, err := RunWeek(c.cfg, week, c.seed+int64(week-1), c.remaining, weeklyTarget, c.snapshot)
	if err != nil {
		return nil, err
	}
	c.remaining = res.RemainingDemand
	snap := res.FinalState
	c.snapshot = &snap
	c.weeks = append(c.weeks, res)
	if week == c.ccfg.Weeks {
		c.done = true
	}
	return res, nil
}

// RunAll runs every remaining week and returns the final summary.
func (c *Campaign) RunAll() (*CampaignSummary, error) {
	for !c.done {
		if _, err := c.RunWeek(); err != nil {
			return nil, err
		}
	}
	return c.Summary(), nil
}

// Summary rolls the completed weeks into the campaign outcome. The
// shortfall penalty is charged only when cumulative production missed the
// target after the full horizon.
func (c *Campaign) Summary() *CampaignSummary {
	produced, shipped := 0, 0
	profit := decimal.Zero
	for _, w := range c.weeks {
		produced += w.GuitarsProduced
		shipped += w.GuitarsShipped
		profit = profit.Add(w.Financials.Profit)
	}
	penalty := decimal.Zero
	if c.done && produced < c.ccfg.DemandTarget {
		shortfall := c.ccfg.DemandTarget - produced
		penalty = c.ccfg.PenaltyPerUnit.Mul(decimal.NewFromInt(int64(shortfall)))
	}
	return &CampaignSummary{
		Weeks:           len(c.weeks),
		DemandTarget:    c.ccfg.DemandTarget,
		TotalProduced:   produced,
		TotalShipped:    shipped,
		RemainingDemand: c.remaining,
		TotalProfit:     profit,
		DemandPenalty:   penalty,
		NetOutcome:      profit.Sub(penalty),
		WeekResults:     c.weeks,
	}
}
