package api

import "github.com/mdilm/manufacturing-game/sim"

// WeekRequest is one simulation-week request: the knobs the dashboard
// exposes, layered over the engine defaults. DemandTarget is the campaign
// demand still open before this week; for week > 1 the caller must feed
// back the previous response's final_state as carry_over.
type WeekRequest struct {
	HoursPerDay       float64            `json:"hours_per_day"`
	Days              int                `json:"days"`
	Headcount         sim.HeadcountConfig `json:"headcount"`
	DispatchThreshold int                `json:"dispatch_threshold"`
	DemandTarget      int                `json:"demand_target"`
	WeeklyTarget      int                `json:"weekly_target"` // 0 = demand_target / 4
	Week              int                `json:"week"`
	Seed              int64              `json:"seed"`
	CarryOver         *sim.Snapshot      `json:"carry_over,omitempty"`
}

// config assembles the engine configuration, with zero-valued request
// fields keeping the defaults. Validation happens in the engine.
func (r WeekRequest) config() sim.Config {
	cfg := sim.DefaultConfig()
	if r.HoursPerDay != 0 {
		cfg.HoursPerDay = r.HoursPerDay
	}
	if r.Days != 0 {
		cfg.Days = r.Days
	}
	if r.Headcount.BodyMakers != 0 {
		cfg.Headcount.BodyMakers = r.Headcount.BodyMakers
	}
	if r.Headcount.NeckMakers != 0 {
		cfg.Headcount.NeckMakers = r.Headcount.NeckMakers
	}
	if r.Headcount.Painters != 0 {
		cfg.Headcount.Painters = r.Headcount.Painters
	}
	if r.Headcount.Assemblers != 0 {
		cfg.Headcount.Assemblers = r.Headcount.Assemblers
	}
	if r.DispatchThreshold != 0 {
		cfg.DispatchThreshold = r.DispatchThreshold
	}
	return cfg
}

// CampaignRequest runs a full multi-week campaign in one call.
type CampaignRequest struct {
	HoursPerDay       float64             `json:"hours_per_day"`
	Days              int                 `json:"days"`
	Headcount         sim.HeadcountConfig `json:"headcount"`
	DispatchThreshold int                 `json:"dispatch_threshold"`
	Weeks             int                 `json:"weeks"`
	DemandTarget      int                 `json:"demand_target"`
	Seed              int64               `json:"seed"`
}

func (r CampaignRequest) configs() (sim.Config, sim.CampaignConfig) {
	week := WeekRequest{
		HoursPerDay:       r.HoursPerDay,
		Days:              r.Days,
		Headcount:         r.Headcount,
		DispatchThreshold: r.DispatchThreshold,
	}
	ccfg := sim.DefaultCampaignConfig()
	if r.Weeks != 0 {
		ccfg.Weeks = r.Weeks
	}
	if r.DemandTarget != 0 {
		ccfg.DemandTarget = r.DemandTarget
	}
	return week.config(), ccfg
}

// CampaignResponse wraps a campaign outcome with its persisted run ID
// (empty when history storage is disabled).
type CampaignResponse struct {
	RunID   string               `json:"run_id,omitempty"`
	Summary *sim.CampaignSummary `json:"summary"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
