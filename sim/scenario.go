package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML-loadable description of a campaign run: the knobs a
// player turns, layered over the engine defaults. Zero-valued fields keep
// the default; validation happens against the assembled Config, not here.
type Scenario struct {
	Seed              int64           `yaml:"seed"`
	HoursPerDay       float64         `yaml:"hours_per_day"`
	Days              int             `yaml:"days"`
	Headcount         HeadcountConfig `yaml:"headcount"`
	DispatchThreshold int             `yaml:"dispatch_threshold"`
	Weeks             int             `yaml:"weeks"`
	DemandTarget      int             `yaml:"demand_target"`
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Apply overlays the scenario's non-zero fields onto cfg and ccfg and
// returns the seed to use (the scenario's, when set).
func (s *Scenario) Apply(cfg *Config, ccfg *CampaignConfig, seed int64) int64 {
	if s.HoursPerDay != 0 {
		cfg.HoursPerDay = s.HoursPerDay
	}
	if s.Days != 0 {
		cfg.Days = s.Days
	}
	if s.Headcount.BodyMakers != 0 {
		cfg.Headcount.BodyMakers = s.Headcount.BodyMakers
	}
	if s.Headcount.NeckMakers != 0 {
		cfg.Headcount.NeckMakers = s.Headcount.NeckMakers
	}
	if s.Headcount.Painters != 0 {
		cfg.Headcount.Painters = s.Headcount.Painters
	}
	if s.Headcount.Assemblers != 0 {
		cfg.Headcount.Assemblers = s.Headcount.Assemblers
	}
	if s.DispatchThreshold != 0 {
		cfg.DispatchThreshold = s.DispatchThreshold
	}
	if s.Weeks != 0 {
		ccfg.Weeks = s.Weeks
	}
	if s.DemandTarget != 0 {
		ccfg.DemandTarget = s.DemandTarget
	}
	if s.Seed != 0 {
		return s.Seed
	}
	return seed
}
