package sim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HeadcountConfig sets the configured headcount per role.
type HeadcountConfig struct {
	BodyMakers int `json:"body_makers" yaml:"body_makers"`
	NeckMakers int `json:"neck_makers" yaml:"neck_makers"`
	Painters   int `json:"painters" yaml:"painters"`
	Assemblers int `json:"assemblers" yaml:"assemblers"`
}

// BufferConfig sets the capacity limit of each work-in-progress buffer.
type BufferConfig struct {
	BodyPrePaint  int `json:"body_pre_paint" yaml:"body_pre_paint"`
	NeckPrePaint  int `json:"neck_pre_paint" yaml:"neck_pre_paint"`
	BodyPostPaint int `json:"body_post_paint" yaml:"body_post_paint"`
	NeckPostPaint int `json:"neck_post_paint" yaml:"neck_post_paint"`
	FinishedGoods int `json:"finished_goods" yaml:"finished_goods"`
}

// StockParams configures one raw material.
type StockParams struct {
	Capacity      int             `json:"capacity" yaml:"capacity"`
	Initial       int             `json:"initial" yaml:"initial"`
	UnitCost      decimal.Decimal `json:"unit_cost" yaml:"unit_cost"`
	LeadTimeHours float64         `json:"lead_time_hours" yaml:"lead_time_hours"`
}

// MaterialConfig configures the raw-material store.
type MaterialConfig struct {
	Wood        StockParams `json:"wood" yaml:"wood"`
	Electronics StockParams `json:"electronics" yaml:"electronics"`
}

// StageParams configures one production stage's process model. Durations
// are sampled from a triangular distribution on
// [Nominal*(1-Spread), Nominal*(1+Spread)] with mode Nominal, so a sampled
// duration is never non-positive as long as Spread < 1.
type StageParams struct {
	NominalHours float64 `json:"nominal_hours" yaml:"nominal_hours"`
	Spread       float64 `json:"spread" yaml:"spread"`
	PassRate     float64 `json:"pass_rate" yaml:"pass_rate"`
}

// StageConfig groups the per-stage process parameters.
type StageConfig struct {
	Body     StageParams `json:"body" yaml:"body"`
	Neck     StageParams `json:"neck" yaml:"neck"`
	Paint    StageParams `json:"paint" yaml:"paint"`
	Assembly StageParams `json:"assembly" yaml:"assembly"`
}

// EconomicsConfig groups prices, wages and fees.
type EconomicsConfig struct {
	GuitarPrice    decimal.Decimal `json:"guitar_price" yaml:"guitar_price"`
	DispatchFee    decimal.Decimal `json:"dispatch_fee" yaml:"dispatch_fee"`
	FixedDailyCost decimal.Decimal `json:"fixed_daily_cost" yaml:"fixed_daily_cost"`
	BodyMakerWage  decimal.Decimal `json:"body_maker_wage" yaml:"body_maker_wage"`
	NeckMakerWage  decimal.Decimal `json:"neck_maker_wage" yaml:"neck_maker_wage"`
	PainterWage    decimal.Decimal `json:"painter_wage" yaml:"painter_wage"`
	AssemblerWage  decimal.Decimal `json:"assembler_wage" yaml:"assembler_wage"`
}

// WageFor returns the hourly wage for a role.
func (e EconomicsConfig) WageFor(role Role) decimal.Decimal {
	switch role {
	case RoleBodyMaker:
		return e.BodyMakerWage
	case RoleNeckMaker:
		return e.NeckMakerWage
	case RolePainter:
		return e.PainterWage
	case RoleAssembler:
		return e.AssemblerWage
	}
	panic(fmt.Sprintf("unknown role %q", role))
}

// Config holds every parameter of one simulation week.
type Config struct {
	HoursPerDay float64         `json:"hours_per_day" yaml:"hours_per_day"`
	Days        int             `json:"days" yaml:"days"`
	Headcount   HeadcountConfig `json:"headcount" yaml:"headcount"`

	DispatchThreshold        int     `json:"dispatch_threshold" yaml:"dispatch_threshold"`
	DispatchPickupDelayHours float64 `json:"dispatch_pickup_delay_hours" yaml:"dispatch_pickup_delay_hours"`

	AbsenceProbability     float64 `json:"absence_probability" yaml:"absence_probability"`
	OvertimeThresholdHours float64 `json:"overtime_threshold_hours" yaml:"overtime_threshold_hours"`
	OvertimeMultiplier     float64 `json:"overtime_multiplier" yaml:"overtime_multiplier"`

	Buffers   BufferConfig    `json:"buffers" yaml:"buffers"`
	Materials MaterialConfig  `json:"materials" yaml:"materials"`
	Stages    StageConfig     `json:"stages" yaml:"stages"`
	Economics EconomicsConfig `json:"economics" yaml:"economics"`
}

// DefaultConfig returns the stock factory parameters. Buffer and material
// sizes follow the classic guitar-factory layout; economics are the game's
// baseline numbers.
func DefaultConfig() Config {
	return Config{
		HoursPerDay: 8,
		Days:        5,
		Headcount: HeadcountConfig{
			BodyMakers: 2,
			NeckMakers: 1,
			Painters:   3,
			Assemblers: 2,
		},
		DispatchThreshold:        50,
		DispatchPickupDelayHours: 4,
		AbsenceProbability:       0.05,
		OvertimeThresholdHours:   40,
		OvertimeMultiplier:       1.5,
		Buffers: BufferConfig{
			BodyPrePaint:  60,
			NeckPrePaint:  60,
			BodyPostPaint: 120,
			NeckPostPaint: 120,
			FinishedGoods: 500,
		},
		Materials: MaterialConfig{
			Wood: StockParams{
				Capacity:      500,
				Initial:       200,
				UnitCost:      decimal.NewFromInt(5),
				LeadTimeHours: 16,
			},
			Electronics: StockParams{
				Capacity:      100,
				Initial:       60,
				UnitCost:      decimal.NewFromInt(12),
				LeadTimeHours: 9,
			},
		},
		Stages: StageConfig{
			Body:     StageParams{NominalHours: 1, Spread: 0.25, PassRate: 0.92},
			Neck:     StageParams{NominalHours: 1, Spread: 0.25, PassRate: 0.92},
			Paint:    StageParams{NominalHours: 2, Spread: 0.25, PassRate: 0.85},
			Assembly: StageParams{NominalHours: 1, Spread: 0.25, PassRate: 0.98},
		},
		Economics: EconomicsConfig{
			GuitarPrice:    decimal.NewFromInt(300),
			DispatchFee:    decimal.NewFromInt(500),
			FixedDailyCost: decimal.NewFromInt(1500),
			BodyMakerWage:  decimal.NewFromInt(25),
			NeckMakerWage:  decimal.NewFromInt(25),
			PainterWage:    decimal.NewFromInt(30),
			AssemblerWage:  decimal.NewFromInt(28),
		},
	}
}

func (p StageParams) validate(name string) error {
	if p.NominalHours <= 0 {
		return fmt.Errorf("stage %s: nominal duration must be positive, got %v", name, p.NominalHours)
	}
	if p.Spread <= 0 || p.Spread >= 1 {
		return fmt.Errorf("stage %s: spread must be in (0, 1), got %v", name, p.Spread)
	}
	if p.PassRate <= 0 || p.PassRate > 1 {
		return fmt.Errorf("stage %s: pass rate must be in (0, 1], got %v", name, p.PassRate)
	}
	return nil
}

func (p StockParams) validate(name string) error {
	if p.Capacity <= 0 {
		return fmt.Errorf("material %s: capacity must be positive, got %d", name, p.Capacity)
	}
	if p.Initial < 0 || p.Initial > p.Capacity {
		return fmt.Errorf("material %s: initial stock %d outside [0, %d]", name, p.Initial, p.Capacity)
	}
	if p.UnitCost.IsNegative() {
		return fmt.Errorf("material %s: unit cost must not be negative", name)
	}
	if p.LeadTimeHours <= 0 {
		return fmt.Errorf("material %s: lead time must be positive, got %v", name, p.LeadTimeHours)
	}
	return nil
}

// Validate rejects invalid configuration before a run starts. Nothing is
// silently clamped.
func (c Config) Validate() error {
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day must be positive, got %v", c.HoursPerDay)
	}
	if c.Days <= 0 {
		return fmt.Errorf("working days must be positive, got %d", c.Days)
	}
	for _, hc := range []struct {
		role Role
		n    int
	}{
		{RoleBodyMaker, c.Headcount.BodyMakers},
		{RoleNeckMaker, c.Headcount.NeckMakers},
		{RolePainter, c.Headcount.Painters},
		{RoleAssembler, c.Headcount.Assemblers},
	} {
		if hc.n <= 0 {
			return fmt.Errorf("headcount for %s must be positive, got %d", hc.role, hc.n)
		}
	}
	for _, bc := range []struct {
		name string
		n    int
	}{
		{"body_pre_paint", c.Buffers.BodyPrePaint},
		{"neck_pre_paint", c.Buffers.NeckPrePaint},
		{"body_post_paint", c.Buffers.BodyPostPaint},
		{"neck_post_paint", c.Buffers.NeckPostPaint},
		{"finished_goods", c.Buffers.FinishedGoods},
	} {
		if bc.n <= 0 {
			return fmt.Errorf("buffer %s: capacity must be positive, got %d", bc.name, bc.n)
		}
	}
	if c.DispatchThreshold <= 0 || c.DispatchThreshold > c.Buffers.FinishedGoods {
		return fmt.Errorf("dispatch threshold %d outside (0, %d]", c.DispatchThreshold, c.Buffers.FinishedGoods)
	}
	if c.DispatchPickupDelayHours < 0 {
		return fmt.Errorf("dispatch pickup delay must not be negative, got %v", c.DispatchPickupDelayHours)
	}
	if c.AbsenceProbability < 0 || c.AbsenceProbability >= 1 {
		return fmt.Errorf("absence probability must be in [0, 1), got %v", c.AbsenceProbability)
	}
	if c.OvertimeThresholdHours <= 0 {
		return fmt.Errorf("overtime threshold must be positive, got %v", c.OvertimeThresholdHours)
	}
	if c.OvertimeMultiplier < 1 {
		return fmt.Errorf("overtime multiplier must be at least 1, got %v", c.OvertimeMultiplier)
	}
	if err := c.Materials.Wood.validate("wood"); err != nil {
		return err
	}
	if err := c.Materials.Electronics.validate("electronics"); err != nil {
		return err
	}
	if err := c.Stages.Body.validate("body_making"); err != nil {
		return err
	}
	if err := c.Stages.Neck.validate("neck_making"); err != nil {
		return err
	}
	if err := c.Stages.Paint.validate("painting"); err != nil {
		return err
	}
	if err := c.Stages.Assembly.validate("assembly"); err != nil {
		return err
	}
	return nil
}
