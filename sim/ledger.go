package sim

import "github.com/shopspring/decimal"

// Ledger accumulates the financial outcome of one simulated week. It is
// append-only while the run is live and sealed by Finalize; any write after
// that is a defect and panics.
type Ledger struct {
	revenue   decimal.Decimal
	labor     decimal.Decimal
	material  decimal.Decimal
	fixed     decimal.Decimal
	idle      decimal.Decimal
	dispatch  decimal.Decimal
	penalty   decimal.Decimal
	finalized bool
}

// NewLedger returns an empty, live ledger.
func NewLedger() *Ledger {
	return &Ledger{
		revenue:  decimal.Zero,
		labor:    decimal.Zero,
		material: decimal.Zero,
		fixed:    decimal.Zero,
		idle:     decimal.Zero,
		dispatch: decimal.Zero,
		penalty:  decimal.Zero,
	}
}

func (l *Ledger) ensureLive() {
	if l.finalized {
		panic("ledger: write after finalize")
	}
}

// AddRevenue credits shipped-goods revenue.
func (l *Ledger) AddRevenue(d decimal.Decimal) { l.ensureLive(); l.revenue = l.revenue.Add(d) }

// AddLaborCost charges regular or overtime wages.
func (l *Ledger) AddLaborCost(d decimal.Decimal) { l.ensureLive(); l.labor = l.labor.Add(d) }

// AddMaterialCost charges a material purchase at replenishment time.
func (l *Ledger) AddMaterialCost(d decimal.Decimal) { l.ensureLive(); l.material = l.material.Add(d) }

// AddFixedCost charges the once-per-day fixed cost.
func (l *Ledger) AddFixedCost(d decimal.Decimal) { l.ensureLive(); l.fixed = l.fixed.Add(d) }

// AddIdleCost records idle-time opportunity cost (reported, not in profit).
func (l *Ledger) AddIdleCost(d decimal.Decimal) { l.ensureLive(); l.idle = l.idle.Add(d) }

// AddDispatchCost charges the flat per-dispatch fee.
func (l *Ledger) AddDispatchCost(d decimal.Decimal) { l.ensureLive(); l.dispatch = l.dispatch.Add(d) }

// FinancialBreakdown is the read-only snapshot of a finalized ledger.
// Profit is revenue minus labor, material and fixed cost. Idle cost, the
// dispatch fee total and the demand penalty are surfaced alongside but kept
// out of the core profit figure.
type FinancialBreakdown struct {
	Revenue       decimal.Decimal `json:"revenue" yaml:"revenue"`
	LaborCost     decimal.Decimal `json:"labor_cost" yaml:"labor_cost"`
	MaterialCost  decimal.Decimal `json:"material_cost" yaml:"material_cost"`
	FixedCost     decimal.Decimal `json:"fixed_cost" yaml:"fixed_cost"`
	IdleCost      decimal.Decimal `json:"idle_cost" yaml:"idle_cost"`
	DispatchCost  decimal.Decimal `json:"dispatch_cost" yaml:"dispatch_cost"`
	DemandPenalty decimal.Decimal `json:"demand_penalty" yaml:"demand_penalty"`
	Profit        decimal.Decimal `json:"profit" yaml:"profit"`
}

// Finalize seals the ledger and returns its breakdown. Further writes panic.
func (l *Ledger) Finalize() FinancialBreakdown {
	l.ensureLive()
	l.finalized = true
	return FinancialBreakdown{
		Revenue:       l.revenue,
		LaborCost:     l.labor,
		MaterialCost:  l.material,
		FixedCost:     l.fixed,
		IdleCost:      l.idle,
		DispatchCost:  l.dispatch,
		DemandPenalty: l.penalty,
		Profit:        l.revenue.Sub(l.labor).Sub(l.material).Sub(l.fixed),
	}
}
