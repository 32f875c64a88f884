package sim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Material names one replenishable raw-material kind.
type Material string

const (
	MaterialWood        Material = "wood"
	MaterialElectronics Material = "electronics"
)

// stock is one raw-material level with its replenishment parameters.
// Consumption is reserved when a task starts, never on completion, so a
// stage can only start work it has the inputs for.
type stock struct {
	material     Material
	capacity     int
	level        int
	unitCost     decimal.Decimal
	leadTime     float64 // hours between placing an order and its arrival
	orderPending bool
}

// MaterialStore tracks all raw-material stocks for a run. Replenishment
// quantities and critical levels are decided by the factory's daily stock
// check, scaled to current staffing in the consuming stages.
type MaterialStore struct {
	stocks map[Material]*stock
}

// NewMaterialStore builds a store from the material configuration, with
// levels taken from the starting snapshot.
func NewMaterialStore(cfg MaterialConfig, wood, electronics int) *MaterialStore {
	return &MaterialStore{stocks: map[Material]*stock{
		MaterialWood: {
			material: MaterialWood,
			capacity: cfg.Wood.Capacity,
			level:    wood,
			unitCost: cfg.Wood.UnitCost,
			leadTime: cfg.Wood.LeadTimeHours,
		},
		MaterialElectronics: {
			material: MaterialElectronics,
			capacity: cfg.Electronics.Capacity,
			level:    electronics,
			unitCost: cfg.Electronics.UnitCost,
			leadTime: cfg.Electronics.LeadTimeHours,
		},
	}}
}

func (s *MaterialStore) get(m Material) *stock {
	st, ok := s.stocks[m]
	if !ok {
		panic(fmt.Sprintf("unknown material %q", m))
	}
	return st
}

// Level returns the current stock level of m.
func (s *MaterialStore) Level(m Material) int { return s.get(m).level }

// Capacity returns the storage capacity for m.
func (s *MaterialStore) Capacity(m Material) int { return s.get(m).capacity }

// UnitCost returns the configured per-unit purchase price of m.
func (s *MaterialStore) UnitCost(m Material) decimal.Decimal { return s.get(m).unitCost }

// LeadTime returns the hours between ordering m and its arrival.
func (s *MaterialStore) LeadTime(m Material) float64 { return s.get(m).leadTime }

// TryReserve atomically decrements n units of m at task start. Returns false
// if the draw would push the level below zero; the caller blocks until a
// replenishment event fires.
func (s *MaterialStore) TryReserve(m Material, n int) bool {
	st := s.get(m)
	if n <= 0 {
		panic(fmt.Sprintf("material %s: TryReserve(%d)", m, n))
	}
	if st.level < n {
		return false
	}
	st.level -= n
	if st.level < 0 {
		panic(fmt.Sprintf("material %s: negative stock %d", m, st.level))
	}
	return true
}

// Replenish adds qty units of m, clipped to the storage capacity, clears the
// pending-order flag, and returns the quantity actually added.
func (s *MaterialStore) Replenish(m Material, qty int) int {
	st := s.get(m)
	if qty <= 0 {
		panic(fmt.Sprintf("material %s: Replenish(%d)", m, qty))
	}
	added := qty
	if st.level+added > st.capacity {
		added = st.capacity - st.level
	}
	st.level += added
	st.orderPending = false
	return added
}

// MarkOrdered records that a replenishment order for m is in flight, so the
// daily stock check does not double-order.
func (s *MaterialStore) MarkOrdered(m Material) { s.get(m).orderPending = true }

// OrderPending reports whether a replenishment order for m is in flight.
func (s *MaterialStore) OrderPending(m Material) bool { return s.get(m).orderPending }
