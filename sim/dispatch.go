package sim

import "github.com/shopspring/decimal"

// DispatchController watches the finished-goods buffer and arranges
// shipment batches. It is polled on every buffer change; once occupancy
// reaches the threshold it calls the store and schedules a pickup. The
// pickup ships the entire buffer content at that instant, credits revenue
// per unit and charges one flat fee per batch regardless of size.
//
// At period end a pending pickup is simply discarded: remaining finished
// goods are never force-dispatched, they carry over to the next week.
type DispatchController struct {
	threshold   int
	unitPrice   decimal.Decimal
	fee         decimal.Decimal
	pickupDelay float64
	pending     bool

	batches int
	shipped int
}

// NewDispatchController builds a controller from the run configuration.
func NewDispatchController(cfg Config) *DispatchController {
	return &DispatchController{
		threshold:   cfg.DispatchThreshold,
		unitPrice:   cfg.Economics.GuitarPrice,
		fee:         cfg.Economics.DispatchFee,
		pickupDelay: cfg.DispatchPickupDelayHours,
	}
}

// Shipped returns the cumulative units dispatched this run.
func (d *DispatchController) Shipped() int { return d.shipped }

// Batches returns the number of dispatch events triggered this run.
func (d *DispatchController) Batches() int { return d.batches }

// Poll checks the finished-goods buffer and schedules a pickup once
// occupancy reaches the threshold. At most one pickup is outstanding.
func (d *DispatchController) Poll(f *Factory) {
	if f.settling || d.pending || f.finished.Level() < d.threshold {
		return
	}
	d.pending = true
	f.flog.Logf(f.Clock, "dispatch stock is %d, calling store to pick guitars", f.finished.Level())
	f.Schedule(&DispatchPickupEvent{time: f.Clock + d.pickupDelay})
}

// Pickup ships the entire finished-goods buffer content at this instant.
// Shipping an empty buffer is a no-op: no revenue, no fee.
func (d *DispatchController) Pickup(f *Factory) {
	d.pending = false
	n := f.finished.Level()
	if n == 0 {
		return
	}
	if !f.finished.TryTake(n) {
		panic("dispatch: finished goods vanished during pickup")
	}
	f.ledger.AddRevenue(d.unitPrice.Mul(decimal.NewFromInt(int64(n))))
	f.ledger.AddDispatchCost(d.fee)
	d.batches++
	d.shipped += n
	f.metrics.Shipped += n
	f.flog.Logf(f.Clock, "store picking %d guitars", n)
}
