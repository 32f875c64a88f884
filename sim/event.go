package sim

import "github.com/sirupsen/logrus"

// Same-timestamp events execute in a fixed order so results stay
// deterministic for a given seed: attendance rolls, then material arrivals,
// then stage completions, then dispatch pickups.
const (
	prioShiftStart = iota
	prioRestock
	prioCompletion
	prioDispatch
)

// Event defines the interface for all simulation events. Each event has a
// scheduled Time (hours from period start) and an Execute method that
// advances factory state when invoked.
type Event interface {
	Time() float64
	priority() int
	Execute(f *Factory)
}

// ShiftStartEvent opens one simulated working day: the sick-day attendance
// roll per pool, the fixed daily cost, and the stock-control check.
type ShiftStartEvent struct {
	time float64
	Day  int // zero-based day index
}

// Time returns the scheduled time of the ShiftStartEvent.
func (e *ShiftStartEvent) Time() float64 { return e.time }

func (e *ShiftStartEvent) priority() int { return prioShiftStart }

// Execute runs the day-open bookkeeping, then greedily starts any tasks the
// fresh attendance and stock state allows.
func (e *ShiftStartEvent) Execute(f *Factory) {
	logrus.Debugf("[%07.2fh] shift start, day %d", e.time, e.Day)
	f.startDay(e.Day)
}

// TaskCompletionEvent fires when a stage's sampled processing duration
// elapses.
type TaskCompletionEvent struct {
	time   float64
	Stage  StageKind
	Worker *Worker
	Hours  float64 // sampled task duration, also the billable hours
}

// Time returns the scheduled time of the TaskCompletionEvent.
func (e *TaskCompletionEvent) Time() float64 { return e.time }

func (e *TaskCompletionEvent) priority() int { return prioCompletion }

// Execute releases the worker, applies the quality gate, and lets every
// stage greedily pick up work freed by the completion.
func (e *TaskCompletionEvent) Execute(f *Factory) {
	logrus.Debugf("[%07.2fh] %s task complete (worker %d)", e.time, e.Stage, e.Worker.ID)
	f.stage(e.Stage).complete(f, e.Worker, e.Hours)
	f.pump()
}

// RestockEvent fires when an ordered material delivery arrives.
type RestockEvent struct {
	time     float64
	Material Material
	Qty      int
}

// Time returns the scheduled time of the RestockEvent.
func (e *RestockEvent) Time() float64 { return e.time }

func (e *RestockEvent) priority() int { return prioRestock }

// Execute books the delivery into stock, charges the ledger at the current
// unit price, and unblocks any stage waiting on the material.
func (e *RestockEvent) Execute(f *Factory) {
	logrus.Debugf("[%07.2fh] restock %d x %s", e.time, e.Qty, e.Material)
	f.restock(e.Material, e.Qty)
	f.pump()
}

// DispatchPickupEvent fires when the store arrives to pick up finished
// goods after a triggered dispatch.
type DispatchPickupEvent struct {
	time float64
}

// Time returns the scheduled time of the DispatchPickupEvent.
func (e *DispatchPickupEvent) Time() float64 { return e.time }

func (e *DispatchPickupEvent) priority() int { return prioDispatch }

// Execute ships the buffer content. Emptying the finished-goods buffer
// frees destination space for assembly, so the stages get a pump.
func (e *DispatchPickupEvent) Execute(f *Factory) {
	logrus.Debugf("[%07.2fh] dispatch pickup", e.time)
	f.dispatch.Pickup(f)
	f.pump()
}
