// sim/factory.go
package sim

import (
	"container/heap"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"
)

// scheduledEvent pairs an event with its insertion sequence number, the
// final tie-break after time and event priority.
type scheduledEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by time, then by
// the fixed same-timestamp priority, then by insertion order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	ei, ej := eq[i], eq[j]
	if ei.ev.Time() != ej.ev.Time() {
		return ei.ev.Time() < ej.ev.Time()
	}
	if ei.ev.priority() != ej.ev.priority() {
		return ei.ev.priority() < ej.ev.priority()
	}
	return ei.seq < ej.seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Factory is the core engine object for one simulated week: it owns the
// clock, the event queue, the resource pools, buffers, material store,
// dispatch controller and ledger. All state is mutated by the single
// scheduling loop; nothing outside the run touches it.
type Factory struct {
	Clock   float64
	Horizon float64

	cfg   Config
	queue EventQueue
	seq   int64
	rng   *PartitionedRNG

	bodyPre  *Buffer
	neckPre  *Buffer
	bodyPost *Buffer
	neckPost *Buffer
	finished *Buffer

	materials *MaterialStore
	stages    []*Stage // fixed polling order: body, neck, paint, assembly
	dispatch  *DispatchController
	ledger    *Ledger
	flog      *FactoryLog
	metrics   *Metrics

	attendance distuv.Bernoulli

	// set while draining in-flight work at the horizon; suppresses any
	// follow-up scheduling
	settling bool
}

// NewFactory builds a ready-to-run factory for one week. The snapshot seeds
// buffers, stock and the painting rework queue; pass nil for week 1's empty
// floor and initial stock. Configuration is validated before anything is
// built.
func NewFactory(cfg Config, seed int64, snap *Snapshot) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := initialSnapshot(cfg)
	if snap != nil {
		start = *snap
		if err := start.validate(cfg); err != nil {
			return nil, err
		}
	}

	rng := NewPartitionedRNG(NewSimulationKey(seed))
	f := &Factory{
		Horizon:   float64(cfg.Days) * cfg.HoursPerDay,
		cfg:       cfg,
		queue:     make(EventQueue, 0),
		rng:       rng,
		bodyPre:   NewBuffer("body_pre_paint", cfg.Buffers.BodyPrePaint, start.BodyPrePaint),
		neckPre:   NewBuffer("neck_pre_paint", cfg.Buffers.NeckPrePaint, start.NeckPrePaint),
		bodyPost:  NewBuffer("body_post_paint", cfg.Buffers.BodyPostPaint, start.BodyPostPaint),
		neckPost:  NewBuffer("neck_post_paint", cfg.Buffers.NeckPostPaint, start.NeckPostPaint),
		finished:  NewBuffer("finished_goods", cfg.Buffers.FinishedGoods, start.FinishedGoods),
		materials: NewMaterialStore(cfg.Materials, start.Wood, start.Electronics),
		dispatch:  NewDispatchController(cfg),
		ledger:    NewLedger(),
		flog:      NewFactoryLog(cfg.HoursPerDay),
		metrics:   &Metrics{},
		attendance: distuv.Bernoulli{
			P:   cfg.AbsenceProbability,
			Src: rng.ForSubsystem(SubsystemAttendance),
		},
	}

	ot, om := cfg.OvertimeThresholdHours, cfg.OvertimeMultiplier
	eco := cfg.Economics

	body := newStage(StageBody,
		NewResourcePool(RoleBodyMaker, cfg.Headcount.BodyMakers, eco.BodyMakerWage, ot, om),
		cfg.Stages.Body, rng)
	body.materials[MaterialWood] = 2
	body.outputs = []*Buffer{f.bodyPre}

	neck := newStage(StageNeck,
		NewResourcePool(RoleNeckMaker, cfg.Headcount.NeckMakers, eco.NeckMakerWage, ot, om),
		cfg.Stages.Neck, rng)
	neck.materials[MaterialWood] = 1
	neck.outputs = []*Buffer{f.neckPre}

	paint := newStage(StagePaint,
		NewResourcePool(RolePainter, cfg.Headcount.Painters, eco.PainterWage, ot, om),
		cfg.Stages.Paint, rng)
	paint.inputs = []*Buffer{f.bodyPre, f.neckPre}
	paint.outputs = []*Buffer{f.bodyPost, f.neckPost}
	paint.rework = start.PaintRework

	assembly := newStage(StageAssembly,
		NewResourcePool(RoleAssembler, cfg.Headcount.Assemblers, eco.AssemblerWage, ot, om),
		cfg.Stages.Assembly, rng)
	assembly.inputs = []*Buffer{f.bodyPost, f.neckPost}
	assembly.materials[MaterialElectronics] = 1
	assembly.outputs = []*Buffer{f.finished}

	f.stages = []*Stage{body, neck, paint, assembly}

	for d := 0; d < cfg.Days; d++ {
		f.Schedule(&ShiftStartEvent{time: float64(d) * cfg.HoursPerDay, Day: d})
	}
	return f, nil
}

// Schedule pushes an event into the factory's event queue. During
// settlement no new events are accepted; their effects would fall beyond
// the horizon anyway.
func (f *Factory) Schedule(ev Event) {
	if f.settling {
		return
	}
	f.seq++
	heap.Push(&f.queue, &scheduledEvent{ev: ev, seq: f.seq})
}

// Run executes the event loop: pop the earliest event, advance the clock,
// apply its effect, repeat. Time only moves forward. The loop stops at the
// period horizon; events scheduled beyond it are not applied, except that
// in-flight task completions are settled into the carry-over state.
func (f *Factory) Run() {
	for len(f.queue) > 0 {
		if f.queue[0].ev.Time() > f.Horizon {
			break
		}
		se := heap.Pop(&f.queue).(*scheduledEvent)
		if se.ev.Time() < f.Clock {
			panic("factory: event scheduled in the past")
		}
		f.Clock = se.ev.Time()
		se.ev.Execute(f)
	}
	f.Clock = f.Horizon
	f.settle()
	logrus.Debugf("[%07.2fh] week ended", f.Clock)
}

// stage returns the stage of the given kind.
func (f *Factory) stage(kind StageKind) *Stage {
	for _, st := range f.stages {
		if st.kind == kind {
			return st
		}
	}
	panic("unknown stage " + string(kind))
}

// pump greedily starts tasks across all stages until no stage can make an
// Idle -> Processing transition. Polling order is fixed (body, neck, paint,
// assembly) to keep runs deterministic.
func (f *Factory) pump() {
	for {
		started := false
		for _, st := range f.stages {
			if st.tryStart(f) {
				started = true
			}
		}
		if !started {
			return
		}
	}
}

// startDay opens one working day: attendance rolls per pool, the fixed
// daily cost, the periodic stock-control check, then a greedy pump.
func (f *Factory) startDay(day int) {
	f.ledger.AddFixedCost(f.cfg.Economics.FixedDailyCost)
	for _, st := range f.stages {
		absent := st.pool.RollAttendance(f.cfg.HoursPerDay, func() bool {
			return f.attendance.Rand() == 1
		})
		for _, id := range absent {
			f.metrics.Absences++
			f.flog.Logf(f.Clock, "%s %d is out sick today", st.pool.Role(), id)
		}
	}
	f.checkStocks()
	// carried-over finished goods may already sit at the threshold
	f.dispatch.Poll(f)
	f.pump()
}

// consumptionPerHour estimates a material's drain rate from current
// staffing in the consuming stages, one nominal task per worker-hour.
func (f *Factory) consumptionPerHour(m Material) float64 {
	rate := 0.0
	for _, st := range f.stages {
		need, ok := st.materials[m]
		if !ok {
			continue
		}
		rate += float64(need*st.pool.Headcount()) / st.params.NominalHours
	}
	return rate
}

// checkStocks is the daily stock-control process: when a level falls to its
// critical threshold (two days of staffing-scaled consumption) and no order
// is in flight, an order for three days of consumption is placed, arriving
// after the supplier's lead time. Cost is charged on arrival, not here.
func (f *Factory) checkStocks() {
	for _, m := range []Material{MaterialWood, MaterialElectronics} {
		if f.materials.OrderPending(m) {
			continue
		}
		daily := f.consumptionPerHour(m) * f.cfg.HoursPerDay
		critical := int(math.Ceil(2 * daily))
		if f.materials.Level(m) > critical {
			continue
		}
		qty := int(math.Ceil(3 * daily))
		if qty < 1 {
			qty = 1
		}
		f.materials.MarkOrdered(m)
		f.flog.Logf(f.Clock, "%s stock below critical level (%d), calling %s supplier",
			m, f.materials.Level(m), m)
		f.Schedule(&RestockEvent{
			time:     f.Clock + f.materials.LeadTime(m),
			Material: m,
			Qty:      qty,
		})
	}
}

// restock books an arrived delivery: stock rises (clipped to capacity) and
// the ledger is charged at the configured per-unit price for what arrived.
func (f *Factory) restock(m Material, qty int) {
	added := f.materials.Replenish(m, qty)
	if added > 0 {
		f.ledger.AddMaterialCost(f.materials.UnitCost(m).Mul(decimal.NewFromInt(int64(added))))
	}
	f.flog.Logf(f.Clock, "%s supplier arrives, new %s stock is %d", m, m, f.materials.Level(m))
}

// settle drains the queue after the horizon. In-flight tasks complete
// administratively: the worker is released, only the hours inside the
// period are billed, and the output passes the quality gate into its
// reserved destination slot so it lands in next week's starting buffers.
// Everything else beyond the horizon (pickups, deliveries) is discarded;
// unarrived orders were never charged.
func (f *Factory) settle() {
	f.settling = true
	for len(f.queue) > 0 {
		se := heap.Pop(&f.queue).(*scheduledEvent)
		tce, ok := se.ev.(*TaskCompletionEvent)
		if !ok {
			continue
		}
		billable := tce.Hours - (tce.Time() - f.Horizon)
		if billable < 0 {
			billable = 0
		}
		f.stage(tce.Stage).complete(f, tce.Worker, billable)
	}
}

// Snapshot captures the factory's current buffer, rework and stock state.
func (f *Factory) Snapshot() Snapshot {
	return Snapshot{
		BodyPrePaint:  f.bodyPre.Level(),
		NeckPrePaint:  f.neckPre.Level(),
		BodyPostPaint: f.bodyPost.Level(),
		NeckPostPaint: f.neckPost.Level(),
		FinishedGoods: f.finished.Level(),
		PaintRework:   f.stage(StagePaint).rework,
		Wood:          f.materials.Level(MaterialWood),
		Electronics:   f.materials.Level(MaterialElectronics),
	}
}

// Metrics returns the run's production counters.
func (f *Factory) Metrics() *Metrics { return f.metrics }

// Log returns the run's ordered event log lines.
func (f *Factory) Log() []string { return f.flog.Lines() }

// Stages returns the factory's stages in polling order.
func (f *Factory) Stages() []*Stage { return f.stages }
