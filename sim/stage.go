package sim

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// StageKind names one production step.
type StageKind string

const (
	StageBody     StageKind = "body_making"
	StageNeck     StageKind = "neck_making"
	StagePaint    StageKind = "painting"
	StageAssembly StageKind = "assembly"
)

// StageStats are a stage's production counters for one run.
type StageStats struct {
	Started   int `json:"started" yaml:"started"`
	Completed int `json:"completed" yaml:"completed"`
	Passed    int `json:"passed" yaml:"passed"`
	Scrapped  int `json:"scrapped" yaml:"scrapped"`
	Reworked  int `json:"reworked" yaml:"reworked"`
}

// Stage is one production step's process model. Per task it acquires a
// worker from its pool, draws down its input buffers and material demands,
// reserves destination space, samples a processing duration and, on
// completion, applies the stage's quality gate.
//
// The state machine is Idle -> Processing -> QualityCheck -> Idle; a stage
// with no free worker, missing inputs or a full destination simply does not
// start, which is how backpressure and starvation propagate.
type Stage struct {
	kind   StageKind
	pool   *ResourcePool
	params StageParams

	// material demands reserved at task start, charged at replenishment
	materials map[Material]int
	// input buffers drawn down together at task start
	inputs []*Buffer
	// destination buffers, reserved at start and committed on a pass
	outputs []*Buffer

	// failed painting pairs waiting for another pass; served before the
	// regular input buffers so rework never starves
	rework int

	// set while the stage is blocked on empty material stock, to log the
	// waiting state once instead of on every poll
	waitingMaterial bool

	stats    StageStats
	duration distuv.Triangle
	quality  distuv.Bernoulli
}

func newStage(kind StageKind, pool *ResourcePool, params StageParams, rng *PartitionedRNG) *Stage {
	lo := params.NominalHours * (1 - params.Spread)
	hi := params.NominalHours * (1 + params.Spread)
	return &Stage{
		kind:      kind,
		pool:      pool,
		params:    params,
		materials: map[Material]int{},
		duration:  distuv.NewTriangle(lo, hi, params.NominalHours, rng.ForSubsystem(SubsystemDuration(kind))),
		quality:   distuv.Bernoulli{P: params.PassRate, Src: rng.ForSubsystem(SubsystemQuality(kind))},
	}
}

// Kind returns the stage's name.
func (st *Stage) Kind() StageKind { return st.kind }

// Stats returns the stage's production counters.
func (st *Stage) Stats() StageStats { return st.stats }

// Pool returns the stage's resource pool.
func (st *Stage) Pool() *ResourcePool { return st.pool }

// tryStart attempts one Idle -> Processing transition. It starts at most one
// task: a free present worker, available inputs (a rework unit counts as
// input at painting), material stock and destination space must all be
// there, or the stage stays Idle and reports false.
func (st *Stage) tryStart(f *Factory) bool {
	if st.pool.Available() == 0 {
		return false
	}

	fromRework := st.rework > 0
	if !fromRework {
		for _, b := range st.inputs {
			if b.Level() < 1 {
				return false
			}
		}
		for m, n := range st.materials {
			if f.materials.Level(m) < n {
				if !st.waitingMaterial {
					st.waitingMaterial = true
					f.flog.Logf(f.Clock, "%s waiting for %s (stock %d, needs %d)",
						st.kind, m, f.materials.Level(m), n)
				}
				return false
			}
		}
	}
	for _, b := range st.outputs {
		if b.Space() < 1 {
			return false
		}
	}

	// all checks passed, commit the acquisition
	if fromRework {
		st.rework--
	} else {
		for _, b := range st.inputs {
			if !b.TryTake(1) {
				panic("stage: input vanished after check")
			}
		}
		for m, n := range st.materials {
			if !f.materials.TryReserve(m, n) {
				panic("stage: material vanished after check")
			}
		}
	}
	for _, b := range st.outputs {
		if !b.TryReserve(1) {
			panic("stage: destination space vanished after check")
		}
	}
	st.waitingMaterial = false

	w := st.pool.Acquire()
	if w == nil {
		panic("stage: worker vanished after check")
	}
	hours := st.duration.Rand()
	st.stats.Started++
	f.Schedule(&TaskCompletionEvent{
		time:   f.Clock + hours,
		Stage:  st.kind,
		Worker: w,
		Hours:  hours,
	})
	return true
}

// complete runs the QualityCheck transition for one finished task. The
// worker is released and billed for billableHours (clipped to the period at
// settlement), then the quality gate decides: pass commits the reserved
// output, a painting fail re-enqueues the unit for rework, any other fail
// scraps it. No unit vanishes silently.
func (st *Stage) complete(f *Factory, w *Worker, billableHours float64) {
	st.pool.Release(w)
	if billableHours > 0 {
		f.ledger.AddLaborCost(st.pool.BillHours(w, billableHours))
	}
	st.stats.Completed++

	if st.quality.Rand() == 1 {
		for _, b := range st.outputs {
			b.Commit(1)
		}
		st.stats.Passed++
		if st.kind == StageAssembly {
			f.metrics.Produced++
			f.dispatch.Poll(f)
		}
		return
	}

	for _, b := range st.outputs {
		b.Release(1)
	}
	if st.kind == StagePaint {
		st.rework++
		st.stats.Reworked++
		f.metrics.Reworked++
		f.flog.Logf(f.Clock, "painting failed quality check, unit sent back for rework (queue %d)", st.rework)
		return
	}
	st.stats.Scrapped++
	f.metrics.Scrapped++
	f.flog.Logf(f.Clock, "%s failed quality check, unit scrapped", st.kind)
}
