package sim

import (
	"math"

	"github.com/shopspring/decimal"
)

// Role names one worker role on the factory floor.
type Role string

const (
	RoleBodyMaker Role = "body_maker"
	RoleNeckMaker Role = "neck_maker"
	RolePainter   Role = "painter"
	RoleAssembler Role = "assembler"
)

// Worker is one member of a ResourcePool. Hours are accrued as tasks
// complete and reset between weeks; paid hours accrue per day attended,
// whether or not work was available.
type Worker struct {
	ID          int
	Busy        bool
	AbsentToday bool
	HoursWorked float64
	PaidHours   float64
}

// ResourcePool models a role as N independently-available workers with a
// daily attendance draw and weekly overtime accounting. A pool can run at
// most available-workers concurrent tasks; assignment is greedy and
// deterministic (least accrued hours first, worker ID as tie-break).
type ResourcePool struct {
	role         Role
	wage         decimal.Decimal
	otThreshold  float64
	otMultiplier float64
	workers      []*Worker
}

// NewResourcePool creates a pool with the given headcount and wage terms.
func NewResourcePool(role Role, headcount int, wage decimal.Decimal, otThreshold, otMultiplier float64) *ResourcePool {
	workers := make([]*Worker, headcount)
	for i := range workers {
		workers[i] = &Worker{ID: i + 1}
	}
	return &ResourcePool{
		role:         role,
		wage:         wage,
		otThreshold:  otThreshold,
		otMultiplier: otMultiplier,
		workers:      workers,
	}
}

// Role returns the pool's role name.
func (p *ResourcePool) Role() Role { return p.role }

// Headcount returns the configured headcount.
func (p *ResourcePool) Headcount() int { return len(p.workers) }

// Workers returns the pool's workers for inspection.
func (p *ResourcePool) Workers() []*Worker { return p.workers }

// RollAttendance runs the daily sick-day draw: each worker is independently
// marked absent when absent() reports true. Present workers accrue a day of
// paid hours. Returns the IDs of absent workers, in worker order. Absences
// reduce availability, never capacity.
func (p *ResourcePool) RollAttendance(hoursPerDay float64, absent func() bool) []int {
	var out []int
	for _, w := range p.workers {
		w.AbsentToday = absent()
		if w.AbsentToday {
			out = append(out, w.ID)
			continue
		}
		w.PaidHours += hoursPerDay
	}
	return out
}

// Available returns how many workers could take a task right now.
func (p *ResourcePool) Available() int {
	n := 0
	for _, w := range p.workers {
		if !w.Busy && !w.AbsentToday {
			n++
		}
	}
	return n
}

// Acquire assigns the free, present worker with the least accrued hours and
// marks it busy. Returns nil when the pool is exhausted for now.
func (p *ResourcePool) Acquire() *Worker {
	var pick *Worker
	for _, w := range p.workers {
		if w.Busy || w.AbsentToday {
			continue
		}
		if pick == nil || w.HoursWorked < pick.HoursWorked {
			pick = w
		}
	}
	if pick != nil {
		pick.Busy = true
	}
	return pick
}

// Release frees a worker at task completion. The worker is immediately
// eligible for a new task.
func (p *ResourcePool) Release(w *Worker) { w.Busy = false }

// BillHours accrues hours against w and returns their labor cost: regular
// wage up to the weekly overtime threshold, the overtime multiplier beyond
// it. Hours spanning the boundary are pro-rated.
func (p *ResourcePool) BillHours(w *Worker, hours float64) decimal.Decimal {
	regular := hours
	overtime := 0.0
	if w.HoursWorked+hours > p.otThreshold {
		regular = math.Max(0, p.otThreshold-w.HoursWorked)
		overtime = hours - regular
	}
	w.HoursWorked += hours

	cost := p.wage.Mul(decimal.NewFromFloat(regular))
	if overtime > 0 {
		cost = cost.Add(p.wage.Mul(decimal.NewFromFloat(overtime)).Mul(decimal.NewFromFloat(p.otMultiplier)))
	}
	return cost
}

// IdleCost returns the opportunity cost of the pool's idle time: paid hours
// not spent on tasks, billed at the regular wage. Reported for visibility,
// excluded from the core profit figure.
func (p *ResourcePool) IdleCost() decimal.Decimal {
	total := decimal.Zero
	for _, w := range p.workers {
		idle := w.PaidHours - w.HoursWorked
		if idle > 0 {
			total = total.Add(p.wage.Mul(decimal.NewFromFloat(idle)))
		}
	}
	return total
}
