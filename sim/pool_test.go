package sim

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestPool(headcount int, wage int64) *ResourcePool {
	return NewResourcePool(RolePainter, headcount, decimal.NewFromInt(wage), 40, 1.5)
}

func TestResourcePool_RollAttendance_AbsentWorkersUnavailable(t *testing.T) {
	// GIVEN a pool of 3 where the first draw marks worker 1 absent
	p := newTestPool(3, 30)
	draws := []bool{true, false, false}
	i := 0
	absent := p.RollAttendance(8, func() bool { d := draws[i]; i++; return d })

	// THEN one worker is reported absent and availability drops to 2
	if len(absent) != 1 || absent[0] != 1 {
		t.Fatalf("absent workers: got %v, want [1]", absent)
	}
	if p.Available() != 2 {
		t.Errorf("Available: got %d, want 2", p.Available())
	}

	// AND the absent worker accrues no paid hours
	if p.Workers()[0].PaidHours != 0 {
		t.Errorf("absent worker paid hours: got %v, want 0", p.Workers()[0].PaidHours)
	}
	if p.Workers()[1].PaidHours != 8 {
		t.Errorf("present worker paid hours: got %v, want 8", p.Workers()[1].PaidHours)
	}
}

func TestResourcePool_Acquire_PrefersLeastWorkedWorker(t *testing.T) {
	// GIVEN a pool where worker 1 has more accrued hours than worker 2
	p := newTestPool(2, 30)
	p.RollAttendance(8, func() bool { return false })
	p.Workers()[0].HoursWorked = 5

	// WHEN a task is assigned
	w := p.Acquire()

	// THEN the less-worked worker is picked and marked busy
	if w == nil || w.ID != 2 {
		t.Fatalf("Acquire: got worker %v, want worker 2", w)
	}
	if !w.Busy {
		t.Error("acquired worker not marked busy")
	}
	if p.Available() != 1 {
		t.Errorf("Available after Acquire: got %d, want 1", p.Available())
	}
}

func TestResourcePool_Acquire_ExhaustedReturnsNil(t *testing.T) {
	// GIVEN a single-worker pool with the worker busy
	p := newTestPool(1, 30)
	p.RollAttendance(8, func() bool { return false })
	p.Acquire()

	// WHEN another task is requested THEN no worker is available
	if w := p.Acquire(); w != nil {
		t.Fatalf("Acquire on exhausted pool: got worker %d, want nil", w.ID)
	}
}

func TestResourcePool_BillHours_OvertimeProRatedAcrossBoundary(t *testing.T) {
	// GIVEN a worker at 39 accrued hours with a 40 h threshold
	p := newTestPool(1, 10)
	w := p.Workers()[0]
	w.HoursWorked = 39

	// WHEN a 2 h task is billed
	cost := p.BillHours(w, 2)

	// THEN 1 h is regular and 1 h at 1.5x: 10 + 15
	want := decimal.NewFromInt(25)
	if !cost.Equal(want) {
		t.Errorf("BillHours: got %s, want %s", cost, want)
	}
	if w.HoursWorked != 41 {
		t.Errorf("HoursWorked: got %v, want 41", w.HoursWorked)
	}
}

func TestResourcePool_BillHours_OvertimeCostsMoreThanRegular(t *testing.T) {
	// GIVEN a worker pushed past the weekly threshold in one run of tasks
	p := newTestPool(1, 10)
	overCost := p.BillHours(p.Workers()[0], 45)

	// WHEN the same hours are billed entirely at the regular rate
	regularCost := decimal.NewFromInt(10).Mul(decimal.NewFromInt(45))

	// THEN the overtime bill is strictly greater
	if overCost.LessThanOrEqual(regularCost) {
		t.Errorf("overtime bill %s not greater than regular bill %s", overCost, regularCost)
	}
}

func TestResourcePool_IdleCost_PaidMinusBusyHours(t *testing.T) {
	// GIVEN a worker paid 8 h who worked 5 h
	p := newTestPool(1, 20)
	w := p.Workers()[0]
	w.PaidHours = 8
	w.HoursWorked = 5

	// THEN idle cost is 3 h at the regular wage
	want := decimal.NewFromInt(60)
	if got := p.IdleCost(); !got.Equal(want) {
		t.Errorf("IdleCost: got %s, want %s", got, want)
	}
}
