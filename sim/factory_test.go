package sim

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestFactory_CarryOver_RoundTripsWithZeroElapsedTime(t *testing.T) {
	// GIVEN a non-trivial ending state from some week N
	cfg := DefaultConfig()
	snap := Snapshot{
		BodyPrePaint:  5,
		NeckPrePaint:  3,
		BodyPostPaint: 12,
		NeckPostPaint: 11,
		FinishedGoods: 42,
		PaintRework:   2,
		Wood:          137,
		Electronics:   28,
	}

	// WHEN it seeds week N+1 and no time elapses
	f, err := NewFactory(cfg, 99, &snap)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	// THEN the snapshot reads back byte-for-byte
	got, _ := json.Marshal(f.Snapshot())
	want, _ := json.Marshal(snap)
	if string(got) != string(want) {
		t.Errorf("snapshot round trip:\n got %s\nwant %s", got, want)
	}
}

func TestFactory_Run_ConservationOfUnits(t *testing.T) {
	// GIVEN a full week at the stock staffing
	cfg := DefaultConfig()
	f, err := NewFactory(cfg, 42, nil)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	// WHEN the week runs to its horizon
	f.Run()

	// THEN every started task was settled: none remain in flight
	for _, st := range f.stages {
		if st.stats.Started != st.stats.Completed {
			t.Errorf("%s: started %d != completed %d", st.kind, st.stats.Started, st.stats.Completed)
		}
		if st.stats.Passed+st.stats.Scrapped+st.stats.Reworked != st.stats.Completed {
			t.Errorf("%s: pass/scrap/rework %d+%d+%d does not account for %d completions",
				st.kind, st.stats.Passed, st.stats.Scrapped, st.stats.Reworked, st.stats.Completed)
		}
	}

	// AND units entering body making cover everything downstream of it:
	// each started body either scrapped or fed the line, never vanished
	body := f.stage(StageBody).stats
	if body.Started < f.metrics.Produced+body.Scrapped {
		t.Errorf("conservation: %d bodies started < %d finished + %d scrapped",
			body.Started, f.metrics.Produced, body.Scrapped)
	}

	// AND dispatched + still-in-buffer equals everything assembled
	snap := f.Snapshot()
	if f.dispatch.Shipped()+snap.FinishedGoods != f.metrics.Produced {
		t.Errorf("shipped %d + on hand %d != produced %d",
			f.dispatch.Shipped(), snap.FinishedGoods, f.metrics.Produced)
	}
}

func TestFactory_Run_ScenarioBoundsAndProfitFormula(t *testing.T) {
	// GIVEN the reference scenario: headcount {body:2, neck:1, paint:3,
	// assembly:2}, 8 h days, 5 days, threshold 50, fixed seed
	cfg := DefaultConfig()
	res, err := RunWeek(cfg, 1, 1234, 200, 50, nil)
	if err != nil {
		t.Fatalf("RunWeek: %v", err)
	}

	// THEN produced guitars stay under the painter-capacity bound: 3
	// painters, fastest possible task at nominal*(1-spread) hours
	fastest := cfg.Stages.Paint.NominalHours * (1 - cfg.Stages.Paint.Spread)
	bound := int(math.Ceil(float64(cfg.Headcount.Painters) * cfg.HoursPerDay * float64(cfg.Days) / fastest))
	if res.GuitarsProduced > bound {
		t.Errorf("produced %d exceeds painter capacity bound %d", res.GuitarsProduced, bound)
	}

	// AND the profit figure includes no silent idle or penalty costs
	want := res.Financials.Revenue.
		Sub(res.Financials.LaborCost).
		Sub(res.Financials.MaterialCost).
		Sub(res.Financials.FixedCost)
	if !res.Financials.Profit.Equal(want) {
		t.Errorf("profit: got %s, want %s", res.Financials.Profit, want)
	}
}

func TestFactory_Run_EmptyWoodBlocksUntilReplenishment(t *testing.T) {
	// GIVEN a material store starting with 0 wood
	cfg := DefaultConfig()
	cfg.Materials.Wood.Initial = 0
	f, err := NewFactory(cfg, 5, nil)
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	// WHEN the week runs
	f.Run()

	// THEN the log shows the blocked/waiting state and the supplier call,
	// not a crash
	logs := strings.Join(f.Log(), "\n")
	if !strings.Contains(logs, "body_making waiting for wood") {
		t.Error("log missing body-making waiting state")
	}
	if !strings.Contains(logs, "wood stock below critical level") {
		t.Error("log missing wood supplier call")
	}
	if !strings.Contains(logs, "wood supplier arrives") {
		t.Error("log missing wood delivery")
	}

	// AND body making only ever started after stock arrived
	if f.stage(StageBody).stats.Started == 0 {
		t.Error("body making never started after replenishment")
	}
}

func TestFactory_Run_SameSeedSameResult(t *testing.T) {
	// GIVEN two runs with identical configuration and seed
	run := func() string {
		res, err := RunWeek(DefaultConfig(), 1, 77, 200, 50, nil)
		if err != nil {
			t.Fatalf("RunWeek: %v", err)
		}
		out, _ := json.Marshal(res)
		return string(out)
	}

	// THEN the results are bit-for-bit identical
	if a, b := run(), run(); a != b {
		t.Error("two runs with the same seed diverged")
	}
}

func TestNewFactory_RejectsInvalidConfig(t *testing.T) {
	// GIVEN a configuration with a zero headcount
	cfg := DefaultConfig()
	cfg.Headcount.Painters = 0

	// WHEN a factory is built THEN it fails fast, nothing is clamped
	if _, err := NewFactory(cfg, 1, nil); err == nil {
		t.Fatal("NewFactory accepted zero painter headcount")
	}
}

func TestNewFactory_RejectsCorruptSnapshot(t *testing.T) {
	// GIVEN a carried-over snapshot exceeding a buffer capacity
	cfg := DefaultConfig()
	snap := initialSnapshot(cfg)
	snap.BodyPrePaint = cfg.Buffers.BodyPrePaint + 1

	// WHEN a factory is built THEN the corrupt state is rejected
	if _, err := NewFactory(cfg, 1, &snap); err == nil {
		t.Fatal("NewFactory accepted snapshot above buffer capacity")
	}
}
