package sim

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCampaign_RunsFixedNumberOfWeeks(t *testing.T) {
	// GIVEN a default 4-week campaign
	c, err := NewCampaign(DefaultConfig(), DefaultCampaignConfig(), 21)
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}

	// WHEN every week runs
	sum, err := c.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	// THEN the campaign is complete after exactly 4 weeks and a fifth week
	// is refused
	if sum.Weeks != 4 {
		t.Errorf("weeks run: got %d, want 4", sum.Weeks)
	}
	if !c.Completed() {
		t.Error("campaign not marked complete")
	}
	if _, err := c.RunWeek(); err == nil {
		t.Error("RunWeek after completion did not error")
	}
}

func TestCampaign_CarriesSnapshotBetweenWeeks(t *testing.T) {
	// GIVEN a campaign with two weeks run one at a time
	c, err := NewCampaign(DefaultConfig(), DefaultCampaignConfig(), 3)
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}
	w1, err := c.RunWeek()
	if err != nil {
		t.Fatalf("week 1: %v", err)
	}

	// WHEN week 2 starts THEN its starting state is week 1's final state
	if *c.snapshot != w1.FinalState {
		t.Errorf("carried snapshot %+v != week 1 final state %+v", *c.snapshot, w1.FinalState)
	}

	w2, err := c.RunWeek()
	if err != nil {
		t.Fatalf("week 2: %v", err)
	}
	if w2.Week != 2 {
		t.Errorf("week index: got %d, want 2", w2.Week)
	}
}

func TestCampaign_DemandPenaltyMatchesShortfall(t *testing.T) {
	// GIVEN a completed campaign
	c, err := NewCampaign(DefaultConfig(), DefaultCampaignConfig(), 8)
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}
	sum, err := c.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	// THEN the penalty is exactly shortfall x per-unit rate, zero when the
	// cumulative target was met
	want := decimal.Zero
	if sum.TotalProduced < sum.DemandTarget {
		shortfall := int64(sum.DemandTarget - sum.TotalProduced)
		want = DefaultCampaignConfig().PenaltyPerUnit.Mul(decimal.NewFromInt(shortfall))
	}
	if !sum.DemandPenalty.Equal(want) {
		t.Errorf("penalty: got %s, want %s", sum.DemandPenalty, want)
	}

	// AND the net outcome is total profit minus that penalty, with the
	// penalty in no individual week's ledger
	if !sum.NetOutcome.Equal(sum.TotalProfit.Sub(sum.DemandPenalty)) {
		t.Errorf("net outcome %s != profit %s - penalty %s",
			sum.NetOutcome, sum.TotalProfit, sum.DemandPenalty)
	}
	for _, w := range sum.WeekResults {
		if !w.Financials.DemandPenalty.IsZero() {
			t.Errorf("week %d carries a demand penalty %s", w.Week, w.Financials.DemandPenalty)
		}
	}
}

func TestCampaign_RemainingDemandDecreasesWithProduction(t *testing.T) {
	// GIVEN a completed campaign
	c, err := NewCampaign(DefaultConfig(), DefaultCampaignConfig(), 13)
	if err != nil {
		t.Fatalf("NewCampaign: %v", err)
	}
	sum, err := c.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	// THEN remaining demand is the target minus production, floored at zero
	want := sum.DemandTarget - sum.TotalProduced
	if want < 0 {
		want = 0
	}
	if sum.RemainingDemand != want {
		t.Errorf("remaining demand: got %d, want %d", sum.RemainingDemand, want)
	}
}
