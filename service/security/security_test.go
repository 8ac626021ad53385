package security

import (
	"context"
	"fmt"
	"testing"

	"github.com/halcyonlabs/demo-wallet/core"
)

func TestScanDedupes(t *testing.T) {
	svc := New(Config{Seed: 1})

	results, err := svc.Scan(context.Background(), []string{"tx1", "tx2", "tx1", "tx3", "tx2"})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len = %d, want 3", len(results))
	}

	for i, want := range []string{"tx1", "tx2", "tx3"} {
		if results[i].TransactionID != want {
			t.Errorf("results[%d] = %s, want %s", i, results[i].TransactionID, want)
		}
	}
}

func TestScanScoreBands(t *testing.T) {
	svc := New(Config{Seed: 1})

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = fmt.Sprintf("tx%d", i)
	}

	results, err := svc.Scan(context.Background(), ids)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	counts := map[core.RiskLevel]int{}
	for _, r := range results {
		counts[r.RiskLevel]++

		switch r.RiskLevel {
		case core.RiskLevelLow:
			if r.Score < 90 || r.Score > 99 {
				t.Errorf("low score %d out of band", r.Score)
			}
			if len(r.Issues) != 0 {
				t.Errorf("low result carries issues: %v", r.Issues)
			}
		case core.RiskLevelMedium:
			if r.Score < 60 || r.Score > 79 {
				t.Errorf("medium score %d out of band", r.Score)
			}
			if len(r.Issues) == 0 {
				t.Error("medium result has no issues")
			}
		case core.RiskLevelHigh:
			if r.Score < 20 || r.Score > 49 {
				t.Errorf("high score %d out of band", r.Score)
			}
			if len(r.Issues) == 0 {
				t.Error("high result has no issues")
			}
		default:
			t.Errorf("unexpected risk level %q", r.RiskLevel)
		}
	}

	// low is weighted 3 of 5 draws
	if counts[core.RiskLevelLow] <= counts[core.RiskLevelMedium] ||
		counts[core.RiskLevelLow] <= counts[core.RiskLevelHigh] {
		t.Errorf("low not dominant: %v", counts)
	}
}

func TestScanSeededDeterminism(t *testing.T) {
	a := New(Config{Seed: 9})
	b := New(Config{Seed: 9})

	ids := []string{"tx1", "tx2", "tx3", "tx4"}
	ra, _ := a.Scan(context.Background(), ids)
	rb, _ := b.Scan(context.Background(), ids)

	for i := range ra {
		if ra[i].RiskLevel != rb[i].RiskLevel || ra[i].Score != rb[i].Score {
			t.Errorf("result %d differs across equal seeds", i)
		}
	}
}
