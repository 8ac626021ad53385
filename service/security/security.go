package security

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/zyedidia/generic/mapset"
)

type Config struct {
	// Seed pins the risk draw; 0 picks a time-based seed.
	Seed int64
}

func New(cfg Config) core.SecurityService {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{rng: rand.New(rand.NewSource(seed))}
}

type service struct {
	mux sync.Mutex
	rng *rand.Rand
}

// riskTable weights the draw: low×3, medium×1, high×1.
var riskTable = []core.RiskLevel{
	core.RiskLevelLow,
	core.RiskLevelLow,
	core.RiskLevelLow,
	core.RiskLevelMedium,
	core.RiskLevelHigh,
}

var riskIssues = map[core.RiskLevel][]string{
	core.RiskLevelLow: {},
	core.RiskLevelMedium: {
		"Recipient address has no transaction history",
	},
	core.RiskLevelHigh: {
		"Address linked to reported scams",
		"Contract requests unlimited spend allowance",
	},
}

func (s *service) Scan(ctx context.Context, transactionIDs []string) ([]*core.SecurityScanResult, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	seen := mapset.New[string]()
	results := make([]*core.SecurityScanResult, 0, len(transactionIDs))

	for _, id := range transactionIDs {
		if seen.Has(id) {
			continue
		}
		seen.Put(id)

		level := riskTable[s.rng.Intn(len(riskTable))]
		results = append(results, &core.SecurityScanResult{
			TransactionID: id,
			RiskLevel:     level,
			Score:         s.scoreLocked(level),
			Issues:        append([]string(nil), riskIssues[level]...),
		})
	}

	return results, nil
}

func (s *service) scoreLocked(level core.RiskLevel) int {
	switch level {
	case core.RiskLevelHigh:
		return 20 + s.rng.Intn(30)
	case core.RiskLevelMedium:
		return 60 + s.rng.Intn(20)
	default:
		return 90 + s.rng.Intn(10)
	}
}
