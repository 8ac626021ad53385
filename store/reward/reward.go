package reward

import (
	"context"
	"fmt"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func New(m *db.Memory) core.RewardStore {
	return &rewardStore{m: m}
}

type rewardStore struct {
	m *db.Memory
}

func (s *rewardStore) Init(ctx context.Context, userID string, totalExp int, entries []*core.Reward) error {
	s.m.Update(func() {
		list := make([]*core.Reward, 0, len(entries))
		for _, e := range entries {
			c := *e
			list = append(list, &c)
		}

		s.m.Rewards[userID] = &core.UserRewards{
			UserID:   userID,
			TotalExp: totalExp,
			Level:    core.LevelForExp(totalExp),
			Entries:  list,
		}
	})
	return nil
}

func (s *rewardStore) Find(ctx context.Context, userID string) (*core.UserRewards, error) {
	var ledger *core.UserRewards
	s.m.View(func() {
		l, ok := s.m.Rewards[userID]
		if !ok {
			return
		}

		entries := make([]*core.Reward, 0, len(l.Entries))
		for _, e := range l.Entries {
			c := *e
			entries = append(entries, &c)
		}

		ledger = &core.UserRewards{
			UserID:   l.UserID,
			TotalExp: l.TotalExp,
			Level:    l.Level,
			Entries:  entries,
		}
	})

	if ledger == nil {
		return nil, fmt.Errorf("rewards ledger for user %s: %w", userID, store.ErrNotFound)
	}

	return ledger, nil
}
