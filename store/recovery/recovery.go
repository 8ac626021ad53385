package recovery

import (
	"context"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func New(m *db.Memory) core.RecoveryStore {
	return &recoveryStore{m: m}
}

type recoveryStore struct {
	m *db.Memory
}

func (s *recoveryStore) Create(ctx context.Context, req *core.RecoveryRequest) error {
	s.m.Update(func() {
		c := *req
		s.m.Recoveries[c.UserID] = append(s.m.Recoveries[c.UserID], &c)
	})
	return nil
}

func (s *recoveryStore) List(ctx context.Context, userID string) ([]*core.RecoveryRequest, error) {
	reqs := []*core.RecoveryRequest{}
	s.m.View(func() {
		for _, r := range s.m.Recoveries[userID] {
			c := *r
			reqs = append(reqs, &c)
		}
	})
	return reqs, nil
}
