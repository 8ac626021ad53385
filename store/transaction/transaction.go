package transaction

import (
	"context"
	"fmt"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func New(m *db.Memory) core.TransactionStore {
	return &txStore{m: m}
}

type txStore struct {
	m *db.Memory
}

func (s *txStore) Append(ctx context.Context, userID string, tx *core.Transaction, reward *core.Reward) error {
	var err error
	s.m.Update(func() {
		if reward != nil {
			ledger, ok := s.m.Rewards[userID]
			if !ok {
				err = fmt.Errorf("rewards ledger for user %s: %w", userID, store.ErrNotFound)
				return
			}

			r := *reward
			ledger.Entries = append(ledger.Entries, &r)
			ledger.TotalExp += r.ExpAmount
			ledger.Level = core.LevelForExp(ledger.TotalExp)
		}

		t := *tx
		t.UserID = userID
		s.m.Transactions[userID] = append([]*core.Transaction{&t}, s.m.Transactions[userID]...)
		tx.UserID = userID
	})
	return err
}

func (s *txStore) List(ctx context.Context, userID string) ([]*core.Transaction, error) {
	txs := []*core.Transaction{}
	s.m.View(func() {
		for _, t := range s.m.Transactions[userID] {
			c := *t
			txs = append(txs, &c)
		}
	})
	return txs, nil
}

func (s *txStore) ListStatus(ctx context.Context, status core.TransactionStatus, limit int) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	s.m.View(func() {
		for _, list := range s.m.Transactions {
			for _, t := range list {
				if t.Status != status {
					continue
				}

				c := *t
				txs = append(txs, &c)
				if len(txs) >= limit {
					return
				}
			}
		}
	})
	return txs, nil
}

func (s *txStore) UpdateStatus(ctx context.Context, tx *core.Transaction, to core.TransactionStatus) error {
	var err error
	s.m.Update(func() {
		for _, t := range s.m.Transactions[tx.UserID] {
			if t.ID != tx.ID {
				continue
			}

			if t.Status != tx.Status {
				err = fmt.Errorf("optimistic lock failed")
				return
			}

			t.Status = to
			return
		}

		err = fmt.Errorf("transaction %s: %w", tx.ID, store.ErrNotFound)
	})
	return err
}
