package wallet

import (
	"context"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func New(m *db.Memory) core.WalletStore {
	return &walletStore{m: m}
}

type walletStore struct {
	m *db.Memory
}

func (s *walletStore) Save(ctx context.Context, userID string, wallets []*core.Wallet) error {
	s.m.Update(func() {
		list := make([]*core.Wallet, 0, len(wallets))
		for _, w := range wallets {
			c := *w
			c.UserID = userID
			list = append(list, &c)
		}
		s.m.Wallets[userID] = list
	})
	return nil
}

func (s *walletStore) List(ctx context.Context, userID string) ([]*core.Wallet, error) {
	wallets := []*core.Wallet{}
	s.m.View(func() {
		for _, w := range s.m.Wallets[userID] {
			c := *w
			wallets = append(wallets, &c)
		}
	})
	return wallets, nil
}
