package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type Token struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	ChainID   string          `json:"chainId"`
	Balance   string          `json:"balance"`
	FiatValue decimal.Decimal `json:"fiatValue"`
	Decimals  int             `json:"decimals"`
}

// Wallet is immutable once seeded; no real balance updates ever happen.
type Wallet struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Chain       string          `json:"chain"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Balance     string          `json:"balance"`
	FiatBalance decimal.Decimal `json:"fiatBalance"`
	Tokens      []Token         `json:"tokens"`
}

type WalletStore interface {
	Save(ctx context.Context, userID string, wallets []*Wallet) error
	// List returns an empty slice for unknown users, never an error.
	List(ctx context.Context, userID string) ([]*Wallet, error)
}
