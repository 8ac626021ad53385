package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeSend    TransactionType = "send"
	TransactionTypeReceive TransactionType = "receive"
	TransactionTypeSwap    TransactionType = "swap"
	TransactionTypeBridge  TransactionType = "bridge"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"-"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Amount      decimal.Decimal   `json:"amount"`
	TokenSymbol string            `json:"token"`
	ChainID     string            `json:"chainId"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Fee         decimal.Decimal   `json:"fee"`
	Hash        string            `json:"hash,omitempty"`
	CreatedAt   time.Time         `json:"timestamp"`
}

type SendInput struct {
	FromWalletID string
	To           string
	TokenSymbol  string
	Amount       decimal.Decimal
}

type TransactionStore interface {
	// Append inserts tx at the head of the user's history and, unless
	// reward is nil, applies the grant to the user's rewards ledger in the
	// same critical section. A missing ledger fails the whole append.
	Append(ctx context.Context, userID string, tx *Transaction, reward *Reward) error
	// List returns the user's transactions most-recent-first; empty slice
	// for unknown users.
	List(ctx context.Context, userID string) ([]*Transaction, error)
	ListStatus(ctx context.Context, status TransactionStatus, limit int) ([]*Transaction, error)
	// UpdateStatus flips tx to the given status, guarded on the status the
	// caller last observed.
	UpdateStatus(ctx context.Context, tx *Transaction, to TransactionStatus) error
}

// LedgerService creates transactions and grants the fixed per-transaction
// EXP reward as one unit.
type LedgerService interface {
	Send(ctx context.Context, userID string, input SendInput) (*Transaction, error)
	ExecuteSwap(ctx context.Context, userID string, input SwapInput) (*Transaction, error)
	ExecuteBridge(ctx context.Context, userID string, input BridgeInput) (*Transaction, error)
}
