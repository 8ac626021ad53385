package confirmer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/halcyonlabs/demo-wallet/core"
)

// ErrIdle reports a tick that confirmed nothing, either because no
// transactions are pending or none have aged past their delay.
var ErrIdle = errors.New("no transactions ripe for confirmation")

// confirmDelays hold how long a transaction sits pending before it is
// confirmed: send 3s, swap 2s, bridge 5s.
var confirmDelays = map[core.TransactionType]time.Duration{
	core.TransactionTypeSend:   3 * time.Second,
	core.TransactionTypeSwap:   2 * time.Second,
	core.TransactionTypeBridge: 5 * time.Second,
}

const defaultDelay = 3 * time.Second

func New(transactions core.TransactionStore, logger *slog.Logger) *Confirmer {
	return &Confirmer{
		transactions: transactions,
		logger:       logger.With("worker", "confirmer"),
	}
}

type Confirmer struct {
	transactions core.TransactionStore
	logger       *slog.Logger
}

func (w *Confirmer) Run(ctx context.Context) error {
	w.logger.Info("confirmer start")

	for {
		dur := 500 * time.Millisecond
		if w.Tick(ctx, time.Now()) == nil {
			dur = 200 * time.Millisecond
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

// Tick confirms every pending transaction whose delay elapsed before now.
// Exposed so tests can drive confirmation without wall-clock waits.
func (w *Confirmer) Tick(ctx context.Context, now time.Time) error {
	const limit = 64
	txs, err := w.transactions.ListStatus(ctx, core.TransactionStatusPending, limit)
	if err != nil {
		w.logger.Error("transactions.ListStatus", "err", err)
		return err
	}

	var flipped int
	for _, tx := range txs {
		delay, ok := confirmDelays[tx.Type]
		if !ok {
			delay = defaultDelay
		}

		if now.Sub(tx.CreatedAt) < delay {
			continue
		}

		if err := w.transactions.UpdateStatus(ctx, tx, core.TransactionStatusCompleted); err != nil {
			w.logger.Error("transactions.UpdateStatus", "tx", tx.ID, "err", err)
			continue
		}

		w.logger.Debug("transaction confirmed", "tx", tx.ID, "type", tx.Type)
		flipped++
	}

	if flipped == 0 {
		return ErrIdle
	}

	return nil
}
