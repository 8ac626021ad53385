package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/service/fixture"
	"github.com/halcyonlabs/demo-wallet/service/quote"
	"github.com/halcyonlabs/demo-wallet/store"
	"github.com/halcyonlabs/demo-wallet/store/db"
	"github.com/halcyonlabs/demo-wallet/store/reward"
	"github.com/halcyonlabs/demo-wallet/store/transaction"
)

type fixtures struct {
	txs     core.TransactionStore
	rewards core.RewardStore
	svc     core.LedgerService
}

func setup(t *testing.T) *fixtures {
	t.Helper()

	m := db.NewMemory()
	txs := transaction.New(m)
	rewards := reward.New(m)

	if err := rewards.Init(context.Background(), "u1", 150, nil); err != nil {
		t.Fatalf("Init: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(txs, quote.New(quote.Config{Seed: 1}), fixture.New(fixture.Config{Seed: 1}), logger)

	return &fixtures{txs: txs, rewards: rewards, svc: svc}
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.svc.Send(ctx, "u1", core.SendInput{
		FromWalletID: "w1",
		To:           "0xabc",
		TokenSymbol:  "ETH",
		Amount:       decimal.NewFromInt(1),
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if tx.Status != core.TransactionStatusPending {
		t.Errorf("status = %s, want pending", tx.Status)
	}

	if tx.Type != core.TransactionTypeSend {
		t.Errorf("type = %s, want send", tx.Type)
	}

	if want, _ := decimal.NewFromString("0.002"); !tx.Fee.Equal(want) {
		t.Errorf("fee = %s, want 0.002", tx.Fee)
	}

	if tx.Hash == "" {
		t.Error("transaction has no hash")
	}

	if tx.ChainID != "1" {
		t.Errorf("chainId = %s, want 1", tx.ChainID)
	}

	ledger, err := f.rewards.Find(ctx, "u1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if ledger.TotalExp != 160 {
		t.Errorf("TotalExp = %d, want 160", ledger.TotalExp)
	}

	last := ledger.Entries[len(ledger.Entries)-1]
	if last.ExpAmount != 10 || last.Source != "Transaction Completed" {
		t.Errorf("reward entry = %+v", last)
	}
}

func TestSendUnknownUser(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Send(context.Background(), "ghost", core.SendInput{
		FromWalletID: "w1",
		To:           "0xabc",
		TokenSymbol:  "ETH",
		Amount:       decimal.NewFromInt(1),
	})

	if !store.IsErrNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestExecuteSwap(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.svc.ExecuteSwap(ctx, "u1", core.SwapInput{
		FromToken: "ETH",
		ToToken:   "USDC",
		Amount:    decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("ExecuteSwap: %v", err)
	}

	if tx.Type != core.TransactionTypeSwap {
		t.Errorf("type = %s, want swap", tx.Type)
	}

	// swap fee is 0.3% of the input amount
	if want, _ := decimal.NewFromString("0.006"); !tx.Fee.Equal(want) {
		t.Errorf("fee = %s, want 0.006", tx.Fee)
	}
}

func TestExecuteSwapRejectsUnknownToken(t *testing.T) {
	f := setup(t)

	_, err := f.svc.ExecuteSwap(context.Background(), "u1", core.SwapInput{
		FromToken: "DOGE",
		ToToken:   "ETH",
		Amount:    decimal.NewFromInt(1),
	})
	if err == nil {
		t.Fatal("expected error for unknown token")
	}

	list, _ := f.txs.List(context.Background(), "u1")
	if len(list) != 0 {
		t.Errorf("transaction stored despite rejected quote")
	}
}

func TestExecuteBridge(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.svc.ExecuteBridge(ctx, "u1", core.BridgeInput{
		FromChain:   "ethereum",
		ToChain:     "polygon",
		TokenSymbol: "USDC",
		Amount:      decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("ExecuteBridge: %v", err)
	}

	if tx.Type != core.TransactionTypeBridge {
		t.Errorf("type = %s, want bridge", tx.Type)
	}

	if want, _ := decimal.NewFromString("0.2"); !tx.Fee.Equal(want) {
		t.Errorf("fee = %s, want 0.2", tx.Fee)
	}
}

func TestRewardAccrual(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := f.svc.Send(ctx, "u1", core.SendInput{
			FromWalletID: "w1",
			To:           "0xabc",
			TokenSymbol:  "ETH",
			Amount:       decimal.NewFromInt(1),
		}); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
	}

	ledger, err := f.rewards.Find(ctx, "u1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if want := 150 + n*10; ledger.TotalExp != want {
		t.Errorf("TotalExp = %d, want %d", ledger.TotalExp, want)
	}

	if want := core.LevelForExp(ledger.TotalExp); ledger.Level != want {
		t.Errorf("Level = %d, want %d", ledger.Level, want)
	}

	list, err := f.txs.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(list) != n {
		t.Fatalf("len = %d, want %d", len(list), n)
	}
}
