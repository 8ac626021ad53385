package account

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/service/fixture"
	"github.com/halcyonlabs/demo-wallet/service/token"
	"github.com/halcyonlabs/demo-wallet/store"
	"github.com/halcyonlabs/demo-wallet/store/db"
	"github.com/halcyonlabs/demo-wallet/store/reward"
	"github.com/halcyonlabs/demo-wallet/store/transaction"
	"github.com/halcyonlabs/demo-wallet/store/user"
	"github.com/halcyonlabs/demo-wallet/store/wallet"
)

type fixtures struct {
	wallets core.WalletStore
	txs     core.TransactionStore
	rewards core.RewardStore
	svc     core.AccountService
}

func setup(t *testing.T) *fixtures {
	t.Helper()

	m := db.NewMemory()
	users := user.New(m)
	wallets := wallet.New(m)
	txs := transaction.New(m)
	rewards := reward.New(m)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.New(token.Config{Secret: "test-secret", Issuer: "demo-wallet"})
	svc := New(users, wallets, txs, rewards, fixture.New(fixture.Config{Seed: 1}), tokens, logger)

	return &fixtures{wallets: wallets, txs: txs, rewards: rewards, svc: svc}
}

func TestLoginCreatesAccount(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	user, tok, err := f.svc.Login(ctx, core.LoginInput{Provider: "google", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if tok == "" {
		t.Error("login returned no token")
	}

	if user.Email != "a@b.com" {
		t.Errorf("email = %s", user.Email)
	}

	if user.Rewards != 150 {
		t.Errorf("rewards = %d, want 150", user.Rewards)
	}

	wallets, err := f.wallets.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("wallets.List: %v", err)
	}
	if len(wallets) != 3 {
		t.Errorf("wallets = %d, want 3", len(wallets))
	}

	txs, err := f.txs.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("txs.List: %v", err)
	}
	if len(txs) != 10 {
		t.Errorf("transactions = %d, want 10", len(txs))
	}

	ledger, err := f.rewards.Find(ctx, user.ID)
	if err != nil {
		t.Fatalf("rewards.Find: %v", err)
	}

	if ledger.TotalExp != 150 {
		t.Errorf("TotalExp = %d, want 150", ledger.TotalExp)
	}

	if ledger.Level != 2 {
		t.Errorf("Level = %d, want 2", ledger.Level)
	}

	if len(ledger.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(ledger.Entries))
	}
}

func TestLoginIsIdempotentPerEmail(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	first, _, err := f.svc.Login(ctx, core.LoginInput{Provider: "google", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// case and whitespace normalize to the same account
	second, _, err := f.svc.Login(ctx, core.LoginInput{Provider: "apple", Email: " A@B.com "})
	if err != nil {
		t.Fatalf("Login again: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("ids differ: %s vs %s", first.ID, second.ID)
	}

	txs, _ := f.txs.List(ctx, first.ID)
	if len(txs) != 10 {
		t.Errorf("history reseeded: %d transactions", len(txs))
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	user, _, err := f.svc.Login(ctx, core.LoginInput{Provider: "google", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	yes := true
	updated, err := f.svc.UpdateProfile(ctx, user.ID, core.ProfileUpdate{TwoFAEnabled: &yes, IsPro: &yes})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if !updated.TwoFAEnabled || !updated.IsPro {
		t.Errorf("flags not applied: %+v", updated)
	}

	if updated.BackedUp || updated.ProModeEnabled {
		t.Errorf("untouched flags flipped: %+v", updated)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	f := setup(t)

	yes := true
	_, err := f.svc.UpdateProfile(context.Background(), "ghost", core.ProfileUpdate{TwoFAEnabled: &yes})
	if !store.IsErrNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
