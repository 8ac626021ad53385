package wallet

import (
	"context"
	"testing"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store/db"
)

func TestSaveList(t *testing.T) {
	ctx := context.Background()
	wallets := New(db.NewMemory())

	in := []*core.Wallet{
		{ID: "w1", Chain: "ethereum"},
		{ID: "w2", Chain: "bitcoin"},
	}
	if err := wallets.Save(ctx, "u1", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := wallets.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	for i, w := range got {
		if w.UserID != "u1" {
			t.Errorf("wallet %d owner = %q, want u1", i, w.UserID)
		}
	}

	// stored copies are isolated from the caller's slice
	in[0].Chain = "mutated"
	again, _ := wallets.List(ctx, "u1")
	if again[0].Chain != "ethereum" {
		t.Error("store aliases caller memory")
	}
}

func TestListEmpty(t *testing.T) {
	wallets := New(db.NewMemory())

	got, err := wallets.List(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got == nil {
		t.Fatal("List returned nil, want empty slice")
	}

	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
