package token

import (
	"context"
	"testing"

	"github.com/halcyonlabs/demo-wallet/core"
)

func TestIssueVerify(t *testing.T) {
	svc := New(Config{Secret: "test-secret", Issuer: "demo-wallet"})

	user := &core.User{ID: "u1", Email: "a@b.com"}
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sess, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if sess.UserID != "u1" {
		t.Errorf("UserID = %s, want u1", sess.UserID)
	}

	if sess.Email != "a@b.com" {
		t.Errorf("Email = %s, want a@b.com", sess.Email)
	}

	// second verify hits the session cache
	again, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify cached: %v", err)
	}

	if again.UserID != sess.UserID {
		t.Errorf("cached UserID = %s, want %s", again.UserID, sess.UserID)
	}
}

func TestVerifyRejects(t *testing.T) {
	svc := New(Config{Secret: "test-secret", Issuer: "demo-wallet"})
	other := New(Config{Secret: "other-secret", Issuer: "demo-wallet"})

	token, err := other.Issue(&core.User{ID: "u1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", token},
		{"garbage", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(context.Background(), tt.token); err == nil {
				t.Error("expected verification failure, got nil")
			}
		})
	}
}

func TestVerifyRejectsForeignIssuer(t *testing.T) {
	svc := New(Config{Secret: "test-secret", Issuer: "demo-wallet"})
	other := New(Config{Secret: "test-secret", Issuer: "someone-else"})

	token, err := other.Issue(&core.User{ID: "u1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); err == nil {
		t.Error("expected verification failure for foreign issuer")
	}
}

func TestNewPanicsOnBadConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty secret")
		}
	}()

	New(Config{Issuer: "demo-wallet"})
}
