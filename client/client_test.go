package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoginStoresToken(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/social-login" {
			t.Errorf("path = %s", r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if body["email"] != "a@b.com" {
			t.Errorf("email = %s", body["email"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": "u1", "email": "a@b.com"},
			"token": "tok-123",
		})
	}))
	defer svr.Close()

	c := New(svr.URL + "/")
	resp, err := c.Login(context.Background(), "google", "a@b.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.User.ID != "u1" {
		t.Errorf("user id = %s", resp.User.ID)
	}

	if c.token != "tok-123" {
		t.Errorf("token not stored: %q", c.token)
	}
}

func TestBearerHeader(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte("[]"))
	}))
	defer svr.Close()

	c := New(svr.URL)
	c.SetToken("tok-123")

	if _, err := c.Wallets(context.Background()); err != nil {
		t.Fatalf("Wallets: %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid amount"})
	}))
	defer svr.Close()

	c := New(svr.URL)
	_, err := c.Send(context.Background(), "w1", "0xabc", "ETH", "abc")
	if err == nil {
		t.Fatal("expected error")
	}

	if !strings.Contains(err.Error(), "invalid amount") {
		t.Errorf("err = %v, want invalid amount detail", err)
	}
}
