// Package client is a thin typed wrapper over the demo wallet REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/halcyonlabs/demo-wallet/core"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

type LoginResponse struct {
	User  *core.User `json:"user"`
	Token string     `json:"token"`
}

// Login authenticates and remembers the returned token.
func (c *Client) Login(ctx context.Context, provider, email string) (*LoginResponse, error) {
	var resp LoginResponse
	body := map[string]string{"provider": provider, "email": email}
	if err := c.do(ctx, http.MethodPost, "/auth/social-login", body, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Wallets(ctx context.Context) ([]*core.Wallet, error) {
	var wallets []*core.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallets", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *Client) Transactions(ctx context.Context, walletID string) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	if err := c.do(ctx, http.MethodGet, "/wallets/"+walletID+"/transactions", nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) Send(ctx context.Context, fromWalletID, to, token, amount string) (*core.Transaction, error) {
	body := map[string]string{
		"fromWalletId": fromWalletID,
		"to":           to,
		"token":        token,
		"amount":       amount,
	}

	var tx core.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/send", body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Rewards(ctx context.Context) (*core.UserRewards, error) {
	var ledger core.UserRewards
	if err := c.do(ctx, http.MethodGet, "/rewards", nil, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (c *Client) SecurityScan(ctx context.Context, transactionIDs []string) ([]*core.SecurityScanResult, error) {
	body := map[string]any{"transactionIds": transactionIDs}

	var results []*core.SecurityScanResult
	if err := c.do(ctx, http.MethodPost, "/security/scan", body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = resp.Status
		}

		return fmt.Errorf("%s %s: %s", method, path, e.Message)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
