package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type SwapInput struct {
	FromToken string
	ToToken   string
	Amount    decimal.Decimal
}

type BridgeInput struct {
	FromChain   string
	ToChain     string
	TokenSymbol string
	Amount      decimal.Decimal
}

type SwapQuote struct {
	FromToken     string          `json:"fromToken"`
	ToToken       string          `json:"toToken"`
	FromAmount    decimal.Decimal `json:"fromAmount"`
	ToAmount      decimal.Decimal `json:"toAmount"`
	Rate          decimal.Decimal `json:"rate"`
	Fee           decimal.Decimal `json:"fee"`
	Slippage      decimal.Decimal `json:"slippage"`
	EstimatedTime string          `json:"estimatedTime"`
}

type BridgeQuote struct {
	FromChain     string          `json:"fromChain"`
	ToChain       string          `json:"toChain"`
	TokenSymbol   string          `json:"token"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	EstimatedTime string          `json:"estimatedTime"`
}

type QuoteService interface {
	Swap(ctx context.Context, input SwapInput) (*SwapQuote, error)
	Bridge(ctx context.Context, input BridgeInput) (*BridgeQuote, error)
}
