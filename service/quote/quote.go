package quote

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
	"github.com/zyedidia/generic/cache"
)

// ErrUnsupportedAsset marks quote requests for tokens or chains outside the
// canned rate table.
var ErrUnsupportedAsset = errors.New("unsupported asset")

type Config struct {
	// Seed pins the jitter source; 0 picks a time-based seed.
	Seed int64
}

func New(cfg Config) core.QuoteService {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rng:   rand.New(rand.NewSource(seed)),
		rates: cache.New[string, decimal.Decimal](64),
	}
}

type service struct {
	mux   sync.Mutex
	rng   *rand.Rand
	rates *cache.Cache[string, decimal.Decimal]
}

// usdPrices is the static mock price table backing every quote.
var usdPrices = map[string]decimal.Decimal{
	"ETH":   generic.Try(decimal.NewFromString("3200")),
	"BTC":   generic.Try(decimal.NewFromString("64000")),
	"MATIC": generic.Try(decimal.NewFromString("0.85")),
	"USDC":  generic.Try(decimal.NewFromString("1")),
	"LINK":  generic.Try(decimal.NewFromString("14.5")),
}

var bridgeRoutes = map[string]string{
	"ethereum": "~5 min",
	"bitcoin":  "~30 min",
	"polygon":  "~2 min",
}

var (
	swapFeeRate   = generic.Try(decimal.NewFromString("0.003"))
	bridgeFeeRate = generic.Try(decimal.NewFromString("0.002"))
	slippage      = generic.Try(decimal.NewFromString("0.005"))
)

func (s *service) Swap(ctx context.Context, input core.SwapInput) (*core.SwapQuote, error) {
	base, err := s.baseRate(input.FromToken, input.ToToken)
	if err != nil {
		return nil, err
	}

	rate := s.jitter(base)
	fee := input.Amount.Mul(swapFeeRate).Round(8)
	toAmount := input.Amount.Sub(fee).Mul(rate).Round(8)

	return &core.SwapQuote{
		FromToken:     input.FromToken,
		ToToken:       input.ToToken,
		FromAmount:    input.Amount,
		ToAmount:      toAmount,
		Rate:          rate,
		Fee:           fee,
		Slippage:      slippage,
		EstimatedTime: "~30s",
	}, nil
}

func (s *service) Bridge(ctx context.Context, input core.BridgeInput) (*core.BridgeQuote, error) {
	eta, ok := bridgeRoutes[input.ToChain]
	if !ok {
		return nil, fmt.Errorf("chain %q: %w", input.ToChain, ErrUnsupportedAsset)
	}

	if _, ok := bridgeRoutes[input.FromChain]; !ok {
		return nil, fmt.Errorf("chain %q: %w", input.FromChain, ErrUnsupportedAsset)
	}

	if _, ok := usdPrices[input.TokenSymbol]; !ok {
		return nil, fmt.Errorf("token %q: %w", input.TokenSymbol, ErrUnsupportedAsset)
	}

	fee := input.Amount.Mul(bridgeFeeRate).Round(8)

	return &core.BridgeQuote{
		FromChain:     input.FromChain,
		ToChain:       input.ToChain,
		TokenSymbol:   input.TokenSymbol,
		Amount:        input.Amount,
		Fee:           fee,
		EstimatedTime: eta,
	}, nil
}

func (s *service) baseRate(from, to string) (decimal.Decimal, error) {
	key := from + "/" + to

	s.mux.Lock()
	defer s.mux.Unlock()

	if rate, ok := s.rates.Get(key); ok {
		return rate, nil
	}

	fromPrice, ok := usdPrices[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("token %q: %w", from, ErrUnsupportedAsset)
	}

	toPrice, ok := usdPrices[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("token %q: %w", to, ErrUnsupportedAsset)
	}

	rate := fromPrice.DivRound(toPrice, 8)
	s.rates.Put(key, rate)
	return rate, nil
}

// jitter nudges the base rate by up to ±0.5% so repeated quotes wobble like
// a live market would.
func (s *service) jitter(rate decimal.Decimal) decimal.Decimal {
	s.mux.Lock()
	f := (s.rng.Float64() - 0.5) / 100
	s.mux.Unlock()

	return rate.Mul(decimal.NewFromFloat(1 + f)).Round(8)
}
