package fixture

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Seed pins the random source; 0 picks a time-based seed.
	Seed int64
}

func New(cfg Config) core.FixtureService {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{rng: rand.New(rand.NewSource(seed))}
}

type service struct {
	mux sync.Mutex
	rng *rand.Rand
}

type chainSpec struct {
	chain   string
	name    string
	chainID string
	balance string
	tokens  []core.Token
}

var chains = []chainSpec{
	{
		chain:   "ethereum",
		name:    "Ethereum Wallet",
		chainID: "1",
		balance: "2.4531 ETH",
		tokens: []core.Token{
			{Symbol: "ETH", Name: "Ethereum", ChainID: "1", Balance: "2.4531", FiatValue: generic.Try(decimal.NewFromString("7849.92")), Decimals: 18},
			{Symbol: "USDC", Name: "USD Coin", ChainID: "1", Balance: "1250.00", FiatValue: generic.Try(decimal.NewFromString("1250.00")), Decimals: 6},
			{Symbol: "LINK", Name: "Chainlink", ChainID: "1", Balance: "85.2", FiatValue: generic.Try(decimal.NewFromString("1235.40")), Decimals: 18},
		},
	},
	{
		chain:   "bitcoin",
		name:    "Bitcoin Wallet",
		chainID: "bitcoin",
		balance: "0.1824 BTC",
		tokens: []core.Token{
			{Symbol: "BTC", Name: "Bitcoin", ChainID: "bitcoin", Balance: "0.1824", FiatValue: generic.Try(decimal.NewFromString("11673.60")), Decimals: 8},
		},
	},
	{
		chain:   "polygon",
		name:    "Polygon Wallet",
		chainID: "137",
		balance: "3421.87 MATIC",
		tokens: []core.Token{
			{Symbol: "MATIC", Name: "Polygon", ChainID: "137", Balance: "3421.87", FiatValue: generic.Try(decimal.NewFromString("2908.59")), Decimals: 18},
			{Symbol: "USDC", Name: "USD Coin", ChainID: "137", Balance: "420.00", FiatValue: generic.Try(decimal.NewFromString("420.00")), Decimals: 6},
		},
	},
}

func (s *service) Wallets(userID string) []*core.Wallet {
	s.mux.Lock()
	defer s.mux.Unlock()

	wallets := make([]*core.Wallet, 0, len(chains))
	for i, spec := range chains {
		fiat := decimal.Zero
		for _, t := range spec.tokens {
			fiat = fiat.Add(t.FiatValue)
		}

		wallets = append(wallets, &core.Wallet{
			ID:          fmt.Sprintf("w%d", i+1),
			UserID:      userID,
			Chain:       spec.chain,
			Name:        spec.name,
			Address:     s.addressLocked(spec.chain),
			Balance:     spec.balance,
			FiatBalance: fiat,
			Tokens:      append([]core.Token(nil), spec.tokens...),
		})
	}

	return wallets
}

type txSpec struct {
	typ      core.TransactionType
	status   core.TransactionStatus
	token    string
	chainID  string
	amount   string
	fee      string
	ageHours int
}

var txSpecs = []txSpec{
	{core.TransactionTypeReceive, core.TransactionStatusCompleted, "ETH", "1", "0.5", "0", 2},
	{core.TransactionTypeSend, core.TransactionStatusCompleted, "ETH", "1", "0.12", "0.002", 6},
	{core.TransactionTypeSwap, core.TransactionStatusCompleted, "USDC", "1", "500", "1.5", 12},
	{core.TransactionTypeSend, core.TransactionStatusFailed, "LINK", "1", "10", "0.002", 26},
	{core.TransactionTypeBridge, core.TransactionStatusCompleted, "USDC", "137", "250", "0.8", 30},
	{core.TransactionTypeReceive, core.TransactionStatusCompleted, "BTC", "bitcoin", "0.03", "0", 48},
	{core.TransactionTypeSend, core.TransactionStatusCompleted, "MATIC", "137", "120", "0.01", 55},
	{core.TransactionTypeSwap, core.TransactionStatusCompleted, "ETH", "1", "0.25", "0.9", 72},
	{core.TransactionTypeReceive, core.TransactionStatusCompleted, "USDC", "1", "1000", "0", 96},
	{core.TransactionTypeSend, core.TransactionStatusCompleted, "ETH", "1", "0.05", "0.002", 120},
}

func (s *service) Transactions(userID string) []*core.Transaction {
	s.mux.Lock()
	defer s.mux.Unlock()

	now := time.Now()
	txs := make([]*core.Transaction, 0, len(txSpecs))
	for i, spec := range txSpecs {
		chain := "ethereum"
		if spec.chainID == "137" {
			chain = "polygon"
		} else if spec.chainID == "bitcoin" {
			chain = "bitcoin"
		}

		txs = append(txs, &core.Transaction{
			ID:          fmt.Sprintf("tx%d", i+1),
			UserID:      userID,
			From:        s.addressLocked(chain),
			To:          s.addressLocked(chain),
			Amount:      generic.Try(decimal.NewFromString(spec.amount)),
			TokenSymbol: spec.token,
			ChainID:     spec.chainID,
			Type:        spec.typ,
			Status:      spec.status,
			Fee:         generic.Try(decimal.NewFromString(spec.fee)),
			Hash:        s.hashLocked(),
			CreatedAt:   now.Add(-time.Duration(spec.ageHours) * time.Hour),
		})
	}

	return txs
}

func (s *service) TxHash() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.hashLocked()
}

const hexDigits = "0123456789abcdef"

func (s *service) addressLocked(chain string) string {
	if chain == "bitcoin" {
		return "bc1q" + s.randomHexLocked(38)
	}
	return "0x" + s.randomHexLocked(40)
}

func (s *service) hashLocked() string {
	return "0x" + s.randomHexLocked(64)
}

func (s *service) randomHexLocked(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = hexDigits[s.rng.Intn(len(hexDigits))]
	}
	return string(b)
}
