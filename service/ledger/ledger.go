package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"

	"github.com/halcyonlabs/demo-wallet/core"
)

const (
	rewardExpPerTransaction = 10
	rewardSource            = "Transaction Completed"
)

var sendFee = generic.Try(decimal.NewFromString("0.002"))

// tokenChains maps token symbols to the chain id stamped on transactions.
var tokenChains = map[string]string{
	"ETH":   "1",
	"USDC":  "1",
	"LINK":  "1",
	"BTC":   "bitcoin",
	"MATIC": "137",
}

func New(
	transactions core.TransactionStore,
	quotez core.QuoteService,
	fixtures core.FixtureService,
	logger *slog.Logger,
) core.LedgerService {
	return &service{
		transactions: transactions,
		quotez:       quotez,
		fixtures:     fixtures,
		logger:       logger.With("service", "ledger"),
	}
}

type service struct {
	transactions core.TransactionStore
	quotez       core.QuoteService
	fixtures     core.FixtureService
	logger       *slog.Logger
}

func (s *service) Send(ctx context.Context, userID string, input core.SendInput) (*core.Transaction, error) {
	tx := &core.Transaction{
		ID:          uuid.NewString(),
		From:        input.FromWalletID,
		To:          input.To,
		Amount:      input.Amount,
		TokenSymbol: input.TokenSymbol,
		ChainID:     chainFor(input.TokenSymbol),
		Type:        core.TransactionTypeSend,
		Status:      core.TransactionStatusPending,
		Fee:         sendFee,
		Hash:        s.fixtures.TxHash(),
		CreatedAt:   time.Now(),
	}

	return s.append(ctx, userID, tx)
}

func (s *service) ExecuteSwap(ctx context.Context, userID string, input core.SwapInput) (*core.Transaction, error) {
	quote, err := s.quotez.Swap(ctx, input)
	if err != nil {
		return nil, err
	}

	tx := &core.Transaction{
		ID:          uuid.NewString(),
		From:        input.FromToken,
		To:          input.ToToken,
		Amount:      input.Amount,
		TokenSymbol: input.FromToken,
		ChainID:     chainFor(input.FromToken),
		Type:        core.TransactionTypeSwap,
		Status:      core.TransactionStatusPending,
		Fee:         quote.Fee,
		Hash:        s.fixtures.TxHash(),
		CreatedAt:   time.Now(),
	}

	return s.append(ctx, userID, tx)
}

func (s *service) ExecuteBridge(ctx context.Context, userID string, input core.BridgeInput) (*core.Transaction, error) {
	quote, err := s.quotez.Bridge(ctx, input)
	if err != nil {
		return nil, err
	}

	tx := &core.Transaction{
		ID:          uuid.NewString(),
		From:        input.FromChain,
		To:          input.ToChain,
		Amount:      input.Amount,
		TokenSymbol: input.TokenSymbol,
		ChainID:     chainFor(input.TokenSymbol),
		Type:        core.TransactionTypeBridge,
		Status:      core.TransactionStatusPending,
		Fee:         quote.Fee,
		Hash:        s.fixtures.TxHash(),
		CreatedAt:   time.Now(),
	}

	return s.append(ctx, userID, tx)
}

func (s *service) append(ctx context.Context, userID string, tx *core.Transaction) (*core.Transaction, error) {
	reward := &core.Reward{
		ID:          uuid.NewString(),
		Type:        "transaction",
		ExpAmount:   rewardExpPerTransaction,
		Source:      rewardSource,
		Description: fmt.Sprintf("Completed a %s transaction", tx.Type),
		CreatedAt:   tx.CreatedAt,
	}

	if err := s.transactions.Append(ctx, userID, tx, reward); err != nil {
		s.logger.Error("transactions.Append", "user", userID, "err", err)
		return nil, err
	}

	return tx, nil
}

func chainFor(token string) string {
	if chain, ok := tokenChains[token]; ok {
		return chain
	}
	return "1"
}
