package account

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
)

// initialRewards is the EXP counter every fresh account starts with. The
// ledger opens at the same value, which keeps a new user at level 2.
const initialRewards = 150

func New(
	users core.UserStore,
	wallets core.WalletStore,
	transactions core.TransactionStore,
	rewards core.RewardStore,
	fixtures core.FixtureService,
	tokens core.TokenIssuer,
	logger *slog.Logger,
) core.AccountService {
	return &service{
		users:        users,
		wallets:      wallets,
		transactions: transactions,
		rewards:      rewards,
		fixtures:     fixtures,
		tokens:       tokens,
		logger:       logger.With("service", "account"),
		sf:           &singleflight.Group{},
	}
}

type service struct {
	users        core.UserStore
	wallets      core.WalletStore
	transactions core.TransactionStore
	rewards      core.RewardStore
	fixtures     core.FixtureService
	tokens       core.TokenIssuer
	logger       *slog.Logger
	sf           *singleflight.Group
}

func (s *service) Login(ctx context.Context, input core.LoginInput) (*core.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	v, err, _ := s.sf.Do(email, func() (any, error) {
		return s.login(ctx, email, input)
	})

	if err != nil {
		return nil, "", err
	}

	user := v.(*core.User)
	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("tokens.Issue", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

func (s *service) login(ctx context.Context, email string, input core.LoginInput) (*core.User, error) {
	if user, err := s.users.FindEmail(ctx, email); err == nil {
		return user, nil
	} else if !store.IsErrNotFound(err) {
		return nil, err
	}

	user := &core.User{
		ID:        uuid.NewString(),
		Email:     email,
		Provider:  input.Provider,
		Rewards:   initialRewards,
		CreatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.wallets.Save(ctx, user.ID, s.fixtures.Wallets(user.ID)); err != nil {
		return nil, err
	}

	// Seed history oldest-first so the store ends up most-recent-first.
	// No reward rides along with fixture transactions.
	txs := s.fixtures.Transactions(user.ID)
	for i := len(txs) - 1; i >= 0; i-- {
		if err := s.transactions.Append(ctx, user.ID, txs[i], nil); err != nil {
			return nil, err
		}
	}

	if err := s.rewards.Init(ctx, user.ID, initialRewards, welcomeEntries()); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user", user.ID, "provider", user.Provider)
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, update core.ProfileUpdate) (*core.User, error) {
	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.TwoFAEnabled != nil {
		user.TwoFAEnabled = *update.TwoFAEnabled
	}
	if update.BackedUp != nil {
		user.BackedUp = *update.BackedUp
	}
	if update.ProModeEnabled != nil {
		user.ProModeEnabled = *update.ProModeEnabled
	}
	if update.IsPro != nil {
		user.IsPro = *update.IsPro
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func welcomeEntries() []*core.Reward {
	now := time.Now()
	return []*core.Reward{
		{
			ID:        uuid.NewString(),
			Type:      "bonus",
			ExpAmount: 10,
			Source:    "Welcome Bonus",
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Type:        "achievement",
			ExpAmount:   25,
			Source:      "Account Created",
			Description: "Created a demo wallet account",
			CreatedAt:   now,
		},
	}
}
