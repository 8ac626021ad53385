package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halcyonlabs/demo-wallet/core"
)

type Config struct {
	// Debug surfaces internal error detail in 500 bodies.
	Debug bool
}

func New(
	accountz core.AccountService,
	ledgerz core.LedgerService,
	quotez core.QuoteService,
	securityz core.SecurityService,
	wallets core.WalletStore,
	transactions core.TransactionStore,
	rewards core.RewardStore,
	recoveries core.RecoveryStore,
	sessions core.SessionVerifier,
	logger *slog.Logger,
	cfg Config,
) *Server {
	return &Server{
		accountz:     accountz,
		ledgerz:      ledgerz,
		quotez:       quotez,
		securityz:    securityz,
		wallets:      wallets,
		transactions: transactions,
		rewards:      rewards,
		recoveries:   recoveries,
		sessions:     sessions,
		logger:       logger.With("server", "api"),
		cfg:          cfg,
	}
}

type Server struct {
	accountz     core.AccountService
	ledgerz      core.LedgerService
	quotez       core.QuoteService
	securityz    core.SecurityService
	wallets      core.WalletStore
	transactions core.TransactionStore
	rewards      core.RewardStore
	recoveries   core.RecoveryStore
	sessions     core.SessionVerifier
	logger       *slog.Logger
	cfg          Config
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.notFound)

	r.Post("/auth/social-login", s.socialLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.identity)

		r.Put("/auth/profile", s.updateProfile)

		r.Get("/wallets", s.listWallets)
		r.Get("/wallets/{id}/transactions", s.listTransactions)

		r.Post("/transactions/send", s.send)

		r.Post("/swap", s.swapQuote)
		r.Post("/swap/execute", s.swapExecute)
		r.Post("/bridge", s.bridgeQuote)
		r.Post("/bridge/execute", s.bridgeExecute)

		r.Post("/security/scan", s.securityScan)

		r.Post("/recovery/request", s.createRecovery)
		r.Get("/recovery/requests", s.listRecovery)

		r.Get("/rewards", s.getRewards)
	})

	return r
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderErr(w, http.StatusNotFound, "not found")
}
