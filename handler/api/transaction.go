package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
)

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FromWalletID string `json:"fromWalletId"`
		To           string `json:"to"`
		Token        string `json:"token"`
		Amount       string `json:"amount"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.FromWalletID == "" || body.To == "" || body.Token == "" || body.Amount == "" {
		s.renderErr(w, http.StatusBadRequest, "fromWalletId, to, token and amount are required")
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil || !amount.IsPositive() {
		s.renderErr(w, http.StatusBadRequest, "invalid amount")
		return
	}

	sess := sessionFrom(r.Context())
	tx, err := s.ledgerz.Send(r.Context(), sess.UserID, core.SendInput{
		FromWalletID: body.FromWalletID,
		To:           body.To,
		TokenSymbol:  body.Token,
		Amount:       amount,
	})

	if err != nil {
		if store.IsErrNotFound(err) {
			s.renderErr(w, http.StatusNotFound, "user not found")
			return
		}

		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, tx)
}
