package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/halcyonlabs/demo-wallet/core"
)

type bridgeBody struct {
	FromChain string `json:"fromChain"`
	ToChain   string `json:"toChain"`
	Token     string `json:"token"`
	Amount    string `json:"amount"`
}

func (s *Server) decodeBridge(w http.ResponseWriter, r *http.Request) (core.BridgeInput, bool) {
	var body bridgeBody
	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return core.BridgeInput{}, false
	}

	if body.FromChain == "" || body.ToChain == "" || body.Token == "" || body.Amount == "" {
		s.renderErr(w, http.StatusBadRequest, "fromChain, toChain, token and amount are required")
		return core.BridgeInput{}, false
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil || !amount.IsPositive() {
		s.renderErr(w, http.StatusBadRequest, "invalid amount")
		return core.BridgeInput{}, false
	}

	return core.BridgeInput{
		FromChain:   body.FromChain,
		ToChain:     body.ToChain,
		TokenSymbol: body.Token,
		Amount:      amount,
	}, true
}

func (s *Server) bridgeQuote(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeBridge(w, r)
	if !ok {
		return
	}

	q, err := s.quotez.Bridge(r.Context(), input)
	if err != nil {
		s.renderQuoteErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, q)
}

func (s *Server) bridgeExecute(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeBridge(w, r)
	if !ok {
		return
	}

	sess := sessionFrom(r.Context())
	tx, err := s.ledgerz.ExecuteBridge(r.Context(), sess.UserID, input)
	if err != nil {
		s.renderQuoteErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, tx)
}
