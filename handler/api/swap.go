package api

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/service/quote"
	"github.com/halcyonlabs/demo-wallet/store"
)

type swapBody struct {
	FromToken string `json:"fromToken"`
	ToToken   string `json:"toToken"`
	Amount    string `json:"amount"`
}

func (s *Server) decodeSwap(w http.ResponseWriter, r *http.Request) (core.SwapInput, bool) {
	var body swapBody
	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return core.SwapInput{}, false
	}

	if body.FromToken == "" || body.ToToken == "" || body.Amount == "" {
		s.renderErr(w, http.StatusBadRequest, "fromToken, toToken and amount are required")
		return core.SwapInput{}, false
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil || !amount.IsPositive() {
		s.renderErr(w, http.StatusBadRequest, "invalid amount")
		return core.SwapInput{}, false
	}

	return core.SwapInput{
		FromToken: body.FromToken,
		ToToken:   body.ToToken,
		Amount:    amount,
	}, true
}

func (s *Server) swapQuote(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeSwap(w, r)
	if !ok {
		return
	}

	q, err := s.quotez.Swap(r.Context(), input)
	if err != nil {
		s.renderQuoteErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, q)
}

func (s *Server) swapExecute(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeSwap(w, r)
	if !ok {
		return
	}

	sess := sessionFrom(r.Context())
	tx, err := s.ledgerz.ExecuteSwap(r.Context(), sess.UserID, input)
	if err != nil {
		s.renderQuoteErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, tx)
}

func (s *Server) renderQuoteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quote.ErrUnsupportedAsset):
		s.renderErr(w, http.StatusBadRequest, err.Error())
	case store.IsErrNotFound(err):
		s.renderErr(w, http.StatusNotFound, "user not found")
	default:
		s.renderInternal(w, err)
	}
}
