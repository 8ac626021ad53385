package api

import (
	"net/http"
)

func (s *Server) securityScan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TransactionIDs []string `json:"transactionIds"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(body.TransactionIDs) == 0 {
		s.renderErr(w, http.StatusBadRequest, "transactionIds are required")
		return
	}

	results, err := s.securityz.Scan(r.Context(), body.TransactionIDs)
	if err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, results)
}
