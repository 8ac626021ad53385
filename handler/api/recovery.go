package api

import (
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"github.com/halcyonlabs/demo-wallet/core"
)

func (s *Server) createRecovery(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description  string `json:"description"`
		ContactEmail string `json:"contactEmail"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Description == "" || body.ContactEmail == "" {
		s.renderErr(w, http.StatusBadRequest, "description and contactEmail are required")
		return
	}

	if !govalidator.IsEmail(body.ContactEmail) {
		s.renderErr(w, http.StatusBadRequest, "invalid contactEmail")
		return
	}

	sess := sessionFrom(r.Context())
	now := time.Now()
	req := &core.RecoveryRequest{
		ID:           uuid.NewString(),
		UserID:       sess.UserID,
		Description:  body.Description,
		ContactEmail: body.ContactEmail,
		Status:       core.RecoveryStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.recoveries.Create(r.Context(), req); err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, req)
}

func (s *Server) listRecovery(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	reqs, err := s.recoveries.List(r.Context(), sess.UserID)
	if err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, reqs)
}
