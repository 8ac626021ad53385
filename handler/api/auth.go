package api

import (
	"net/http"

	"github.com/asaskevich/govalidator"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
)

func (s *Server) socialLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Provider  string `json:"provider"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		NewWallet bool   `json:"newWallet"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Provider == "" || body.Email == "" {
		s.renderErr(w, http.StatusBadRequest, "provider and email are required")
		return
	}

	if !govalidator.IsEmail(body.Email) {
		s.renderErr(w, http.StatusBadRequest, "invalid email")
		return
	}

	user, token, err := s.accountz.Login(r.Context(), core.LoginInput{
		Provider:  body.Provider,
		Email:     body.Email,
		Password:  body.Password,
		NewWallet: body.NewWallet,
	})

	if err != nil {
		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var body core.ProfileUpdate
	if err := decodeBody(r, &body); err != nil {
		s.renderErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := sessionFrom(r.Context())
	user, err := s.accountz.UpdateProfile(r.Context(), sess.UserID, body)
	if err != nil {
		if store.IsErrNotFound(err) {
			s.renderErr(w, http.StatusNotFound, "user not found")
			return
		}

		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, user)
}
