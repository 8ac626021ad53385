package api

import (
	"net/http"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/store"
)

func (s *Server) getRewards(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	ledger, err := s.rewards.Find(r.Context(), sess.UserID)
	if err != nil {
		if store.IsErrNotFound(err) {
			// Unknown callers get an empty ledger, mirroring the empty
			// wallet list behavior.
			s.renderJSON(w, http.StatusOK, &core.UserRewards{
				UserID:   sess.UserID,
				TotalExp: 0,
				Level:    core.LevelForExp(0),
				Entries:  []*core.Reward{},
			})
			return
		}

		s.renderInternal(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, ledger)
}
