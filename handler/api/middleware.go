package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/halcyonlabs/demo-wallet/core"
)

type ctxKey int

const sessionKey ctxKey = iota

// identity resolves the caller. A bearer token is verified; the x-user-id
// header and the default_user fallback survive only for the demo client and
// carry no authentication whatsoever.
func (s *Server) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *core.Session

		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			v, err := s.sessions.Verify(r.Context(), strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				s.logger.Debug("token rejected", "err", err)
			} else {
				sess = v
			}
		}

		if sess == nil {
			userID := r.Header.Get("x-user-id")
			if userID == "" {
				userID = "default_user"
			}
			sess = &core.Session{UserID: userID}
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *core.Session {
	if sess, ok := ctx.Value(sessionKey).(*core.Session); ok {
		return sess
	}
	return &core.Session{UserID: "default_user"}
}
