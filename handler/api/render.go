package api

import (
	"encoding/json"
	"net/http"

	"github.com/oxtoacart/bpool"
)

var buffers = bpool.NewBufferPool(64)

func (s *Server) renderJSON(w http.ResponseWriter, status int, v any) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderErr(w http.ResponseWriter, status int, message string) {
	s.renderJSON(w, status, map[string]string{"message": message})
}

func (s *Server) renderInternal(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)

	message := "internal server error"
	if s.cfg.Debug {
		message = err.Error()
	}

	s.renderErr(w, http.StatusInternalServerError, message)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
