package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type healthzResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthzResponse{Status: "ok"})
	}
}

func (s *Server) handleReadyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "database unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, healthzResponse{Status: "ready"})
	}
}

func (s *Server) handleListGroups(groups GroupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := chi.URLParam(r, "guildID")
		if guildID == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "guild id is required"})
			return
		}

		record, err := groups.GetOrCreateGuild(r.Context(), guildID)
		if err != nil {
			s.log.Error("failed to load guild", "guild_id", guildID, "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load guild"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"data": record.Groups})
	}
}
