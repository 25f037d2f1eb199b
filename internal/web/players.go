package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kicker/internal/back"
	"kicker/internal/util"

	"github.com/go-chi/chi"
)

func (s *Server) postPlayer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.error(w, util.ErrPublic("invalid request payload"))
		return
	}

	player, err := s.back.RegisterPlayer(payload.Name)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, player)
}

func (s *Server) getPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.back.GetPlayers()
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, emptyAsList(players))
}

func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := s.back.GetLeaderboard()
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, emptyAsList(players))
}

func (s *Server) getPlayerStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.error(w, util.ErrPublic("player id must be a valid integer"))
		return
	}

	stats, err := s.back.GetPlayerStats(id)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, stats)
}

// emptyAsList keeps empty listings as JSON [] instead of null.
func emptyAsList(players []back.Player) []back.Player {
	if players == nil {
		return []back.Player{}
	}

	return players
}
