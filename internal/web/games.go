package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"kicker/internal/back"
	"kicker/internal/util"
)

type submitGameRequest struct {
	Team1Player1 looseInt `json:"team1_player1"`
	Team1Player2 looseInt `json:"team1_player2"`
	Team2Player1 looseInt `json:"team2_player1"`
	Team2Player2 looseInt `json:"team2_player2"`
	ScoreTeam1   looseInt `json:"score_team1"`
	ScoreTeam2   looseInt `json:"score_team2"`
}

func (req submitGameRequest) validate() error {
	ids := []looseInt{req.Team1Player1, req.Team1Player2, req.Team2Player1, req.Team2Player2}
	for _, id := range ids {
		if !id.set {
			return util.ErrPublic("all fields are required")
		}
	}
	if !req.ScoreTeam1.set || !req.ScoreTeam2.set {
		return util.ErrPublic("all fields are required")
	}

	return nil
}

func (s *Server) postGame(w http.ResponseWriter, r *http.Request) {
	var payload submitGameRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, errNotAnInteger) {
			s.error(w, util.ErrPublic("player ids and scores must be valid integers"))
			return
		}
		s.error(w, util.ErrPublic("invalid request payload"))
		return
	}

	if err := payload.validate(); err != nil {
		s.error(w, err)
		return
	}

	game, err := s.back.SubmitGame(
		[2]int64{payload.Team1Player1.value, payload.Team1Player2.value},
		[2]int64{payload.Team2Player1.value, payload.Team2Player2.value},
		int(payload.ScoreTeam1.value),
		int(payload.ScoreTeam2.value),
	)
	if err != nil {
		s.error(w, err)
		return
	}

	s.response(w, http.StatusOK, struct {
		ID int64 `json:"id"`
	}{game.ID})
}

func (s *Server) getGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.back.GetGameHistory()
	if err != nil {
		s.error(w, err)
		return
	}

	if games == nil {
		games = []back.GameHistoryEntry{}
	}

	s.response(w, http.StatusOK, games)
}
