// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge.
//   - POST /daily/new   → start today's round (medium, shared answer)
//   - GET  /daily/today → today's date key and whether it was already finished
//
// Guesses go through POST /game/guess like any other round. With history
// enabled a date can only be finished once.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/daily"
	"github.com/robalobadob/numguess/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/today", s.handleDailyToday)
	})
}

type dailyTodayRes struct {
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// playedToday reports today's date key and whether history already holds a
// finished daily round for it.
func (s *Server) playedToday(r *http.Request) (string, bool) {
	date := daily.DateKey(s.now())
	if s.history == nil {
		return date, false
	}
	played, err := s.history.PlayedDaily(r.Context(), date)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("check daily")
		return date, false
	}
	return date, played
}

func (s *Server) handleDailyToday(w http.ResponseWriter, r *http.Request) {
	date, played := s.playedToday(r)
	_ = json.NewEncoder(w).Encode(dailyTodayRes{Date: date, Played: played})
}

// handleDailyNew creates today's round unless it was already finished.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, played := s.playedToday(r)
	if played {
		writeError(w, http.StatusConflict, "already_played")
		return
	}

	st := game.Medium.Settings()
	g := game.New(game.Medium, daily.Answer(s.now(), s.salt, st.Low, st.High))
	g.Daily = date
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save daily round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(roundInfo(g))
}
