// internal/httpserver/server.go
//
// HTTP server wiring for `numguess serve`.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Round endpoints: POST /game/new, POST /game/guess.
//   - Daily challenge: mounted under /daily (routes_daily.go).
//   - Stats, simulation and history: GET /stats, POST /sim, GET /history.
//
// Notes:
//   - All players share one stats record, saved to the configured file after
//     every finished round. mu serializes access to it.
//   - Active rounds live in the Store until they finish.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/bot"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/history"
	"github.com/robalobadob/numguess/internal/stats"
	"github.com/robalobadob/numguess/internal/store"
)

// Options configures a Server. Store and Stats are required.
type Options struct {
	Store        store.Store
	Stats        *stats.Manager
	History      *history.Store // optional
	SavePath     string
	DailySalt    string
	ClientOrigin string
	Now          func() time.Time

	// FixedAnswers lets POST /game/new pick the answer. Test setups only:
	// those rounds still count toward the shared stats.
	FixedAnswers bool
}

// Server bundles router, round store, stats record and history.
type Server struct {
	r        *chi.Mux
	store    store.Store
	history  *history.Store
	savePath string
	salt     string
	now      func() time.Time
	fixed    bool

	mu    sync.Mutex // guards stats
	stats *stats.Manager
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.ClientOrigin == "" {
		o.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:        chi.NewRouter(),
		store:    o.Store,
		history:  o.History,
		savePath: o.SavePath,
		salt:     o.DailySalt,
		now:      o.Now,
		fixed:    o.FixedAnswers,
		stats:    o.Stats,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{o.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"numguess","endpoints":["/health","/stats","POST /game/new","POST /game/guess","POST /sim","/history","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/stats", s.handleStats)
	s.r.Post("/sim", s.handleSim)
	s.r.Get("/history", s.handleHistory)
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Difficulty string `json:"difficulty"` // "easy" | "medium" | "hard"; empty means easy
	Answer     int    `json:"answer"`     // honored only with Options.FixedAnswers
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	Difficulty string `json:"difficulty"`
	Low        int    `json:"low"`
	High       int    `json:"high"`
	Chances    int    `json:"chances"`
	Daily      string `json:"daily,omitempty"`
}

func roundInfo(g *game.Round) newGameRes {
	return newGameRes{
		GameID:     g.ID,
		Difficulty: string(g.Difficulty),
		Low:        g.Low,
		High:       g.High,
		Chances:    g.Chances,
		Daily:      g.Daily,
	}
}

// handleNewGame starts a round and keeps it in the store.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	d := game.Easy
	if req.Difficulty != "" {
		parsed, err := game.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
		d = parsed
	}

	answer := 0
	if s.fixed {
		answer = req.Answer
	}
	g := game.New(d, answer)
	if g.Answer < g.Low || g.Answer > g.High {
		writeError(w, http.StatusBadRequest, "answer_out_of_range")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(roundInfo(g))
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  int    `json:"guess"`
}
type guessRes struct {
	Result    game.Result `json:"result"` // "lower" | "higher" | "correct"
	State     string      `json:"state"`  // "playing" | "won" | "lost"
	TriesLeft int         `json:"triesLeft"`
	Answer    int         `json:"answer,omitempty"` // revealed once finished
}

// handleGuess applies a guess to an active round and records finished
// rounds in stats and history.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	// The round is shared by concurrent requests; read it only under mu.
	s.mu.Lock()
	res, state, err := g.ApplyGuess(req.Guess)
	out := guessRes{Result: res, State: state, TriesLeft: g.TriesLeft()}
	finished := err == nil && g.Finished
	var entry history.Entry
	if err == nil {
		rec := game.Recorder{Stats: s.stats}
		rec.Guess()
		if finished {
			out.Answer = g.Answer
			entry = history.FromRound(g, s.now())
			rec.Finish(g)
			if err := s.stats.Save(s.savePath); err != nil {
				log.Error().Err(err).Str("path", s.savePath).Msg("save stats")
			}
		}
	}
	s.mu.Unlock()

	switch {
	case errors.Is(err, game.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, "out_of_range")
		return
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if finished {
		s.finish(r.Context(), entry)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// finish writes a finished round to history and drops it from the store.
func (s *Server) finish(ctx context.Context, e history.Entry) {
	if s.history != nil {
		if err := s.history.Insert(ctx, e); err != nil {
			log.Warn().Err(err).Str("gameId", e.ID).Msg("insert history")
		}
	}
	if err := s.store.Delete(ctx, e.ID); err != nil {
		log.Warn().Err(err).Str("gameId", e.ID).Msg("delete round")
	}
}

// ------------------------------ STATS --------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := *s.stats
	s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(snapshot)
}

// ------------------------------- SIM ---------------------------------------

type simReq struct {
	Low    int  `json:"low"`
	High   int  `json:"high"`
	Target *int `json:"target"` // optional; random in [low, high] when absent
}
type simRes struct {
	Target  int   `json:"target"`
	Guesses []int `json:"guesses"`
	Stalled bool  `json:"stalled"`
}

func (s *Server) handleSim(w http.ResponseWriter, r *http.Request) {
	var req simReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Low >= req.High {
		writeError(w, http.StatusBadRequest, "invalid_range")
		return
	}
	target := game.RandomInt(req.Low, req.High)
	if req.Target != nil {
		target = *req.Target
	}

	guesses, err := bot.Simulate(req.Low, req.High, target)
	switch {
	case err == nil, errors.Is(err, bot.ErrStalled):
	case errors.Is(err, bot.ErrTargetOutOfRange):
		writeError(w, http.StatusBadRequest, "target_out_of_range")
		return
	default:
		writeError(w, http.StatusBadRequest, "invalid_range")
		return
	}
	_ = json.NewEncoder(w).Encode(simRes{Target: target, Guesses: guesses, Stalled: err != nil})
}

// ----------------------------- HISTORY -------------------------------------

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 100 {
		limit = 100
	}
	rows, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("read history")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// ------------------------------- small util --------------------------------

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
