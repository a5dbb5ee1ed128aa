package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	leaderboardservice "podium/contexts/live-competition/leaderboard-service"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	leaderboardhttp "podium/contexts/live-competition/leaderboard-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "podium/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	leaderboard leaderboardservice.Module
}

func New(leaderboard leaderboardservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		leaderboard: leaderboard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/competition/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("POST /v1/competition/scores", s.handleSubmitScore)
	s.mux.HandleFunc("GET /v1/competition/campaigns/{campaign_id}/ranking", s.handleRanking)
	s.mux.HandleFunc("GET /v1/competition/campaigns/{campaign_id}/neighbors", s.handleNeighbors)
	s.mux.HandleFunc("GET /v1/competition/campaigns/{campaign_id}/result", s.handleResult)
	s.mux.HandleFunc("POST /v1/competition/campaigns/{campaign_id}/reward/disburse", s.handleRewardDisburse)
	s.mux.HandleFunc("POST /v1/competition/campaigns/{campaign_id}/reward/fail", s.handleRewardFail)
	s.mux.HandleFunc("GET /v1/competition/games", s.handleListGames)
	s.mux.HandleFunc("POST /v1/competition/expiry/sweep", s.handleSweep)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req leaderboardhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid json")
		return
	}
	resp, err := s.leaderboard.Handler.CreateCampaignHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req leaderboardhttp.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid json")
		return
	}
	resp, err := s.leaderboard.Handler.SubmitScoreHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, resp)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaign_id")
	resp, err := s.leaderboard.Handler.RankingHandler(r.Context(), campaignID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaign_id")
	query := r.URL.Query()

	count := 0
	if raw := query.Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_count", "count must be an integer")
			return
		}
		count = parsed
	}

	resp, err := s.leaderboard.Handler.NeighborsHandler(
		r.Context(),
		campaignID,
		query.Get("participant_id"),
		count,
		strings.ToLower(query.Get("direction")),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	campaignID := r.PathValue("campaign_id")
	resp, err := s.leaderboard.Handler.ResultHandler(r.Context(), campaignID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRewardDisburse(w http.ResponseWriter, r *http.Request) {
	if err := s.leaderboard.Handler.MarkRewardDisbursedHandler(r.Context(), r.PathValue("campaign_id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "disbursed"})
}

func (s *Server) handleRewardFail(w http.ResponseWriter, r *http.Request) {
	if err := s.leaderboard.Handler.MarkRewardFailedHandler(r.Context(), r.PathValue("campaign_id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "failed"})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.ListGamesHandler(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req leaderboardhttp.SweepRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", "request body must be valid json")
			return
		}
	}
	resp, err := s.leaderboard.Handler.SweepHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidGameID),
		errors.Is(err, domainerrors.ErrInvalidParticipantID),
		errors.Is(err, domainerrors.ErrInvalidCampaignID),
		errors.Is(err, domainerrors.ErrInvalidCampaignType),
		errors.Is(err, domainerrors.ErrInvalidScore),
		errors.Is(err, domainerrors.ErrInvalidTimestamp),
		errors.Is(err, domainerrors.ErrInvalidTimeWindow),
		errors.Is(err, domainerrors.ErrInvalidNeighborRequest):
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, domainerrors.ErrGameNotFound):
		writeError(w, http.StatusNotFound, "game_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, domainerrors.ErrCampaignAlreadyExists):
		writeError(w, http.StatusConflict, "campaign_already_exists", err.Error())
	case errors.Is(err, domainerrors.ErrCampaignNotExpired):
		writeError(w, http.StatusPreconditionFailed, "campaign_not_expired", err.Error())
	case errors.Is(err, domainerrors.ErrCampaignAlreadyExpired):
		writeError(w, http.StatusPreconditionFailed, "campaign_already_expired", err.Error())
	case errors.Is(err, domainerrors.ErrRewardAlreadySettled):
		writeError(w, http.StatusPreconditionFailed, "reward_already_settled", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, leaderboardhttp.ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
