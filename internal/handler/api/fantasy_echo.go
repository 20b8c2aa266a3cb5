// Package api exposes the analysis engines over REST.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"CourtIQ/internal/service/ratelimit"
	"CourtIQ/internal/services/sim"
	"CourtIQ/internal/usecase"
	xhttp "CourtIQ/pkg/http"
	applogger "CourtIQ/pkg/logger"

	"CourtIQ/internal/domain/models"
)

// Heavy endpoints (simulation, search) get a per-client token bucket;
// cheap reads are unlimited.
const (
	heavyBurst  = 5.0
	heavyPerSec = 1.0
)

// FantasyHandler registers and serves the analysis API.
type FantasyHandler struct {
	analyzer *usecase.Analyzer
	limiter  *ratelimit.Limiter
	log      *applogger.Logger
}

func NewFantasyHandler(analyzer *usecase.Analyzer, limiter *ratelimit.Limiter, log *applogger.Logger) *FantasyHandler {
	return &FantasyHandler{analyzer: analyzer, limiter: limiter, log: log}
}

func (h *FantasyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.GET("/seasons", h.Seasons)
	g.GET("/players", h.Players)
	g.GET("/draft/rankings", h.DraftRankings)
	g.POST("/simulate", h.Simulate)
	g.POST("/simulate/points", h.SimulatePoints)
	g.POST("/recommendations", h.Recommendations)
}

// Simulate runs the Monte Carlo category matchup.
func (h *FantasyHandler) Simulate(c echo.Context) error {
	if resp := h.throttle(c, "simulate"); resp != nil {
		return resp(c)
	}

	var req models.SimulateRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	report, err := h.analyzer.Simulate(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "simulate", err)
	}
	return xhttp.SuccessResponse(c, report)
}

// SimulatePoints runs the points-league matchup.
func (h *FantasyHandler) SimulatePoints(c echo.Context) error {
	if resp := h.throttle(c, "simulate_points"); resp != nil {
		return resp(c)
	}

	var req models.PointsLeagueRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	report, err := h.analyzer.SimulatePoints(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "simulate_points", err)
	}
	return xhttp.SuccessResponse(c, report)
}

// Recommendations runs the roster move search.
func (h *FantasyHandler) Recommendations(c echo.Context) error {
	if resp := h.throttle(c, "recommendations"); resp != nil {
		return resp(c)
	}

	var req models.RecommendationsRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	moves, err := h.analyzer.Recommendations(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "recommendations", err)
	}
	return xhttp.ListResponse(c, moves, int64(len(moves)))
}

// DraftRankings serves the multi-season draft board.
func (h *FantasyHandler) DraftRankings(c echo.Context) error {
	var req models.RankingsRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	rankings, err := h.analyzer.DraftRankings(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "draft_rankings", err)
	}
	return xhttp.ListResponse(c, rankings, int64(len(rankings)))
}

// Players serves one season's player pool.
func (h *FantasyHandler) Players(c echo.Context) error {
	var req models.PlayersRequest
	if errs := xhttp.ReadAndValidateRequest(c, &req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	players, err := h.analyzer.Players(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "players", err)
	}
	return xhttp.ListResponse(c, players, int64(len(players)))
}

// Seasons lists available seasons.
func (h *FantasyHandler) Seasons(c echo.Context) error {
	seasons, err := h.analyzer.Seasons(c.Request().Context())
	if err != nil {
		return h.fail(c, "seasons", err)
	}
	return xhttp.SuccessResponse(c, seasons)
}

// Health reports liveness and store reachability.
func (h *FantasyHandler) Health(c echo.Context) error {
	if err := h.analyzer.Health(c.Request().Context()); err != nil {
		return xhttp.DataResponse(c, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *FantasyHandler) throttle(c echo.Context, op string) echo.HandlerFunc {
	if h.limiter == nil {
		return nil
	}
	key := op + ":" + c.RealIP()
	if h.limiter.Allow(key, heavyBurst, heavyPerSec) {
		return nil
	}
	return func(c echo.Context) error {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded, slow down")
	}
}

func (h *FantasyHandler) fail(c echo.Context, op string, err error) error {
	var notFound *usecase.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return xhttp.NotFoundResponse(c, notFound.Error())
	case errors.Is(err, sim.ErrEmptyRoster):
		return xhttp.BadRequestResponse(c, err.Error())
	default:
		h.log.Error("request failed", applogger.String("op", op), applogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}
