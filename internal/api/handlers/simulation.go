package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"adwords-sim/internal/analysis"
	"adwords-sim/internal/api/models"
	"adwords-sim/internal/config"
	"adwords-sim/internal/data"
	"adwords-sim/internal/simulate"
	"adwords-sim/internal/strategy"

	"github.com/gin-gonic/gin"
)

// SimulationHandler handles simulation runs and their cached ledgers
type SimulationHandler struct {
	cache       *data.RunCache
	universeDir string
	logger      *slog.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(cache *data.RunCache, universeDir string, logger *slog.Logger) *SimulationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulationHandler{cache: cache, universeDir: universeDir, logger: logger}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	strat, err := strategy.New(req.Strategy, req.Params)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_STRATEGY", err)
		return
	}

	cfg, err := h.buildConfig(req.Universe)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_UNIVERSE", err)
		return
	}

	u, err := cfg.Build()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_UNIVERSE", err)
		return
	}

	result, err := simulate.New().Run(u, cfg.Timeline, strat)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "SIMULATION_ERROR", err)
		return
	}

	id := h.cache.Put(result)
	h.logger.Info("simulation finished",
		"id", id,
		"strategy", result.Strategy,
		"steps", len(result.Ledger),
		"revenue", result.TotalRevenue,
	)

	response := models.SimulationResponse{
		ID:          id,
		Status:      "completed",
		Summary:     convertSummary(analysis.Summarize(result)),
		Advertisers: result.Advertisers,
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, response)
}

// GetLedger handles GET /api/v1/simulations/:id/ledger
func (h *SimulationHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.cache.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", fmt.Errorf("simulation %q not found or expired", id))
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:       id,
		Strategy: result.Strategy,
		Ledger:   convertLedger(result.Ledger),
	})
}

// CompareSimulations handles POST /api/v1/simulations/compare
func (h *SimulationHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	selectors := req.Strategies
	if len(selectors) == 0 {
		for _, k := range strategy.All() {
			selectors = append(selectors, string(k))
		}
	}
	strats := make([]strategy.Strategy, 0, len(selectors))
	for _, sel := range selectors {
		s, err := strategy.New(sel, req.Params)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_STRATEGY", err)
			return
		}
		strats = append(strats, s)
	}

	cfg, err := h.buildConfig(req.Universe)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_UNIVERSE", err)
		return
	}

	// Every strategy gets its own freshly built universe.
	results, err := simulate.New().Compare(cfg.Build, cfg.Timeline, strats)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_UNIVERSE", err)
		return
	}

	ids := make(map[*simulate.Result]string, len(results))
	for _, res := range results {
		ids[res] = h.cache.Put(res)
	}

	ranked := analysis.RankByRevenue(results)
	rankings := make([]models.Ranking, 0, len(ranked))
	for _, r := range ranked {
		rankings = append(rankings, models.Ranking{
			Rank:       r.Rank,
			ID:         ids[r.Result],
			RunSummary: convertSummary(r.Summary),
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Rankings: rankings})
}

// buildConfig resolves the universe of a request. With no universe the
// built-in sample is used; a preset is loaded from the universe directory
// and inline sections are laid over it.
func (h *SimulationHandler) buildConfig(req *models.UniverseConfig) (*config.Config, error) {
	if req == nil {
		return data.Sample(), nil
	}

	var base config.Config
	if req.Preset != "" {
		if filepath.Base(req.Preset) != req.Preset || req.Preset == ".." {
			return nil, fmt.Errorf("invalid preset name %q", req.Preset)
		}
		path := filepath.Join(h.universeDir, req.Preset+".yaml")
		loaded, err := config.LoadUnchecked(path)
		if err != nil {
			h.logger.Warn("failed to load universe preset", "path", path, "error", err)
			return nil, fmt.Errorf("unknown preset %q", req.Preset)
		}
		base = *loaded
	}

	merged := config.MergeUniverse(base, toConfig(req))
	if err := merged.ValidateUniverse(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func toConfig(req *models.UniverseConfig) config.Config {
	var cfg config.Config
	for _, a := range req.Advertisers {
		cfg.Advertisers = append(cfg.Advertisers, config.AdvertiserConfig{ID: a.ID, Budget: a.Budget})
	}
	for _, q := range req.Queries {
		cfg.Queries = append(cfg.Queries, config.QueryConfig{
			Label:       q.Label,
			Advertisers: q.Advertisers,
			Bids:        q.Bids,
		})
	}
	cfg.Timeline = req.Timeline
	return cfg
}

func convertSummary(s analysis.Summary) models.RunSummary {
	return models.RunSummary{
		Strategy:             s.Strategy,
		Steps:                s.Steps,
		Wins:                 s.Wins,
		Exhaustions:          s.Exhaustions,
		TotalRevenue:         s.TotalRevenue,
		TotalBudget:          s.TotalBudget,
		TotalSpent:           s.TotalSpent,
		Utilization:          s.Utilization,
		ExhaustedAdvertisers: s.ExhaustedAdvertisers,
	}
}

func convertLedger(ledger []simulate.LedgerRow) []models.LedgerRow {
	result := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		result[i] = models.LedgerRow{
			Index:          row.Index,
			Query:          row.QueryLabel,
			Outcome:        string(row.Outcome),
			AdvertiserID:   row.AdvertiserID,
			Bid:            row.Bid,
			Score:          row.Score,
			Budget:         row.Budget,
			Remaining:      row.Remaining,
			AmountSpent:    row.AmountSpent,
			Charged:        row.Charged,
			Revenue:        row.Revenue,
			CumRevenue:     row.CumRevenue,
			CandidatesLeft: row.CandidatesLeft,
		}
	}
	return result
}

func respondError(c *gin.Context, status int, code string, err error) {
	detail := models.ErrorDetail{Code: code, Message: err.Error()}
	if errors.Is(err, strategy.ErrUnknownStrategy) {
		detail.Details = map[string]interface{}{"valid": strategy.All()}
	}
	c.JSON(status, models.ErrorResponse{Error: detail})
}
