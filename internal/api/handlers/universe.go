package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"adwords-sim/internal/api/models"
	"adwords-sim/internal/config"
	"adwords-sim/internal/data"

	"github.com/gin-gonic/gin"
)

// UniverseHandler serves universe presets from a directory of YAML files
type UniverseHandler struct {
	universeDir string
	logger      *slog.Logger
}

// NewUniverseHandler creates a new universe handler
func NewUniverseHandler(universeDir string, logger *slog.Logger) *UniverseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if abs, err := filepath.Abs(universeDir); err == nil {
		universeDir = abs
	}
	return &UniverseHandler{universeDir: universeDir, logger: logger}
}

// ListUniverses handles GET /api/v1/universes
func (h *UniverseHandler) ListUniverses(c *gin.Context) {
	universes := []models.UniverseInfo{}

	entries, err := os.ReadDir(h.universeDir)
	if err != nil {
		h.logger.Warn("failed to read universe directory", "dir", h.universeDir, "error", err)
		c.JSON(http.StatusOK, gin.H{"universes": universes})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.universeDir, entry.Name())
		cfg, err := config.LoadUnchecked(path)
		if err != nil {
			h.logger.Warn("skipping universe file", "path", path, "error", err)
			continue
		}
		universes = append(universes, models.UniverseInfo{
			ID:          strings.TrimSuffix(entry.Name(), ".yaml"),
			File:        path,
			Advertisers: len(cfg.Advertisers),
			Queries:     len(cfg.Queries),
			Steps:       len(cfg.Timeline),
		})
	}

	c.JSON(http.StatusOK, gin.H{"universes": universes})
}

// GetSample handles GET /api/v1/universes/sample
func (h *UniverseHandler) GetSample(c *gin.Context) {
	c.JSON(http.StatusOK, fromConfig(data.Sample()))
}

func fromConfig(cfg *config.Config) models.UniverseConfig {
	out := models.UniverseConfig{Timeline: cfg.Timeline}
	for _, a := range cfg.Advertisers {
		out.Advertisers = append(out.Advertisers, models.AdvertiserConfig{ID: a.ID, Budget: a.Budget})
	}
	for _, q := range cfg.Queries {
		out.Queries = append(out.Queries, models.QueryConfig{
			Label:       q.Label,
			Advertisers: q.Advertisers,
			Bids:        q.Bids,
		})
	}
	return out
}
