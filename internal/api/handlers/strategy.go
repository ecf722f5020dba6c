package handlers

import (
	"net/http"

	"adwords-sim/internal/api/models"
	"adwords-sim/internal/model"
	"adwords-sim/internal/strategy"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

var strategyDescriptions = map[strategy.Kind]string{
	strategy.KindGreedy:         "Awards each query to its first candidate. Earns one unit per step and never charges budgets.",
	strategy.KindBalance:        "Awards each query to the candidate with the most remaining budget, then charges its bid.",
	strategy.KindGeneralBalance: "Scores each candidate from its bid and spend-to-budget ratio, charges the best one that can pay and drops those that cannot.",
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := make([]models.StrategyInfo, 0, len(strategy.All()))
	for i, k := range strategy.All() {
		info := models.StrategyInfo{
			Name:        string(k),
			Selector:    string(rune('1' + i)),
			Description: strategyDescriptions[k],
			Parameters:  []models.ParameterInfo{},
		}
		if k == strategy.KindGeneralBalance {
			info.Parameters = append(info.Parameters, models.ParameterInfo{
				Name:        "scoring",
				Type:        "string",
				Description: "Score function: \"remaining-budget\" or \"spent-fraction\"",
				Default:     model.ScorerRemainingBudget,
			})
		}
		strategies = append(strategies, info)
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
