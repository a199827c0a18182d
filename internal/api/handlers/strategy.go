package handlers

import (
	"net/http"

	"github.com/Lejoon/mortage-repayment/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "mortgage_focus",
			Description: "Pays the mandatory amortization, then sends all remaining cash to extra principal. No investing.",
			Parameters:  []models.ParameterInfo{},
		},
		{
			Name:        "investment_focus",
			Description: "Pays only the mandatory amortization and invests all remaining cash in the growth asset.",
			Parameters:  []models.ParameterInfo{},
		},
		{
			Name:        "blended",
			Description: "Splits the surplus after mandatory amortization between extra principal and investment by a fixed fraction.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "principal_share",
					Type:        "float",
					Description: "Fraction of surplus cash sent to extra principal, in [0,1]",
					Default:     0.5,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
