package route

import (
	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/controller"
)

// RegisterRiskRoutes registra as rotas do módulo de análise de risco
func RegisterRiskRoutes(r *gin.RouterGroup, riskController *controller.RiskController) {
	risk := r.Group("/risk")
	{
		risk.POST("/check", riskController.AssessCheck)
	}
}
