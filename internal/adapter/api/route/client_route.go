package route

import (
	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/controller"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.GET("/document/:document", clientController.FindByDocument)
		clients.PUT("/:id", clientController.Update)
		clients.PATCH("/:id/status", clientController.UpdateStatus)
	}
}
