package route

import (
	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas a prazo
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.GET("/:id/installments", saleController.ListInstallments)
		sales.DELETE("/:id", saleController.Delete)
	}

	r.GET("/clients/:id/sales", saleController.ListByClient)

	installments := r.Group("/installments")
	{
		installments.GET("/overdue", saleController.ListOverdue)
		installments.GET("/:id", saleController.GetInstallment)
		installments.POST("/:id/payments", saleController.RecordPayment)
	}
}
