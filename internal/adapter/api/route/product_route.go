package route

import (
	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos e estoque
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.ListLowStock)
		products.GET("/sku/:sku", productController.FindBySKU)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.POST("/:id/movements", productController.ApplyMovement)
		products.GET("/:id/movements", productController.ListMovements)
	}
}
