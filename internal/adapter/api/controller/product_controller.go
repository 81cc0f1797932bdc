package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erp-crediario/backend/internal/adapter/api/dto"
	"github.com/erp-crediario/backend/internal/adapter/repository"
	productdomain "github.com/erp-crediario/backend/internal/domain/product"
	"github.com/erp-crediario/backend/pkg/logger"
)

// ProductController gerencia as requisições de produtos e movimentações
// de estoque
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto com estoque inicial
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := productdomain.NewProduct(req.SKU, req.Name, req.Stock,
		req.MinStock, req.CostPrice, req.SalePrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	product.Description = req.Description
	product.MaxStock = req.MaxStock

	if err := c.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromProduct(product))
}

// Get busca um produto pelo ID
// @Summary Buscar produto
// @Description Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromProduct(product))
}

// FindBySKU busca um produto pelo SKU
// @Summary Buscar produto por SKU
// @Description Busca um produto pelo código SKU
// @Tags products
// @Produce json
// @Param sku path string true "SKU do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/sku/{sku} [get]
func (c *ProductController) FindBySKU(ctx *gin.Context) {
	product, err := c.productRepo.FindBySKU(ctx, ctx.Param("sku"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto por sku", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromProduct(product))
}

// List lista os produtos
// @Summary Listar produtos
// @Description Lista os produtos com paginação
// @Tags products
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	products, err := c.productRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromProducts(products))
}

// ListLowStock lista produtos com estoque abaixo do mínimo
// @Summary Listar produtos abaixo do mínimo
// @Description Lista os produtos ativos com estoque abaixo do mínimo
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) ListLowStock(ctx *gin.Context) {
	products, err := c.productRepo.FindBelowMinimum(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos abaixo do mínimo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromProducts(products))
}

// Update atualiza os dados cadastrais de um produto
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais; o estoque só muda por movimentação
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	active := product.Active
	if req.Active != nil {
		active = *req.Active
	}

	err = product.Update(req.Name, req.Description, req.MinStock, req.MaxStock,
		req.CostPrice, req.SalePrice, active)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromProduct(product))
}

// ApplyMovement aplica uma movimentação de estoque
// @Summary Movimentar estoque
// @Description Aplica uma movimentação ao estoque do produto e grava o
// @Description lançamento no razão atomicamente
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param movement body dto.MovementRequest true "Dados da movimentação"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/movements [post]
func (c *ProductController) ApplyMovement(ctx *gin.Context) {
	var req dto.MovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	movType := productdomain.MovementType(req.Type)
	var target *int
	if movType == productdomain.MovementAdjustment {
		target = req.TargetStock
	}

	movement, err := c.productRepo.RegisterMovement(ctx, ctx.Param("id"),
		movType, req.Quantity, target, req.Reason, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		case errors.Is(err, productdomain.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", err.Error()))
		case errors.Is(err, productdomain.ErrNoStockChange):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque já está no valor informado", err.Error()))
		case errors.Is(err, productdomain.ErrInvalidMovementType),
			errors.Is(err, productdomain.ErrInvalidQuantity),
			errors.Is(err, productdomain.ErrNegativeTarget):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "movimentação inválida", err.Error()))
		case errors.Is(err, repository.ErrConcurrencyConflict):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "conflito de concorrência", err.Error()))
		default:
			c.logger.Error("erro ao movimentar estoque", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao movimentar estoque", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromMovement(movement))
}

// ListMovements lista o razão de movimentações de um produto
// @Summary Histórico de movimentações
// @Description Lista as movimentações de estoque do produto em ordem de criação
// @Tags stock
// @Produce json
// @Param id path string true "ID do produto"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.MovementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/movements [get]
func (c *ProductController) ListMovements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.productRepo.FindMovements(ctx, ctx.Param("id"),
		pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.FromMovements(movements))
}
