package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	SKU         string          `json:"sku" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"` // Estoque inicial, apenas na criação
	MinStock    int             `json:"min_stock"`
	MaxStock    *int            `json:"max_stock"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Active      *bool           `json:"active"`
}

// MovementRequest representa a requisição de movimentação de estoque.
// Para o tipo ajuste, target_stock indica o estoque absoluto desejado;
// para os demais tipos, quantity é a quantidade movimentada (positiva).
type MovementRequest struct {
	Type        string `json:"type" binding:"required"`
	Quantity    int    `json:"quantity"`
	TargetStock *int   `json:"target_stock"`
	Reason      string `json:"reason"`
	Reference   string `json:"reference"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"min_stock"`
	MaxStock     *int            `json:"max_stock,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	BelowMinimum bool            `json:"below_minimum"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MovementResponse representa a resposta de movimentação de estoque
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reason        string    `json:"reason,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromProduct converte um produto do domínio para a resposta da API
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		BelowMinimum: p.IsBelowMinimum(),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromProducts converte uma lista de produtos do domínio
func FromProducts(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromMovement converte uma movimentação do domínio para a resposta da API
func FromMovement(m *product.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}

// FromMovements converte uma lista de movimentações do domínio
func FromMovements(movements []*product.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromMovement(m))
	}
	return out
}
