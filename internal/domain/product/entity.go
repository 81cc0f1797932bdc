package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrEmptySKU        = errors.New("sku não pode ser vazio")
	ErrNegativeStock   = errors.New("estoque inicial não pode ser negativo")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
	ErrInvalidMinStock = errors.New("estoque mínimo não pode ser negativo")
	ErrInvalidMaxStock = errors.New("estoque máximo deve ser maior ou igual ao mínimo")
)

// Product representa um produto com controle de estoque. O estoque só é
// alterado através de movimentações (StockMovement), nunca diretamente.
type Product struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`     // Estoque atual (sempre >= 0)
	MinStock    int             `json:"min_stock"` // Estoque mínimo para alerta
	MaxStock    *int            `json:"max_stock,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(sku, name string, initialStock, minStock int, costPrice, salePrice decimal.Decimal) (*Product, error) {
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if initialStock < 0 {
		return nil, ErrNegativeStock
	}
	if minStock < 0 {
		return nil, ErrInvalidMinStock
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      name,
		Stock:     initialStock,
		MinStock:  minStock,
		CostPrice: costPrice,
		SalePrice: salePrice,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsBelowMinimum verifica se o estoque está abaixo do mínimo configurado
func (p *Product) IsBelowMinimum() bool {
	return p.Stock < p.MinStock
}

// StockValue retorna o valor do estoque ao preço de custo
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Update atualiza os dados cadastrais do produto. O estoque não é tocado
// aqui: alterações de estoque passam pelo razão de movimentações.
func (p *Product) Update(name, description string, minStock int, maxStock *int, costPrice, salePrice decimal.Decimal, active bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if minStock < 0 {
		return ErrInvalidMinStock
	}
	if maxStock != nil && *maxStock < minStock {
		return ErrInvalidMaxStock
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.Description = description
	p.MinStock = minStock
	p.MaxStock = maxStock
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.Active = active
	p.UpdatedAt = time.Now()

	return nil
}
