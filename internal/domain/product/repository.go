package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a interface para operações de repositório de produtos
// e do razão de movimentações de estoque. Movimentação e atualização do
// estoque do produto são gravadas na mesma transação; movimentações sobre
// o mesmo produto são serializadas pelo repositório.
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindBySKU busca um produto pelo SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// FindBelowMinimum lista os produtos ativos com estoque abaixo do mínimo
	FindBelowMinimum(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados cadastrais de um produto (não toca o estoque)
	Update(ctx context.Context, p *Product) error

	// RegisterMovement trava o produto, aplica a movimentação sobre o
	// estoque corrente e grava o lançamento e o novo estoque na mesma
	// transação. Para ajuste absoluto, target aponta o estoque desejado;
	// caso contrário quantity é a quantidade movimentada.
	RegisterMovement(ctx context.Context, productID string, movType MovementType, quantity int, target *int, reason, reference string) (*StockMovement, error)

	// FindMovements lista o razão de movimentações de um produto em ordem
	// de criação
	FindMovements(ctx context.Context, productID string, limit, offset int) ([]*StockMovement, error)

	// TotalStockValue retorna a soma de estoque * preço de custo dos
	// produtos ativos
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
}
