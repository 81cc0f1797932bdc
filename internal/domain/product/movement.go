package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMovementType = errors.New("tipo de movimentação inválido")
	ErrInvalidQuantity     = errors.New("quantidade deve ser maior que zero")
	ErrInsufficientStock   = errors.New("estoque insuficiente para a movimentação")
	ErrNegativeTarget      = errors.New("estoque alvo não pode ser negativo")
	ErrNoStockChange       = errors.New("estoque já está no valor informado")
)

// MovementType define o tipo de uma movimentação de estoque
type MovementType string

const (
	MovementIn         MovementType = "entrada"   // Recebimento de fornecedor
	MovementOut        MovementType = "saida"     // Saída manual
	MovementSale       MovementType = "venda"     // Baixa por venda
	MovementAdjustment MovementType = "ajuste"    // Ajuste de inventário
	MovementReturn     MovementType = "devolucao" // Devolução de cliente
)

// IsValid verifica se o tipo de movimentação é conhecido
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementSale, MovementAdjustment, MovementReturn:
		return true
	}
	return false
}

// Direction retorna o sinal aplicado à quantidade: entrada e devolução
// aumentam o estoque, saída e venda diminuem. Ajuste carrega o delta já
// com sinal.
func (t MovementType) Direction() int {
	switch t {
	case MovementOut, MovementSale:
		return -1
	default:
		return 1
	}
}

// StockMovement é um lançamento imutável do razão de estoque de um
// produto. A cadeia de lançamentos, ordenada por criação, deve encadear:
// o PreviousStock de cada lançamento é igual ao NewStock do anterior.
type StockMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"` // Delta aplicado, já com sinal
	PreviousStock int          `json:"previous_stock"`
	NewStock      int          `json:"new_stock"`
	Reason        string       `json:"reason,omitempty"`
	Reference     string       `json:"reference,omitempty"` // ID da venda ou documento de origem
	CreatedAt     time.Time    `json:"created_at"`
}

// ApplyMovement aplica uma movimentação ao produto e retorna o lançamento
// correspondente. A quantidade é sempre informada positiva; o sinal vem do
// tipo. Para ajuste por delta a quantidade pode ser negativa. Falha sem
// alterar o produto quando o estoque resultante seria negativo.
func ApplyMovement(p *Product, movType MovementType, quantity int, reason, reference string) (*StockMovement, error) {
	if !movType.IsValid() {
		return nil, ErrInvalidMovementType
	}
	if movType != MovementAdjustment && quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if movType == MovementAdjustment && quantity == 0 {
		return nil, ErrInvalidQuantity
	}

	delta := quantity
	if movType != MovementAdjustment {
		delta = quantity * movType.Direction()
	}

	previous := p.Stock
	newStock := previous + delta
	if newStock < 0 {
		return nil, ErrInsufficientStock
	}

	now := time.Now()
	movement := &StockMovement{
		ID:            uuid.New().String(),
		ProductID:     p.ID,
		Type:          movType,
		Quantity:      delta,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        reason,
		Reference:     reference,
		CreatedAt:     now,
	}

	p.Stock = newStock
	p.UpdatedAt = now

	return movement, nil
}

// AdjustTo ajusta o estoque do produto para um valor absoluto, registrando
// a diferença como movimentação de ajuste. Permite zerar o estoque. Quando
// o alvo é igual ao estoque atual retorna ErrNoStockChange sem registrar
// lançamento, para que o chamador distingua o caso de uma requisição
// malformada.
func AdjustTo(p *Product, target int, reason string) (*StockMovement, error) {
	if target < 0 {
		return nil, ErrNegativeTarget
	}

	delta := target - p.Stock
	if delta == 0 {
		return nil, ErrNoStockChange
	}

	return ApplyMovement(p, MovementAdjustment, delta, reason, "")
}
