package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *Product {
	t.Helper()
	p, err := NewProduct("SKU-001", "Arroz 5kg", stock, 2,
		decimal.RequireFromString("20.00"), decimal.RequireFromString("28.90"))
	require.NoError(t, err)
	return p
}

func TestApplyMovementChain(t *testing.T) {
	p := newTestProduct(t, 5)

	m1, err := ApplyMovement(p, MovementIn, 10, "reposição", "")
	require.NoError(t, err)
	assert.Equal(t, 10, m1.Quantity)
	assert.Equal(t, 5, m1.PreviousStock)
	assert.Equal(t, 15, m1.NewStock)
	assert.Equal(t, 15, p.Stock)

	m2, err := ApplyMovement(p, MovementSale, 3, "", "venda-123")
	require.NoError(t, err)
	assert.Equal(t, -3, m2.Quantity)
	assert.Equal(t, 15, m2.PreviousStock)
	assert.Equal(t, 12, m2.NewStock)
	assert.Equal(t, 12, p.Stock)

	m3, err := AdjustTo(p, 10, "inventário")
	require.NoError(t, err)
	assert.Equal(t, MovementAdjustment, m3.Type)
	assert.Equal(t, -2, m3.Quantity)
	assert.Equal(t, 12, m3.PreviousStock)
	assert.Equal(t, 10, m3.NewStock)
	assert.Equal(t, 10, p.Stock)

	// a cadeia encadeia: previous de cada lançamento é o new do anterior
	assert.Equal(t, m1.NewStock, m2.PreviousStock)
	assert.Equal(t, m2.NewStock, m3.PreviousStock)
}

func TestApplyMovementSignsByType(t *testing.T) {
	tests := []struct {
		movType MovementType
		qty     int
		want    int // estoque final partindo de 10
	}{
		{MovementIn, 4, 14},
		{MovementReturn, 2, 12},
		{MovementOut, 3, 7},
		{MovementSale, 10, 0},
		{MovementAdjustment, -6, 4},
		{MovementAdjustment, 5, 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.movType), func(t *testing.T) {
			p := newTestProduct(t, 10)
			m, err := ApplyMovement(p, tt.movType, tt.qty, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Stock)
			assert.Equal(t, tt.want, m.NewStock)
			assert.Equal(t, 10, m.PreviousStock)
		})
	}
}

func TestApplyMovementInsufficientStock(t *testing.T) {
	p := newTestProduct(t, 5)

	_, err := ApplyMovement(p, MovementOut, 6, "", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.Stock, "estoque não pode mudar em movimentação rejeitada")

	_, err = ApplyMovement(p, MovementSale, 100, "", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.Stock)

	_, err = ApplyMovement(p, MovementAdjustment, -6, "", "")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.Stock)
}

func TestApplyMovementValidation(t *testing.T) {
	p := newTestProduct(t, 5)

	_, err := ApplyMovement(p, MovementType("transferencia"), 1, "", "")
	assert.ErrorIs(t, err, ErrInvalidMovementType)

	_, err = ApplyMovement(p, MovementIn, 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ApplyMovement(p, MovementOut, -3, "", "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ApplyMovement(p, MovementAdjustment, 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAdjustTo(t *testing.T) {
	p := newTestProduct(t, 8)

	// ajustar para zero é permitido
	m, err := AdjustTo(p, 0, "perda total")
	require.NoError(t, err)
	assert.Equal(t, -8, m.Quantity)
	assert.Equal(t, 0, p.Stock)

	_, err = AdjustTo(p, -1, "")
	assert.ErrorIs(t, err, ErrNegativeTarget)

	// ajuste sem diferença não gera lançamento e tem erro próprio,
	// distinto de uma requisição malformada
	_, err = AdjustTo(p, 0, "")
	assert.ErrorIs(t, err, ErrNoStockChange)
	assert.Equal(t, 0, p.Stock)
}

func TestStockInvariantOverSequence(t *testing.T) {
	p := newTestProduct(t, 3)
	initial := p.Stock

	moves := []struct {
		movType MovementType
		qty     int
	}{
		{MovementIn, 20},
		{MovementSale, 7},
		{MovementReturn, 2},
		{MovementOut, 4},
		{MovementAdjustment, -3},
	}

	sum := 0
	for _, mv := range moves {
		m, err := ApplyMovement(p, mv.movType, mv.qty, "", "")
		require.NoError(t, err)
		sum += m.Quantity
	}

	assert.Equal(t, initial+sum, p.Stock)
}

func TestStockValue(t *testing.T) {
	p := newTestProduct(t, 12)
	assert.Equal(t, "240.00", p.StockValue().StringFixed(2))
}
