package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		total string
		n     int
		per   string
		last  string
	}{
		{"divisão exata", "3000.00", 6, "500.00", "500.00"},
		{"resíduo na última parcela", "100.00", 3, "33.33", "33.34"},
		{"dízima arredondada para baixo", "200.00", 3, "66.66", "66.68"},
		{"parcela única", "59.90", 1, "59.90", "59.90"},
		{"um centavo em duas", "0.01", 2, "0.00", "0.01"},
		{"total pequeno em muitas parcelas", "1.00", 66, "0.01", "0.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			per, last := Split(total, tt.n)
			assert.Equal(t, tt.per, per.StringFixed(2))
			assert.Equal(t, tt.last, last.StringFixed(2))

			// a soma das parcelas deve ser exatamente o total e a última
			// parcela nunca pode ser negativa
			sum := per.Mul(decimal.NewFromInt(int64(tt.n - 1))).Add(last)
			assert.True(t, sum.Equal(total), "soma %s != total %s", sum, total)
			assert.False(t, last.IsNegative(), "última parcela negativa: %s", last)
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	a := decimal.RequireFromString("100.00")
	assert.True(t, WithinTolerance(a, decimal.RequireFromString("100.01")))
	assert.True(t, WithinTolerance(a, decimal.RequireFromString("99.99")))
	assert.False(t, WithinTolerance(a, decimal.RequireFromString("99.98")))
}

func TestGreaterOrEqual(t *testing.T) {
	a := decimal.RequireFromString("499.99")
	b := decimal.RequireFromString("500.00")
	assert.True(t, GreaterOrEqual(a, b))
	assert.True(t, GreaterOrEqual(b, a))
	assert.False(t, GreaterOrEqual(decimal.RequireFromString("499.98"), b))
}
