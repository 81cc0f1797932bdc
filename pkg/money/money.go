package money

import (
	"github.com/shopspring/decimal"
)

// Tolerance é a tolerância de arredondamento aceita em comparações
// monetárias: um centavo.
var Tolerance = decimal.New(1, -2)

// Round arredonda um valor monetário para duas casas decimais (centavos)
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// WithinTolerance verifica se dois valores monetários são iguais dentro
// da tolerância de um centavo
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// GreaterOrEqual verifica se a >= b considerando a tolerância de um centavo
func GreaterOrEqual(a, b decimal.Decimal) bool {
	return a.GreaterThanOrEqual(b) || WithinTolerance(a, b)
}

// Split divide um valor total em n parcelas de duas casas decimais.
// Retorna o valor das parcelas regulares e o valor da última parcela,
// que absorve o resíduo de arredondamento para que a soma seja exata.
// As parcelas regulares são arredondadas para baixo, garantindo que o
// resíduo da última nunca seja negativo, mesmo para totais pequenos
// divididos em muitas parcelas.
func Split(total decimal.Decimal, n int) (per decimal.Decimal, last decimal.Decimal) {
	per = total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	last = total.Sub(per.Mul(decimal.NewFromInt(int64(n - 1))))
	return per, last
}
