package sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/money"
)

// generateInstallments gera o cronograma de parcelas de uma venda. O valor
// de cada parcela é o total dividido pela quantidade, arredondado para
// baixo em centavos; a última parcela absorve o resíduo, sempre não
// negativo, para que a soma feche exatamente com o total da venda.
//
// Vencimentos: mensal soma i-1 meses à primeira data (dia 31 é ajustado
// para o último dia válido do mês de destino); quinzenal soma (i-1)*15 dias.
func generateInstallments(s *Sale, now time.Time) []Installment {
	per, last := money.Split(s.TotalValue, s.TotalInstallments)

	installments := make([]Installment, 0, s.TotalInstallments)
	for i := 1; i <= s.TotalInstallments; i++ {
		amount := per
		if i == s.TotalInstallments {
			amount = last
		}

		var dueDate time.Time
		switch s.PaymentFrequency {
		case FrequencyBiweekly:
			dueDate = dateutil.AddDays(s.FirstDueDate, (i-1)*15)
		default:
			dueDate = dateutil.AddMonths(s.FirstDueDate, i-1)
		}

		installments = append(installments, Installment{
			ID:        uuid.New().String(),
			SaleID:    s.ID,
			Number:    i,
			Amount:    amount,
			DueDate:   dueDate,
			Status:    StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return installments
}
