package sale

import (
	"time"

	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/money"
)

// DeriveStatus deriva o status de uma parcela a partir do valor pago, do
// vencimento e do instante informado. A comparação de vencimento é feita
// apenas por data, ignorando a hora. O status persistido deve sempre poder
// ser recomputado por esta função; "agora" é sempre explícito.
//
// A comparação do valor pago usa a tolerância de um centavo: um pagamento
// de Amount - 0.01 já marca a parcela como paga, e o resíduo de até um
// centavo reportado por Remaining é dado como quitado.
func DeriveStatus(inst *Installment, now time.Time) Status {
	paid := inst.Paid()

	switch {
	case paid.IsPositive() && money.GreaterOrEqual(paid, inst.Amount):
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	case dateutil.DaysBetween(inst.DueDate, now) > 0:
		return StatusOverdue
	default:
		return StatusPending
	}
}

// IsOverdue verifica se uma parcela não terminal está vencida na data
// informada. Usada pela varredura que transiciona pendente -> atrasado
// pela simples passagem do tempo.
func (i *Installment) IsOverdue(now time.Time) bool {
	return i.Status != StatusPaid && dateutil.DaysBetween(i.DueDate, now) > 0
}
