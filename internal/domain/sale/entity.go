package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/pkg/dateutil"
	"github.com/erp-crediario/backend/pkg/money"
)

var (
	ErrEmptyClient          = errors.New("cliente não pode ser vazio")
	ErrInvalidTotalValue    = errors.New("valor total deve ser maior que zero")
	ErrInvalidInstallments  = errors.New("quantidade de parcelas deve ser no mínimo 1")
	ErrInvalidFrequency     = errors.New("frequência de pagamento inválida")
	ErrInvalidPaymentAmount = errors.New("valor do pagamento deve ser maior que zero")
	ErrPaymentExceedsAmount = errors.New("pagamento excede o valor restante da parcela")
	ErrAlreadyPaid          = errors.New("parcela já está paga")
	ErrInstallmentMismatch  = errors.New("parcela não pertence a esta venda")
)

// PaymentFrequency define a frequência das parcelas de uma venda
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "mensal"    // Parcelas mensais
	FrequencyBiweekly PaymentFrequency = "quinzenal" // Parcelas a cada 15 dias
)

// IsValid verifica se a frequência é conhecida
func (f PaymentFrequency) IsValid() bool {
	return f == FrequencyMonthly || f == FrequencyBiweekly
}

// Status representa o estado de uma parcela
type Status string

const (
	StatusPending Status = "pendente" // Aguardando pagamento, dentro do prazo
	StatusPartial Status = "parcial"  // Pagamento parcial recebido
	StatusPaid    Status = "pago"     // Quitada (estado terminal)
	StatusOverdue Status = "atrasado" // Vencida sem pagamento
)

// Installment representa uma parcela de uma venda, com vencimento e
// estado próprios. Parcelas são criadas em lote na criação da venda e
// mutadas apenas por registro de pagamento ou pela passagem do tempo.
type Installment struct {
	ID         string           `json:"id"`
	SaleID     string           `json:"sale_id"`
	Number     int              `json:"number"` // Número da parcela (1..N)
	Amount     decimal.Decimal  `json:"amount"`
	DueDate    time.Time        `json:"due_date"`
	Status     Status           `json:"status"`
	PaidDate   *time.Time       `json:"paid_date,omitempty"`
	PaidAmount *decimal.Decimal `json:"paid_amount,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Paid retorna o valor já pago da parcela (zero quando não há pagamento)
func (i *Installment) Paid() decimal.Decimal {
	if i.PaidAmount == nil {
		return decimal.Zero
	}
	return *i.PaidAmount
}

// Remaining retorna o valor restante da parcela
func (i *Installment) Remaining() decimal.Decimal {
	return i.Amount.Sub(i.Paid())
}

// Sale representa uma venda a prazo (crediário). A venda é dona exclusiva
// de suas parcelas: elas nascem juntas na criação e só são removidas em
// cascata com a venda.
type Sale struct {
	ID                string           `json:"id"`
	ClientID          string           `json:"client_id"`
	TotalValue        decimal.Decimal  `json:"total_value"`
	TotalInstallments int              `json:"total_installments"`
	PaymentFrequency  PaymentFrequency `json:"payment_frequency"`
	FirstDueDate      time.Time        `json:"first_due_date"`
	TotalPaid         decimal.Decimal  `json:"total_paid"`
	SaleDate          time.Time        `json:"sale_date"`
	Notes             string           `json:"notes"`
	Installments      []Installment    `json:"installments,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NewSale cria uma nova venda com o cronograma completo de parcelas
func NewSale(
	clientID string,
	totalValue decimal.Decimal,
	totalInstallments int,
	frequency PaymentFrequency,
	firstDueDate time.Time,
	saleDate time.Time,
	notes string,
) (*Sale, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}
	if !totalValue.IsPositive() {
		return nil, ErrInvalidTotalValue
	}
	if totalInstallments < 1 {
		return nil, ErrInvalidInstallments
	}
	if !frequency.IsValid() {
		return nil, ErrInvalidFrequency
	}

	now := time.Now()
	s := &Sale{
		ID:                uuid.New().String(),
		ClientID:          clientID,
		TotalValue:        money.Round(totalValue),
		TotalInstallments: totalInstallments,
		PaymentFrequency:  frequency,
		FirstDueDate:      dateutil.DateOnly(firstDueDate),
		TotalPaid:         decimal.Zero,
		SaleDate:          dateutil.DateOnly(saleDate),
		Notes:             notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.Installments = generateInstallments(s, now)

	return s, nil
}

// Installment retorna a parcela de número informado, ou nil
func (s *Sale) Installment(number int) *Installment {
	for idx := range s.Installments {
		if s.Installments[idx].Number == number {
			return &s.Installments[idx]
		}
	}
	return nil
}

// IsSettled verifica se a venda está quitada
func (s *Sale) IsSettled() bool {
	return money.GreaterOrEqual(s.TotalPaid, s.TotalValue)
}

// Balance retorna o saldo devedor da venda
func (s *Sale) Balance() decimal.Decimal {
	return s.TotalValue.Sub(s.TotalPaid)
}

// RecordPayment registra um pagamento em uma parcela da venda. O valor é
// acumulado no pago da parcela e no total pago da venda, e o status é
// rederivado. Parcela quitada não aceita novo pagamento.
func (s *Sale) RecordPayment(inst *Installment, paidAmount decimal.Decimal, paidDate time.Time, now time.Time) error {
	if inst == nil || inst.SaleID != s.ID {
		return ErrInstallmentMismatch
	}
	if inst.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	if !paidAmount.IsPositive() {
		return ErrInvalidPaymentAmount
	}

	paidAmount = money.Round(paidAmount)
	cumulative := inst.Paid().Add(paidAmount)
	if cumulative.Sub(inst.Amount).GreaterThan(money.Tolerance) {
		return ErrPaymentExceedsAmount
	}

	day := dateutil.DateOnly(paidDate)
	inst.PaidAmount = &cumulative
	inst.PaidDate = &day
	inst.Status = DeriveStatus(inst, now)
	inst.UpdatedAt = now

	s.TotalPaid = s.TotalPaid.Add(paidAmount)
	s.UpdatedAt = now

	return nil
}
