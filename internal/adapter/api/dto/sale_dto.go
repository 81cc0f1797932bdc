package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/sale"
)

// SaleRequest representa a requisição de criação de venda a prazo
type SaleRequest struct {
	ClientID          string          `json:"client_id" binding:"required"`
	TotalValue        decimal.Decimal `json:"total_value" binding:"required"`
	TotalInstallments int             `json:"total_installments" binding:"required"`
	PaymentFrequency  string          `json:"payment_frequency" binding:"required"`
	FirstDueDate      string          `json:"first_due_date" binding:"required"` // formato 2006-01-02
	SaleDate          string          `json:"sale_date"`                         // formato 2006-01-02; padrão hoje
	Notes             string          `json:"notes"`
}

// PaymentRequest representa a requisição de pagamento de parcela
type PaymentRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount" binding:"required"`
	PaidDate   string          `json:"paid_date"` // formato 2006-01-02; padrão hoje
}

// InstallmentResponse representa a resposta de parcela
type InstallmentResponse struct {
	ID         string           `json:"id"`
	SaleID     string           `json:"sale_id"`
	Number     int              `json:"number"`
	Amount     decimal.Decimal  `json:"amount"`
	DueDate    string           `json:"due_date"`
	Status     string           `json:"status"`
	PaidDate   *string          `json:"paid_date,omitempty"`
	PaidAmount *decimal.Decimal `json:"paid_amount,omitempty"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID                string                `json:"id"`
	ClientID          string                `json:"client_id"`
	TotalValue        decimal.Decimal       `json:"total_value"`
	TotalInstallments int                   `json:"total_installments"`
	PaymentFrequency  string                `json:"payment_frequency"`
	FirstDueDate      string                `json:"first_due_date"`
	TotalPaid         decimal.Decimal       `json:"total_paid"`
	Balance           decimal.Decimal       `json:"balance"`
	SaleDate          string                `json:"sale_date"`
	Notes             string                `json:"notes,omitempty"`
	Installments      []InstallmentResponse `json:"installments,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

// OverdueInstallmentResponse representa uma parcela vencida no relatório
// de cobrança
type OverdueInstallmentResponse struct {
	Installment InstallmentResponse `json:"installment"`
	ClientID    string              `json:"client_id"`
	ClientName  string              `json:"client_name"`
}

const dateLayout = "2006-01-02"

// ParseDate converte uma data no formato 2006-01-02; vazia vira o padrão
func ParseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse(dateLayout, value)
}

// FromInstallment converte uma parcela do domínio para a resposta da API
func FromInstallment(i *sale.Installment) InstallmentResponse {
	resp := InstallmentResponse{
		ID:         i.ID,
		SaleID:     i.SaleID,
		Number:     i.Number,
		Amount:     i.Amount,
		DueDate:    i.DueDate.Format(dateLayout),
		Status:     string(i.Status),
		PaidAmount: i.PaidAmount,
	}
	if i.PaidDate != nil {
		d := i.PaidDate.Format(dateLayout)
		resp.PaidDate = &d
	}
	return resp
}

// FromSale converte uma venda do domínio para a resposta da API
func FromSale(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		ID:                s.ID,
		ClientID:          s.ClientID,
		TotalValue:        s.TotalValue,
		TotalInstallments: s.TotalInstallments,
		PaymentFrequency:  string(s.PaymentFrequency),
		FirstDueDate:      s.FirstDueDate.Format(dateLayout),
		TotalPaid:         s.TotalPaid,
		Balance:           s.Balance(),
		SaleDate:          s.SaleDate.Format(dateLayout),
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
	}
	for idx := range s.Installments {
		resp.Installments = append(resp.Installments, FromInstallment(&s.Installments[idx]))
	}
	return resp
}

// FromSales converte uma lista de vendas do domínio
func FromSales(sales []*sale.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

// FromOverdueInstallments converte o relatório de parcelas vencidas
func FromOverdueInstallments(overdue []*sale.OverdueInstallment) []OverdueInstallmentResponse {
	out := make([]OverdueInstallmentResponse, 0, len(overdue))
	for _, o := range overdue {
		out = append(out, OverdueInstallmentResponse{
			Installment: FromInstallment(&o.Installment),
			ClientID:    o.ClientID,
			ClientName:  o.ClientName,
		})
	}
	return out
}
