package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OverdueInstallment é uma parcela vencida acompanhada dos dados do
// cliente, para o relatório de cobrança
type OverdueInstallment struct {
	Installment Installment `json:"installment"`
	ClientID    string      `json:"client_id"`
	ClientName  string      `json:"client_name"`
}

// Repository define a interface para operações de repositório de vendas.
// Escritas que tocam mais de um registro (venda + parcelas, parcela +
// total pago da venda) são atômicas: ou ambas persistem, ou nenhuma.
type Repository interface {
	// Create cria a venda com todas as suas parcelas em uma única transação
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID, com suas parcelas
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByClient lista as vendas de um cliente
	FindByClient(ctx context.Context, clientID string, limit, offset int) ([]*Sale, error)

	// FindByPeriod lista as vendas com data dentro do período informado
	// (usada pelo cálculo de velocidade de vendas)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// List lista as vendas com paginação
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// FindInstallmentByID busca uma parcela pelo ID
	FindInstallmentByID(ctx context.Context, id string) (*Installment, error)

	// FindInstallmentsBySale lista as parcelas de uma venda ordenadas por número
	FindInstallmentsBySale(ctx context.Context, saleID string) ([]*Installment, error)

	// FindOverdueInstallments lista as parcelas vencidas com os dados do cliente
	FindOverdueInstallments(ctx context.Context, limit, offset int) ([]*OverdueInstallment, error)

	// RecordPayment registra um pagamento: trava a parcela e a venda,
	// aplica as regras de domínio e grava parcela e total pago da venda
	// na mesma transação
	RecordPayment(ctx context.Context, installmentID string, paidAmount decimal.Decimal, paidDate time.Time) (*Installment, error)

	// MarkOverdue transiciona para atrasado as parcelas pendentes com
	// vencimento anterior à data informada. Idempotente; retorna o número
	// de parcelas alteradas
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)

	// Delete remove uma venda e, em cascata, suas parcelas
	Delete(ctx context.Context, id string) error
}
