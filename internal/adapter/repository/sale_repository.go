package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/sale"
	"github.com/erp-crediario/backend/internal/infrastructure/database"
	"github.com/erp-crediario/backend/pkg/dateutil"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrInstallmentNotFound = errors.New("parcela não encontrada")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

const saleColumns = `id, client_id, total_value, total_installments,
	payment_frequency, first_due_date, total_paid, sale_date, notes,
	created_at, updated_at`

const installmentColumns = `id, sale_id, number, amount, due_date, status,
	paid_date, paid_amount, created_at, updated_at`

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.ClientID, &s.TotalValue, &s.TotalInstallments,
		&s.PaymentFrequency, &s.FirstDueDate, &s.TotalPaid, &s.SaleDate,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return &s, nil
}

func scanInstallment(row pgx.Row) (*sale.Installment, error) {
	var i sale.Installment
	err := row.Scan(
		&i.ID, &i.SaleID, &i.Number, &i.Amount, &i.DueDate, &i.Status,
		&i.PaidDate, &i.PaidAmount, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar parcela: %w", err)
	}
	return &i, nil
}

// Create implementa sale.Repository.Create. Venda e parcelas são gravadas
// na mesma transação: ou o agregado inteiro persiste, ou nada.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, client_id, total_value, total_installments,
				payment_frequency, first_due_date, total_paid, sale_date,
				notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			s.ID, s.ClientID, s.TotalValue, s.TotalInstallments,
			s.PaymentFrequency, s.FirstDueDate, s.TotalPaid, s.SaleDate,
			s.Notes, s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar venda: %w", err)
		}

		for idx := range s.Installments {
			inst := &s.Installments[idx]
			_, err := tx.Exec(ctx,
				`INSERT INTO installments (
					id, sale_id, number, amount, due_date, status,
					paid_date, paid_amount, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				inst.ID, inst.SaleID, inst.Number, inst.Amount,
				inst.DueDate, inst.Status, inst.PaidDate, inst.PaidAmount,
				inst.CreatedAt, inst.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao criar parcela %d: %w", inst.Number, err)
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID, carregando as parcelas
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM sales WHERE id = $1`, saleColumns), id)
	s, err := scanSale(row)
	if err != nil {
		return nil, err
	}

	installments, err := r.FindInstallmentsBySale(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Installments = make([]sale.Installment, 0, len(installments))
	for _, inst := range installments {
		s.Installments = append(s.Installments, *inst)
	}

	return s, nil
}

// FindByClient implementa sale.Repository.FindByClient
func (r *SaleRepository) FindByClient(ctx context.Context, clientID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM sales WHERE client_id = $1 ORDER BY sale_date DESC LIMIT $2 OFFSET $3`, saleColumns),
		clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do cliente: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM sales WHERE sale_date BETWEEN $1 AND $2 ORDER BY sale_date`, saleColumns),
		dateutil.DateOnly(from), dateutil.DateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`, saleColumns),
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// FindInstallmentByID implementa sale.Repository.FindInstallmentByID
func (r *SaleRepository) FindInstallmentByID(ctx context.Context, id string) (*sale.Installment, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM installments WHERE id = $1`, installmentColumns), id)
	return scanInstallment(row)
}

// FindInstallmentsBySale implementa sale.Repository.FindInstallmentsBySale
func (r *SaleRepository) FindInstallmentsBySale(ctx context.Context, saleID string) ([]*sale.Installment, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM installments WHERE sale_id = $1 ORDER BY number`, installmentColumns),
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar parcelas: %w", err)
	}
	defer rows.Close()

	installments := make([]*sale.Installment, 0)
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer parcelas: %w", err)
	}

	return installments, nil
}

// FindOverdueInstallments implementa sale.Repository.FindOverdueInstallments
func (r *SaleRepository) FindOverdueInstallments(ctx context.Context, limit, offset int) ([]*sale.OverdueInstallment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.sale_id, i.number, i.amount, i.due_date, i.status,
			i.paid_date, i.paid_amount, i.created_at, i.updated_at,
			c.id, c.name
		FROM installments i
		JOIN sales s ON s.id = i.sale_id
		JOIN clients c ON c.id = s.client_id
		WHERE i.status = $1
		ORDER BY i.due_date, i.sale_id, i.number
		LIMIT $2 OFFSET $3`,
		sale.StatusOverdue, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar parcelas vencidas: %w", err)
	}
	defer rows.Close()

	overdue := make([]*sale.OverdueInstallment, 0)
	for rows.Next() {
		var o sale.OverdueInstallment
		if err := rows.Scan(
			&o.Installment.ID, &o.Installment.SaleID, &o.Installment.Number,
			&o.Installment.Amount, &o.Installment.DueDate, &o.Installment.Status,
			&o.Installment.PaidDate, &o.Installment.PaidAmount,
			&o.Installment.CreatedAt, &o.Installment.UpdatedAt,
			&o.ClientID, &o.ClientName); err != nil {
			return nil, fmt.Errorf("erro ao ler parcela vencida: %w", err)
		}
		overdue = append(overdue, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer parcelas vencidas: %w", err)
	}

	return overdue, nil
}

// RecordPayment implementa sale.Repository.RecordPayment. Parcela e venda
// são travadas com FOR UPDATE para serializar pagamentos concorrentes
// sobre a mesma parcela e impedir crédito duplicado no total pago da
// venda. As duas escritas acontecem na mesma transação.
func (r *SaleRepository) RecordPayment(ctx context.Context, installmentID string, paidAmount decimal.Decimal, paidDate time.Time) (*sale.Installment, error) {
	var result *sale.Installment

	err := withRetry(ctx, func(ctx context.Context) error {
		return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
			row := tx.QueryRow(ctx,
				fmt.Sprintf(`SELECT %s FROM installments WHERE id = $1 FOR UPDATE`, installmentColumns),
				installmentID)
			inst, err := scanInstallment(row)
			if err != nil {
				return err
			}

			row = tx.QueryRow(ctx,
				fmt.Sprintf(`SELECT %s FROM sales WHERE id = $1 FOR UPDATE`, saleColumns),
				inst.SaleID)
			s, err := scanSale(row)
			if err != nil {
				return err
			}

			if err := s.RecordPayment(inst, paidAmount, paidDate, time.Now()); err != nil {
				return err
			}

			_, err = tx.Exec(ctx,
				`UPDATE installments SET
					status = $2, paid_date = $3, paid_amount = $4, updated_at = $5
				WHERE id = $1`,
				inst.ID, inst.Status, inst.PaidDate, inst.PaidAmount, inst.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao atualizar parcela: %w", err)
			}

			_, err = tx.Exec(ctx,
				`UPDATE sales SET total_paid = $2, updated_at = $3 WHERE id = $1`,
				s.ID, s.TotalPaid, s.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao atualizar total pago da venda: %w", err)
			}

			result = inst
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MarkOverdue implementa sale.Repository.MarkOverdue
func (r *SaleRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE installments SET status = $1, updated_at = $2
		WHERE status = $3 AND due_date < $4`,
		sale.StatusOverdue, now, sale.StatusPending, dateutil.DateOnly(now))
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar parcelas vencidas: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete implementa sale.Repository.Delete. As parcelas são removidas em
// cascata pela chave estrangeira.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

func collectSales(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}
	return sales, nil
}
