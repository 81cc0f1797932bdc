package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/product"
	"github.com/erp-crediario/backend/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo sku já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, sku, name, description, stock, min_stock,
	max_stock, cost_price, sale_price, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Stock, &p.MinStock,
		&p.MaxStock, &p.CostPrice, &p.SalePrice, &p.Active,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, sku, name, description, stock, min_stock, max_stock,
			cost_price, sale_price, active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`,
		p.ID, p.SKU, p.Name, p.Description, p.Stock, p.MinStock,
		p.MaxStock, p.CostPrice, p.SalePrice, p.Active, p.CreatedAt,
		p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns), id)
	return scanProduct(row)
}

// FindBySKU implementa product.Repository.FindBySKU
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM products WHERE sku = $1`, productColumns), sku)
	return scanProduct(row)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products ORDER BY name LIMIT $1 OFFSET $2`, productColumns),
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindBelowMinimum implementa product.Repository.FindBelowMinimum
func (r *ProductRepository) FindBelowMinimum(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products WHERE active AND stock < min_stock ORDER BY name`, productColumns))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos abaixo do mínimo: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Update implementa product.Repository.Update. O estoque não é atualizado
// aqui: somente RegisterMovement altera o estoque.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, description = $3, min_stock = $4, max_stock = $5,
			cost_price = $6, sale_price = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.MinStock, p.MaxStock,
		p.CostPrice, p.SalePrice, p.Active, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// RegisterMovement implementa product.Repository.RegisterMovement. A linha
// do produto é travada com FOR UPDATE para serializar movimentações
// concorrentes sobre o mesmo produto: a cadeia previous/new de cada
// lançamento depende do estoque corrente no momento da gravação. Lançamento
// e novo estoque são gravados na mesma transação.
func (r *ProductRepository) RegisterMovement(ctx context.Context, productID string, movType product.MovementType, quantity int, target *int, reason, reference string) (*product.StockMovement, error) {
	var movement *product.StockMovement

	err := withRetry(ctx, func(ctx context.Context) error {
		return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
			row := tx.QueryRow(ctx,
				fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 FOR UPDATE`, productColumns),
				productID)
			p, err := scanProduct(row)
			if err != nil {
				return err
			}

			if target != nil {
				movement, err = product.AdjustTo(p, *target, reason)
			} else {
				movement, err = product.ApplyMovement(p, movType, quantity, reason, reference)
			}
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO stock_movements (
					id, product_id, type, quantity, previous_stock,
					new_stock, reason, reference, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				movement.ID, movement.ProductID, movement.Type,
				movement.Quantity, movement.PreviousStock,
				movement.NewStock, movement.Reason, movement.Reference,
				movement.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao gravar movimentação: %w", err)
			}

			_, err = tx.Exec(ctx,
				`UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`,
				p.ID, p.Stock, p.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao atualizar estoque do produto: %w", err)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// FindMovements implementa product.Repository.FindMovements
func (r *ProductRepository) FindMovements(ctx context.Context, productID string, limit, offset int) ([]*product.StockMovement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, type, quantity, previous_stock, new_stock,
			reason, reference, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentações: %w", err)
	}
	defer rows.Close()

	movements := make([]*product.StockMovement, 0)
	for rows.Next() {
		var m product.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PreviousStock,
			&m.NewStock, &m.Reason, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler movimentação: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer movimentações: %w", err)
	}

	return movements, nil
}

// TotalStockValue implementa product.Repository.TotalStockValue
func (r *ProductRepository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock * cost_price), 0) FROM products WHERE active`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular valor do estoque: %w", err)
	}
	return total, nil
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}
	return products, nil
}
