package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erp-crediario/backend/internal/domain/client"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicateKey = errors.New("cliente com mesmo documento já existe")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

const clientColumns = `id, name, document, phone, email, street, number,
	district, city, state, zip_code, credit_limit, notes, active,
	created_at, updated_at`

func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Street,
		&c.Number, &c.District, &c.City, &c.State, &c.ZipCode,
		&c.CreditLimit, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (
			id, name, document, phone, email, street, number, district,
			city, state, zip_code, credit_limit, notes, active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`,
		c.ID, c.Name, c.Document, c.Phone, c.Email, c.Street, c.Number,
		c.District, c.City, c.State, c.ZipCode, c.CreditLimit, c.Notes,
		c.Active, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1`, clientColumns), id)
	return scanClient(row)
}

// FindByDocument implementa client.Repository.FindByDocument
func (r *ClientRepository) FindByDocument(ctx context.Context, document string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM clients WHERE document = $1`, clientColumns), document)
	return scanClient(row)
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM clients ORDER BY name LIMIT $1 OFFSET $2`, clientColumns),
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

// FindByName implementa client.Repository.FindByName
func (r *ClientRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM clients WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`, clientColumns),
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes por nome: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET
			name = $2, document = $3, phone = $4, email = $5, street = $6,
			number = $7, district = $8, city = $9, state = $10,
			zip_code = $11, credit_limit = $12, notes = $13, active = $14,
			updated_at = $15
		WHERE id = $1`,
		c.ID, c.Name, c.Document, c.Phone, c.Email, c.Street, c.Number,
		c.District, c.City, c.State, c.ZipCode, c.CreditLimit, c.Notes,
		c.Active, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// UpdateStatus implementa client.Repository.UpdateStatus
func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET active = $2, updated_at = now() WHERE id = $1`,
		id, active)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

func collectClients(rows pgx.Rows) ([]*client.Client, error) {
	clients := make([]*client.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}
	return clients, nil
}
