package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByDocument busca um cliente pelo documento (CPF)
	FindByDocument(ctx context.Context, document string) (*Client, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// FindByName busca clientes pelo nome
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// UpdateStatus ativa ou desativa um cliente
	UpdateStatus(ctx context.Context, id string, active bool) error

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)
}
