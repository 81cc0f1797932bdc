package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/erp-crediario/backend/internal/domain/client"
)

// ClientRequest representa a requisição de cliente
type ClientRequest struct {
	Name        string          `json:"name" binding:"required"`
	Document    string          `json:"document"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Street      string          `json:"street"`
	Number      string          `json:"number"`
	District    string          `json:"district"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	ZipCode     string          `json:"zip_code"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
}

// ClientStatusRequest representa a requisição de alteração de status
type ClientStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Document    string          `json:"document"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Street      string          `json:"street"`
	Number      string          `json:"number"`
	District    string          `json:"district"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	ZipCode     string          `json:"zip_code"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ClientListResponse representa a resposta de listagem de clientes
type ClientListResponse struct {
	Clients  []ClientResponse `json:"clients"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
}

// FromClient converte um cliente do domínio para a resposta da API
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Document:    c.Document,
		Phone:       c.Phone,
		Email:       c.Email,
		Street:      c.Street,
		Number:      c.Number,
		District:    c.District,
		City:        c.City,
		State:       c.State,
		ZipCode:     c.ZipCode,
		CreditLimit: c.CreditLimit,
		Notes:       c.Notes,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromClients converte uma lista de clientes do domínio
func FromClients(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
