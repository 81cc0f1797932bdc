package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName           = errors.New("nome não pode ser vazio")
	ErrNegativeCreditLimit = errors.New("limite de crédito não pode ser negativo")
)

// Client representa um cliente do crediário. Vendas referenciam o cliente
// pelo ID; o cliente não é dono das vendas.
type Client struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`         // Nome completo
	Document    string          `json:"document"`     // CPF
	Phone       string          `json:"phone"`        // Telefone
	Email       string          `json:"email"`        // Email
	Street      string          `json:"street"`       // Logradouro
	Number      string          `json:"number"`       // Número
	District    string          `json:"district"`     // Bairro
	City        string          `json:"city"`         // Cidade
	State       string          `json:"state"`        // Estado
	ZipCode     string          `json:"zip_code"`     // CEP
	CreditLimit decimal.Decimal `json:"credit_limit"` // Limite de crédito
	Notes       string          `json:"notes"`        // Observações
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewClient cria um novo cliente
func NewClient(name, document, phone string, creditLimit decimal.Decimal) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if creditLimit.IsNegative() {
		return nil, ErrNegativeCreditLimit
	}

	now := time.Now()
	return &Client{
		ID:          uuid.New().String(),
		Name:        name,
		Document:    document,
		Phone:       phone,
		CreditLimit: creditLimit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsActive verifica se o cliente está ativo
func (c *Client) IsActive() bool {
	return c.Active
}

// Activate ativa o cliente
func (c *Client) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
}

// Deactivate desativa o cliente
func (c *Client) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do cliente
func (c *Client) Update(
	name string,
	document string,
	phone string,
	email string,
	street string,
	number string,
	district string,
	city string,
	state string,
	zipCode string,
	creditLimit decimal.Decimal,
	notes string,
) error {
	if name == "" {
		return ErrEmptyName
	}
	if creditLimit.IsNegative() {
		return ErrNegativeCreditLimit
	}

	c.Name = name
	c.Document = document
	c.Phone = phone
	c.Email = email
	c.Street = street
	c.Number = number
	c.District = district
	c.City = city
	c.State = state
	c.ZipCode = zipCode
	c.CreditLimit = creditLimit
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
