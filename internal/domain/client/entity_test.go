package client

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("Maria Souza", "12345678900", "11999990000", decimal.NewFromInt(500))
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Maria Souza", c.Name)
	assert.True(t, c.Active)
	assert.True(t, c.CreditLimit.Equal(decimal.NewFromInt(500)))
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "", "", decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewClient("João", "", "", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeCreditLimit)
}

func TestClientUpdateRejectsNegativeLimit(t *testing.T) {
	c, err := NewClient("Maria Souza", "", "", decimal.Zero)
	require.NoError(t, err)

	err = c.Update("Maria Souza", "", "", "", "", "", "", "", "", "",
		decimal.NewFromInt(-10), "")
	assert.ErrorIs(t, err, ErrNegativeCreditLimit)
	assert.True(t, c.CreditLimit.IsZero())
}

func TestClientActivateDeactivate(t *testing.T) {
	c, err := NewClient("Maria Souza", "", "", decimal.Zero)
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
}
