package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentFull(t *testing.T) {
	s := newTestSale(t, "300.00", 3, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.January, 20)

	inst := s.Installment(1)
	require.NotNil(t, inst)

	err := s.RecordPayment(inst, decimal.RequireFromString("100.00"), date(2025, time.January, 14), now)
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, inst.Status)
	require.NotNil(t, inst.PaidAmount)
	assert.Equal(t, "100.00", inst.PaidAmount.StringFixed(2))
	require.NotNil(t, inst.PaidDate)
	assert.Equal(t, date(2025, time.January, 14), *inst.PaidDate)
	assert.Equal(t, "100.00", s.TotalPaid.StringFixed(2))
}

func TestRecordPaymentPartialThenSettle(t *testing.T) {
	s := newTestSale(t, "300.00", 3, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.January, 20)
	inst := s.Installment(2)

	err := s.RecordPayment(inst, decimal.RequireFromString("40.00"), date(2025, time.January, 18), now)
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, inst.Status)
	assert.Equal(t, "60.00", inst.Remaining().StringFixed(2))
	assert.Equal(t, "40.00", s.TotalPaid.StringFixed(2))

	err = s.RecordPayment(inst, decimal.RequireFromString("60.00"), date(2025, time.February, 2), now)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, inst.Status)
	assert.Equal(t, "100.00", inst.PaidAmount.StringFixed(2))
	assert.Equal(t, "100.00", s.TotalPaid.StringFixed(2))
}

func TestRecordPaymentAlreadyPaid(t *testing.T) {
	s := newTestSale(t, "300.00", 3, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.January, 20)
	inst := s.Installment(1)

	require.NoError(t, s.RecordPayment(inst, decimal.RequireFromString("100.00"), now, now))
	totalBefore := s.TotalPaid

	err := s.RecordPayment(inst, decimal.RequireFromString("10.00"), now, now)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.True(t, s.TotalPaid.Equal(totalBefore), "total pago não pode mudar em pagamento rejeitado")
}

func TestRecordPaymentValidation(t *testing.T) {
	s := newTestSale(t, "300.00", 3, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.January, 20)
	inst := s.Installment(1)

	err := s.RecordPayment(inst, decimal.Zero, now, now)
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	err = s.RecordPayment(inst, decimal.RequireFromString("-5.00"), now, now)
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	err = s.RecordPayment(inst, decimal.RequireFromString("100.02"), now, now)
	assert.ErrorIs(t, err, ErrPaymentExceedsAmount)

	other := &Installment{ID: "x", SaleID: "outra-venda", Number: 1, Amount: decimal.RequireFromString("10.00")}
	err = s.RecordPayment(other, decimal.RequireFromString("10.00"), now, now)
	assert.ErrorIs(t, err, ErrInstallmentMismatch)

	assert.True(t, s.TotalPaid.IsZero())
}

func TestTotalPaidMatchesInstallments(t *testing.T) {
	s := newTestSale(t, "100.00", 3, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.February, 1)

	require.NoError(t, s.RecordPayment(s.Installment(1), decimal.RequireFromString("33.33"), now, now))
	require.NoError(t, s.RecordPayment(s.Installment(2), decimal.RequireFromString("20.00"), now, now))
	require.NoError(t, s.RecordPayment(s.Installment(3), decimal.RequireFromString("33.34"), now, now))

	sum := decimal.Zero
	for _, inst := range s.Installments {
		if inst.Status == StatusPaid || inst.Status == StatusPartial {
			sum = sum.Add(inst.Paid())
		}
	}
	assert.True(t, s.TotalPaid.Equal(sum))
	assert.Equal(t, "86.67", s.TotalPaid.StringFixed(2))
	assert.False(t, s.IsSettled())
	assert.Equal(t, "13.33", s.Balance().StringFixed(2))
}

func TestIsSettledWithinTolerance(t *testing.T) {
	s := newTestSale(t, "100.00", 1, FrequencyMonthly, date(2025, time.January, 15))
	now := date(2025, time.January, 16)

	require.NoError(t, s.RecordPayment(s.Installment(1), decimal.RequireFromString("99.99"), now, now))
	assert.True(t, s.IsSettled())

	// a parcela é dada como paga mesmo com resíduo de um centavo
	inst := s.Installment(1)
	assert.Equal(t, StatusPaid, inst.Status)
	assert.Equal(t, "0.01", inst.Remaining().StringFixed(2))
}
