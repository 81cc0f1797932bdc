package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestSale(t *testing.T, total string, n int, freq PaymentFrequency, firstDue time.Time) *Sale {
	t.Helper()
	s, err := NewSale("client-1", decimal.RequireFromString(total), n, freq, firstDue, date(2025, time.January, 10), "")
	require.NoError(t, err)
	return s
}

func TestNewSaleValidation(t *testing.T) {
	firstDue := date(2025, time.January, 15)

	_, err := NewSale("", decimal.RequireFromString("100.00"), 2, FrequencyMonthly, firstDue, firstDue, "")
	assert.ErrorIs(t, err, ErrEmptyClient)

	_, err = NewSale("client-1", decimal.Zero, 2, FrequencyMonthly, firstDue, firstDue, "")
	assert.ErrorIs(t, err, ErrInvalidTotalValue)

	_, err = NewSale("client-1", decimal.RequireFromString("-10.00"), 2, FrequencyMonthly, firstDue, firstDue, "")
	assert.ErrorIs(t, err, ErrInvalidTotalValue)

	_, err = NewSale("client-1", decimal.RequireFromString("100.00"), 0, FrequencyMonthly, firstDue, firstDue, "")
	assert.ErrorIs(t, err, ErrInvalidInstallments)

	_, err = NewSale("client-1", decimal.RequireFromString("100.00"), 2, PaymentFrequency("semanal"), firstDue, firstDue, "")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestScheduleMonthly(t *testing.T) {
	s := newTestSale(t, "3000.00", 6, FrequencyMonthly, date(2025, time.January, 15))

	require.Len(t, s.Installments, 6)
	expected := []time.Time{
		date(2025, time.January, 15),
		date(2025, time.February, 15),
		date(2025, time.March, 15),
		date(2025, time.April, 15),
		date(2025, time.May, 15),
		date(2025, time.June, 15),
	}
	for idx, inst := range s.Installments {
		assert.Equal(t, idx+1, inst.Number)
		assert.Equal(t, "500.00", inst.Amount.StringFixed(2))
		assert.Equal(t, expected[idx], inst.DueDate)
		assert.Equal(t, StatusPending, inst.Status)
		assert.Nil(t, inst.PaidDate)
		assert.Nil(t, inst.PaidAmount)
	}
}

func TestScheduleBiweekly(t *testing.T) {
	s := newTestSale(t, "450.00", 3, FrequencyBiweekly, date(2025, time.March, 1))

	require.Len(t, s.Installments, 3)
	assert.Equal(t, date(2025, time.March, 1), s.Installments[0].DueDate)
	assert.Equal(t, date(2025, time.March, 16), s.Installments[1].DueDate)
	assert.Equal(t, date(2025, time.March, 31), s.Installments[2].DueDate)
}

func TestScheduleMonthlyClampsDayOfMonth(t *testing.T) {
	s := newTestSale(t, "400.00", 4, FrequencyMonthly, date(2025, time.January, 31))

	require.Len(t, s.Installments, 4)
	assert.Equal(t, date(2025, time.January, 31), s.Installments[0].DueDate)
	assert.Equal(t, date(2025, time.February, 28), s.Installments[1].DueDate)
	assert.Equal(t, date(2025, time.March, 31), s.Installments[2].DueDate)
	assert.Equal(t, date(2025, time.April, 30), s.Installments[3].DueDate)
}

func TestScheduleLastInstallmentAbsorbsResidual(t *testing.T) {
	s := newTestSale(t, "100.00", 3, FrequencyMonthly, date(2025, time.January, 15))

	require.Len(t, s.Installments, 3)
	assert.Equal(t, "33.33", s.Installments[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", s.Installments[1].Amount.StringFixed(2))
	assert.Equal(t, "33.34", s.Installments[2].Amount.StringFixed(2))
}

func TestScheduleSumEqualsTotalValue(t *testing.T) {
	totals := []string{"100.00", "99.99", "0.05", "1234.56", "3000.00", "777.77"}
	counts := []int{1, 2, 3, 6, 7, 12, 48}

	for _, total := range totals {
		for _, n := range counts {
			s := newTestSale(t, total, n, FrequencyMonthly, date(2025, time.January, 15))

			sum := decimal.Zero
			for _, inst := range s.Installments {
				sum = sum.Add(inst.Amount)
			}
			assert.True(t, sum.Equal(s.TotalValue),
				"total=%s n=%d: soma das parcelas %s difere do total", total, n, sum)
		}
	}
}

func TestScheduleSmallTotalManyInstallments(t *testing.T) {
	s := newTestSale(t, "1.00", 66, FrequencyMonthly, date(2025, time.January, 15))

	require.Len(t, s.Installments, 66)
	sum := decimal.Zero
	for _, inst := range s.Installments {
		assert.False(t, inst.Amount.IsNegative(),
			"parcela %d com valor negativo: %s", inst.Number, inst.Amount)
		sum = sum.Add(inst.Amount)
	}
	assert.Equal(t, "0.01", s.Installments[0].Amount.StringFixed(2))
	assert.Equal(t, "0.35", s.Installments[65].Amount.StringFixed(2))
	assert.True(t, sum.Equal(s.TotalValue))
}
