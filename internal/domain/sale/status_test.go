package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func installmentWith(amount string, dueDate time.Time, paid *string) *Installment {
	inst := &Installment{
		ID:      "inst-1",
		SaleID:  "sale-1",
		Number:  1,
		Amount:  decimal.RequireFromString(amount),
		DueDate: dueDate,
		Status:  StatusPending,
	}
	if paid != nil {
		v := decimal.RequireFromString(*paid)
		inst.PaidAmount = &v
	}
	return inst
}

func strPtr(s string) *string { return &s }

func TestDeriveStatus(t *testing.T) {
	due := date(2025, time.March, 10)

	tests := []struct {
		name string
		inst *Installment
		now  time.Time
		want Status
	}{
		{"sem pagamento dentro do prazo", installmentWith("100.00", due, nil), date(2025, time.March, 10), StatusPending},
		{"sem pagamento após o vencimento", installmentWith("100.00", due, nil), date(2025, time.March, 11), StatusOverdue},
		{"pagamento parcial", installmentWith("100.00", due, strPtr("40.00")), date(2025, time.March, 5), StatusPartial},
		{"pagamento parcial vencida continua parcial", installmentWith("100.00", due, strPtr("40.00")), date(2025, time.April, 1), StatusPartial},
		{"pagamento integral", installmentWith("100.00", due, strPtr("100.00")), date(2025, time.March, 5), StatusPaid},
		{"pagamento dentro da tolerância", installmentWith("100.00", due, strPtr("99.99")), date(2025, time.March, 5), StatusPaid},
		{"abaixo da tolerância é parcial", installmentWith("100.00", due, strPtr("99.98")), date(2025, time.March, 5), StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.inst, tt.now))
		})
	}
}

func TestDeriveStatusIsDateOnly(t *testing.T) {
	due := date(2025, time.March, 10)
	inst := installmentWith("100.00", due, nil)

	// às 23h59 do dia do vencimento ainda não está atrasada
	now := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, StatusPending, DeriveStatus(inst, now))

	// à 00h01 do dia seguinte está
	now = time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, StatusOverdue, DeriveStatus(inst, now))
}

func TestIsOverdue(t *testing.T) {
	due := date(2025, time.March, 10)

	inst := installmentWith("100.00", due, nil)
	assert.False(t, inst.IsOverdue(date(2025, time.March, 10)))
	assert.True(t, inst.IsOverdue(date(2025, time.March, 11)))

	inst.Status = StatusPaid
	assert.False(t, inst.IsOverdue(date(2025, time.April, 1)))
}
