package domain_test

import (
	"testing"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOpenDocument_ApplyPayment_Partial(t *testing.T) {
	doc := domain.OpenDocument{
		OriginalAmount:  decimal.NewFromInt(5000),
		PaidAmount:      decimal.Zero,
		RemainingAmount: decimal.NewFromInt(5000),
		Status:          domain.DocumentPending,
	}

	doc.ApplyPayment(decimal.NewFromInt(2000))

	assert.True(t, decimal.NewFromInt(2000).Equal(doc.PaidAmount))
	assert.True(t, decimal.NewFromInt(3000).Equal(doc.RemainingAmount))
	assert.Equal(t, domain.DocumentPartial, doc.Status)
}

func TestOpenDocument_ApplyPayment_FullSettlesInSteps(t *testing.T) {
	doc := domain.OpenDocument{
		OriginalAmount:  decimal.NewFromInt(5000),
		RemainingAmount: decimal.NewFromInt(5000),
		Status:          domain.DocumentPending,
	}

	doc.ApplyPayment(decimal.NewFromInt(3000))
	assert.Equal(t, domain.DocumentPartial, doc.Status)

	doc.ApplyPayment(decimal.NewFromInt(2000))
	assert.Equal(t, domain.DocumentPaid, doc.Status)
	assert.True(t, doc.RemainingAmount.IsZero())
}

func TestOpenDocument_ApplyPayment_SinglePaymentPaysInFull(t *testing.T) {
	doc := domain.OpenDocument{
		OriginalAmount:  decimal.NewFromFloat(1250.75),
		RemainingAmount: decimal.NewFromFloat(1250.75),
		Status:          domain.DocumentPending,
	}

	doc.ApplyPayment(decimal.NewFromFloat(1250.75))

	assert.Equal(t, domain.DocumentPaid, doc.Status)
	assert.True(t, doc.RemainingAmount.IsZero())
	assert.True(t, doc.PaidAmount.Equal(doc.OriginalAmount))
}

func TestOpenDocument_IsOverdue(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		status  domain.DocumentStatus
		want    bool
	}{
		{
			name:    "past due and pending",
			dueDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			status:  domain.DocumentPending,
			want:    true,
		},
		{
			name:    "due today is not overdue",
			dueDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			status:  domain.DocumentPending,
			want:    false,
		},
		{
			name:    "due in the future",
			dueDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			status:  domain.DocumentPending,
			want:    false,
		},
		{
			name:    "past due but partially paid is not overdue",
			dueDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			status:  domain.DocumentPartial,
			want:    false,
		},
		{
			name:    "past due but paid is not overdue",
			dueDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			status:  domain.DocumentPaid,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.OpenDocument{DueDate: tt.dueDate, Status: tt.status}
			assert.Equal(t, tt.want, doc.IsOverdue(now))
		})
	}
}

func TestOpenDocument_DaysLate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	overdue := domain.OpenDocument{
		DueDate: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		Status:  domain.DocumentPending,
	}
	current := domain.OpenDocument{
		DueDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.DocumentPending,
	}

	assert.Equal(t, int64(10), overdue.DaysLate(now))
	assert.Equal(t, int64(0), current.DaysLate(now))
}

func TestParty_AvailableCredit(t *testing.T) {
	party := domain.Party{
		CreditLimit: decimal.NewFromInt(10000),
		Balance:     decimal.NewFromInt(3500),
	}

	assert.True(t, decimal.NewFromInt(6500).Equal(party.AvailableCredit()))
}
