package domain_test

import (
	"testing"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_IsBalanced(t *testing.T) {
	balanced := domain.JournalEntry{
		TotalDebits:  decimal.NewFromInt(12000),
		TotalCredits: decimal.NewFromInt(12000),
	}
	unbalanced := domain.JournalEntry{
		TotalDebits:  decimal.NewFromFloat(100.00),
		TotalCredits: decimal.NewFromFloat(99.99),
	}

	assert.True(t, balanced.IsBalanced())
	assert.False(t, unbalanced.IsBalanced())
}

func TestJournalEntry_RecalculateTotals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Side: domain.Debit, Amount: decimal.NewFromInt(7000)},
			{Side: domain.Debit, Amount: decimal.NewFromInt(5000)},
			{Side: domain.Credit, Amount: decimal.NewFromInt(12000)},
		},
	}

	entry.RecalculateTotals()

	assert.True(t, decimal.NewFromInt(12000).Equal(entry.TotalDebits))
	assert.True(t, decimal.NewFromInt(12000).Equal(entry.TotalCredits))
	assert.True(t, entry.IsBalanced())
}

func TestJournalLine_EffectiveDescription(t *testing.T) {
	withOwn := domain.JournalLine{Description: "Check 0147 to supplier"}
	withoutOwn := domain.JournalLine{Description: "   "}

	assert.Equal(t, "Check 0147 to supplier", withOwn.EffectiveDescription("Monthly purchases"))
	assert.Equal(t, "Monthly purchases", withoutOwn.EffectiveDescription("Monthly purchases"))
}
