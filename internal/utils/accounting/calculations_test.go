package accounting_test

import (
	"testing"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/SergioDaniel16/mipymes/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatureForType(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		want        domain.AccountNature
		wantErr     bool
	}{
		{name: "asset is debit natured", accountType: domain.Asset, want: domain.DebitNatured},
		{name: "expense is debit natured", accountType: domain.Expense, want: domain.DebitNatured},
		{name: "liability is credit natured", accountType: domain.Liability, want: domain.CreditNatured},
		{name: "equity is credit natured", accountType: domain.Equity, want: domain.CreditNatured},
		{name: "revenue is credit natured", accountType: domain.Revenue, want: domain.CreditNatured},
		{name: "unknown type errors", accountType: domain.AccountType("BOGUS"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.NatureForType(tt.accountType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignedEffect(t *testing.T) {
	amount := decimal.NewFromInt(500)

	tests := []struct {
		name        string
		side        domain.LineSide
		accountType domain.AccountType
		want        decimal.Decimal
		wantErr     bool
	}{
		{name: "debit to asset increases", side: domain.Debit, accountType: domain.Asset, want: amount},
		{name: "credit to asset decreases", side: domain.Credit, accountType: domain.Asset, want: amount.Neg()},
		{name: "debit to expense increases", side: domain.Debit, accountType: domain.Expense, want: amount},
		{name: "credit to expense decreases", side: domain.Credit, accountType: domain.Expense, want: amount.Neg()},
		{name: "debit to liability decreases", side: domain.Debit, accountType: domain.Liability, want: amount.Neg()},
		{name: "credit to liability increases", side: domain.Credit, accountType: domain.Liability, want: amount},
		{name: "debit to equity decreases", side: domain.Debit, accountType: domain.Equity, want: amount.Neg()},
		{name: "credit to equity increases", side: domain.Credit, accountType: domain.Equity, want: amount},
		{name: "debit to revenue decreases", side: domain.Debit, accountType: domain.Revenue, want: amount.Neg()},
		{name: "credit to revenue increases", side: domain.Credit, accountType: domain.Revenue, want: amount},
		{name: "unknown type errors", side: domain.Debit, accountType: domain.AccountType("BOGUS"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.JournalLine{AccountID: "acc-1", Side: tt.side, Amount: amount}
			got, err := accounting.SignedEffect(line, tt.accountType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSplitByNature(t *testing.T) {
	tests := []struct {
		name       string
		balance    decimal.Decimal
		nature     domain.AccountNature
		wantDebit  decimal.Decimal
		wantCredit decimal.Decimal
	}{
		{
			name:       "positive debit natured lands in debit column",
			balance:    decimal.NewFromInt(1000),
			nature:     domain.DebitNatured,
			wantDebit:  decimal.NewFromInt(1000),
			wantCredit: decimal.Zero,
		},
		{
			name:       "negative debit natured flips to credit column",
			balance:    decimal.NewFromInt(-250),
			nature:     domain.DebitNatured,
			wantDebit:  decimal.Zero,
			wantCredit: decimal.NewFromInt(250),
		},
		{
			name:       "positive credit natured lands in credit column",
			balance:    decimal.NewFromInt(37000),
			nature:     domain.CreditNatured,
			wantDebit:  decimal.Zero,
			wantCredit: decimal.NewFromInt(37000),
		},
		{
			name:       "negative credit natured flips to debit column",
			balance:    decimal.NewFromInt(-80),
			nature:     domain.CreditNatured,
			wantDebit:  decimal.NewFromInt(80),
			wantCredit: decimal.Zero,
		},
		{
			name:       "zero balance splits to zero columns",
			balance:    decimal.Zero,
			nature:     domain.DebitNatured,
			wantDebit:  decimal.Zero,
			wantCredit: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debitCol, creditCol := accounting.SplitByNature(tt.balance, tt.nature)
			assert.True(t, tt.wantDebit.Equal(debitCol), "debit column: want %s, got %s", tt.wantDebit, debitCol)
			assert.True(t, tt.wantCredit.Equal(creditCol), "credit column: want %s, got %s", tt.wantCredit, creditCol)
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, accounting.WithinTolerance(decimal.NewFromFloat(1000.00), decimal.NewFromFloat(999.995)))
	assert.True(t, accounting.WithinTolerance(decimal.NewFromInt(100), decimal.NewFromInt(100)))
	assert.False(t, accounting.WithinTolerance(decimal.NewFromFloat(1000.00), decimal.NewFromFloat(999.99)))
	assert.False(t, accounting.WithinTolerance(decimal.NewFromFloat(100.00), decimal.NewFromFloat(99.99)))
}

func TestValidateEntryBalance_Balanced(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "bank", Side: domain.Debit, Amount: decimal.NewFromInt(12000)},
		{AccountID: "cash", Side: domain.Credit, Amount: decimal.NewFromInt(12000)},
	}

	debits, credits, err := accounting.ValidateEntryBalance(lines)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000).Equal(debits))
	assert.True(t, decimal.NewFromInt(12000).Equal(credits))
}

func TestValidateEntryBalance_SplitLines(t *testing.T) {
	// One debit covered by two credits.
	lines := []domain.JournalLine{
		{AccountID: "purchases", Side: domain.Debit, Amount: decimal.NewFromInt(5000)},
		{AccountID: "cash", Side: domain.Credit, Amount: decimal.NewFromInt(2000)},
		{AccountID: "suppliers", Side: domain.Credit, Amount: decimal.NewFromInt(3000)},
	}

	debits, credits, err := accounting.ValidateEntryBalance(lines)

	require.NoError(t, err)
	assert.True(t, debits.Equal(credits))
}

func TestValidateEntryBalance_Unbalanced(t *testing.T) {
	// A single cent of difference must be rejected, never auto-adjusted.
	lines := []domain.JournalLine{
		{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromFloat(100.00)},
		{AccountID: "sales", Side: domain.Credit, Amount: decimal.NewFromFloat(99.99)},
	}

	_, _, err := accounting.ValidateEntryBalance(lines)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "100")
	assert.Contains(t, err.Error(), "99.99")
}

func TestValidateEntryBalance_NonPositiveAmount(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "cash", Side: domain.Debit, Amount: decimal.Zero},
		{AccountID: "sales", Side: domain.Credit, Amount: decimal.Zero},
	}

	_, _, err := accounting.ValidateEntryBalance(lines)

	assert.Error(t, err)
}

func TestValidateEntryBalance_Empty(t *testing.T) {
	_, _, err := accounting.ValidateEntryBalance(nil)

	assert.Error(t, err)
}
