package accounting

import (
	"fmt"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NatureForType returns the conventional nature for an account type:
// assets and expenses are debit-natured, everything else credit-natured.
func NatureForType(accountType domain.AccountType) (domain.AccountNature, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return domain.DebitNatured, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return domain.CreditNatured, nil
	default:
		return "", fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// IncreasesOnDebit reports whether debits add to the account's balance.
func IncreasesOnDebit(accountType domain.AccountType) bool {
	return accountType == domain.Asset || accountType == domain.Expense
}

// SignedEffect applies the correct sign to a journal line amount based on the
// account type and the line side. This is the single sign rule of the posting
// engine, shared by services and repositories:
//
//	DEBIT to ASSET/EXPENSE -> positive
//	CREDIT to ASSET/EXPENSE -> negative
//	DEBIT to LIABILITY/EQUITY/REVENUE -> negative
//	CREDIT to LIABILITY/EQUITY/REVENUE -> positive
func SignedEffect(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signed := line.Amount
	isDebit := line.Side == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signed = signed.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signed = signed.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return signed, nil
}

// SplitByNature splits a signed running balance into trial-balance debit and
// credit columns. A debit-natured account carries a non-negative balance in
// the debit column and a negative balance's absolute value in the credit
// column; credit-natured accounts are symmetric.
func SplitByNature(balance decimal.Decimal, nature domain.AccountNature) (debitCol, creditCol decimal.Decimal) {
	switch nature {
	case domain.DebitNatured:
		if balance.IsNegative() {
			return decimal.Zero, balance.Abs()
		}
		return balance, decimal.Zero
	default: // CreditNatured
		if balance.IsNegative() {
			return balance.Abs(), decimal.Zero
		}
		return decimal.Zero, balance
	}
}

// WithinTolerance reports whether |a - b| < 0.01, the standard tolerance for
// derived report figures.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(domain.ReconciliationTolerance)
}

// ValidateEntryBalance checks the double-entry law over a set of lines:
// every amount strictly positive and total debits equal to total credits.
// It returns the computed totals so callers can cache them on the entry.
func ValidateEntryBalance(lines []domain.JournalLine) (totalDebits, totalCredits decimal.Decimal, err error) {
	totalDebits = decimal.Zero
	totalCredits = decimal.Zero

	if len(lines) == 0 {
		return totalDebits, totalCredits, fmt.Errorf("entry must have at least one line")
	}

	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return totalDebits, totalCredits, fmt.Errorf("line amount must be positive for account %s", line.AccountID)
		}
		if line.Side == domain.Debit {
			totalDebits = totalDebits.Add(line.Amount)
		} else {
			totalCredits = totalCredits.Add(line.Amount)
		}
	}

	if !totalDebits.Equal(totalCredits) {
		return totalDebits, totalCredits, fmt.Errorf("debits %s do not equal credits %s", totalDebits.String(), totalCredits.String())
	}
	return totalDebits, totalCredits, nil
}
