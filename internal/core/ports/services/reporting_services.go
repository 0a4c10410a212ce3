package services

import (
	"context"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates the trial balance from current account
	// balances, optionally restricted to one account type (empty means
	// all) and optionally keeping zero-balance accounts. The date is
	// recorded on the report header; balances are live running totals.
	TrialBalance(ctx context.Context, asOf time.Time, typeFilter domain.AccountType, nonZeroOnly bool) (*domain.TrialBalance, error)

	// BalanceSheet generates the statement of financial position.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// IncomeStatement generates the profit and loss statement for a period.
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error)

	// YearToDateIncomeStatement generates the income statement from the
	// start of the current year through today.
	YearToDateIncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)
}
