package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/middleware"
	"github.com/SergioDaniel16/mipymes/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService derives the trial balance and financial statements from
// the live account balances in the catalog.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	companyName string
	// costOfSalesPrefix selects which expense accounts count as cost of
	// goods sold on the income statement, by account code prefix.
	costOfSalesPrefix string
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, companyName, costOfSalesPrefix string) portssvc.ReportingService {
	return &reportingService{
		accountRepo:       accountRepo,
		companyName:       companyName,
		costOfSalesPrefix: costOfSalesPrefix,
	}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance builds the trial balance from current balances. Each account
// lands in the debit or credit column according to its nature; totals are
// compared within the standard tolerance rather than exactly, to absorb
// rounding in divided figures. An empty typeFilter covers the whole chart;
// nonZeroOnly drops accounts with a zero balance.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time, typeFilter domain.AccountType, nonZeroOnly bool) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var (
		accounts []domain.Account
		err      error
	)
	if typeFilter != "" {
		if _, natErr := accounting.NatureForType(typeFilter); natErr != nil {
			return nil, fmt.Errorf("%w: unknown account type %s", apperrors.ErrValidation, typeFilter)
		}
		accounts, err = s.accountRepo.ListAccountsByType(ctx, typeFilter)
	} else {
		accounts, err = s.accountRepo.ListAccounts(ctx, true)
	}
	if err != nil {
		logger.Error("Failed to list accounts for trial balance", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := &domain.TrialBalance{
		CompanyName: s.companyName,
		AsOfDate:    asOf,
		Period:      periodLabel(asOf),
		Lines:       make([]domain.TrialBalanceLine, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, acc := range accounts {
		if nonZeroOnly && acc.Balance.IsZero() {
			continue
		}
		debitCol, creditCol := accounting.SplitByNature(acc.Balance, acc.Nature)
		report.Lines = append(report.Lines, domain.TrialBalanceLine{
			Code:         acc.Code,
			Name:         acc.Name,
			AccountType:  acc.AccountType,
			Nature:       acc.Nature,
			DebitColumn:  debitCol,
			CreditColumn: creditCol,
		})
		report.TotalDebit = report.TotalDebit.Add(debitCol)
		report.TotalCredit = report.TotalCredit.Add(creditCol)
		if debitCol.GreaterThan(decimal.Zero) {
			report.DebtorAccounts++
		}
		if creditCol.GreaterThan(decimal.Zero) {
			report.CreditorAccount++
		}
	}
	report.TotalAccounts = len(report.Lines)
	report.Balanced = accounting.WithinTolerance(report.TotalDebit, report.TotalCredit)

	return report, nil
}

// BalanceSheet builds the statement of financial position from current
// balances. All accounts are bucketed as current; the non-current groups
// exist for layout and stay empty. Equity holds EQUITY-type accounts only,
// so books with an unclosed period result show up as a difference rather
// than silently squaring.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		logger.Error("Failed to list accounts for balance sheet", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := &domain.BalanceSheet{
		CompanyName:           s.companyName,
		AsOfDate:              asOf,
		Period:                periodLabel(asOf),
		CurrentAssets:         []domain.StatementLine{},
		NonCurrentAssets:      []domain.StatementLine{},
		CurrentLiabilities:    []domain.StatementLine{},
		NonCurrentLiabilities: []domain.StatementLine{},
		Equity:                []domain.StatementLine{},
		TotalAssets:           decimal.Zero,
		TotalLiabilities:      decimal.Zero,
		TotalEquity:           decimal.Zero,
	}

	for _, acc := range accounts {
		if acc.Balance.IsZero() {
			continue
		}
		line := statementLine(acc)
		switch acc.AccountType {
		case domain.Asset:
			report.CurrentAssets = append(report.CurrentAssets, line)
			report.TotalAssets = report.TotalAssets.Add(line.Amount)
		case domain.Liability:
			report.CurrentLiabilities = append(report.CurrentLiabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(line.Amount)
		case domain.Equity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity = report.TotalEquity.Add(line.Amount)
		}
	}

	report.Difference = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.Balanced = accounting.WithinTolerance(report.TotalAssets, report.TotalLiabilities.Add(report.TotalEquity))

	return report, nil
}

// IncomeStatement builds the profit and loss statement. Expense accounts
// whose code starts with the cost-of-sales prefix are grouped as costs;
// everything else lands under operating expenses.
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		logger.Error("Failed to list accounts for income statement", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := &domain.IncomeStatement{
		CompanyName:   s.companyName,
		StartDate:     from,
		EndDate:       to,
		Period:        fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		Revenue:       []domain.StatementLine{},
		Costs:         []domain.StatementLine{},
		Expenses:      []domain.StatementLine{},
		TotalRevenue:  decimal.Zero,
		TotalCosts:    decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, acc := range accounts {
		if acc.Balance.IsZero() {
			continue
		}
		line := statementLine(acc)
		switch acc.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, line)
			report.TotalRevenue = report.TotalRevenue.Add(line.Amount)
		case domain.Expense:
			if s.costOfSalesPrefix != "" && strings.HasPrefix(acc.Code, s.costOfSalesPrefix) {
				report.Costs = append(report.Costs, line)
				report.TotalCosts = report.TotalCosts.Add(line.Amount)
			} else {
				report.Expenses = append(report.Expenses, line)
				report.TotalExpenses = report.TotalExpenses.Add(line.Amount)
			}
		}
	}

	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCosts)
	report.NetIncome = report.GrossProfit.Sub(report.TotalExpenses)
	if report.NetIncome.IsNegative() {
		report.Result = domain.ResultLoss
	} else {
		report.Result = domain.ResultProfit
	}

	return report, nil
}

// YearToDateIncomeStatement covers January 1st of the current year through
// today.
func (s *reportingService) YearToDateIncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	now := time.Now().UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.IncomeStatement(ctx, yearStart, now)
}

// statementLine renders an account for presentation: line amounts drop the
// sign, statement totals sum these absolute values.
func statementLine(acc domain.Account) domain.StatementLine {
	return domain.StatementLine{
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Nature:      acc.Nature,
		Amount:      acc.Balance.Abs(),
	}
}

func periodLabel(asOf time.Time) string {
	return fmt.Sprintf("Al %s", asOf.Format("2006-01-02"))
}
