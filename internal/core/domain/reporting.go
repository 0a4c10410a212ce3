package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceLine is one account's balance split into debit and credit
// columns according to its nature.
type TrialBalanceLine struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	Nature       AccountNature   `json:"nature"`
	DebitColumn  decimal.Decimal `json:"debitColumn"`
	CreditColumn decimal.Decimal `json:"creditColumn"`
}

// TrialBalance is the full trial balance report. AsOfDate is informational:
// balances are live running totals, not reconstructed as of the date.
type TrialBalance struct {
	CompanyName     string             `json:"companyName"`
	AsOfDate        time.Time          `json:"asOfDate"`
	Period          string             `json:"period"`
	Lines           []TrialBalanceLine `json:"lines"`
	TotalDebit      decimal.Decimal    `json:"totalDebit"`
	TotalCredit     decimal.Decimal    `json:"totalCredit"`
	TotalAccounts   int                `json:"totalAccounts"`
	DebtorAccounts  int                `json:"debtorAccounts"`
	CreditorAccount int                `json:"creditorAccounts"`
	Balanced        bool               `json:"balanced"`
}

// StatementLine is one account line in a financial statement; Amount is the
// absolute balance value (type and nature already convey direction).
type StatementLine struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Nature      AccountNature   `json:"nature"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceSheet is the statement of financial position. The current design
// buckets everything as current; non-current groups are always empty.
type BalanceSheet struct {
	CompanyName           string          `json:"companyName"`
	AsOfDate              time.Time       `json:"asOfDate"`
	Period                string          `json:"period"`
	CurrentAssets         []StatementLine `json:"currentAssets"`
	NonCurrentAssets      []StatementLine `json:"nonCurrentAssets"`
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities    []StatementLine `json:"currentLiabilities"`
	NonCurrentLiabilities []StatementLine `json:"nonCurrentLiabilities"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	Equity                []StatementLine `json:"equity"`
	TotalEquity           decimal.Decimal `json:"totalEquity"`
	Difference            decimal.Decimal `json:"difference"`
	Balanced              bool            `json:"balanced"`
}

// ResultKind classifies the bottom line of an income statement.
type ResultKind string

const (
	ResultProfit ResultKind = "PROFIT"
	ResultLoss   ResultKind = "LOSS"
)

// IncomeStatement is the profit and loss statement for a period. The date
// range is informational for the same reason as TrialBalance.AsOfDate.
type IncomeStatement struct {
	CompanyName   string          `json:"companyName"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Period        string          `json:"period"`
	Revenue       []StatementLine `json:"revenue"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Costs         []StatementLine `json:"costs"` // Cost of goods sold accounts
	TotalCosts    decimal.Decimal `json:"totalCosts"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	Expenses      []StatementLine `json:"expenses"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	Result        ResultKind      `json:"result"`
}

// BankSummary aggregates all bank accounts for the bank position report.
type BankSummary struct {
	CompanyName     string          `json:"companyName"`
	AsOfDate        time.Time       `json:"asOfDate"`
	Accounts        []BankAccount   `json:"accounts"`
	TotalBooks      decimal.Decimal `json:"totalBooksBalance"`
	TotalBank       decimal.Decimal `json:"totalBankBalance"`
	TotalDifference decimal.Decimal `json:"totalDifference"`
	ReconciledCount int             `json:"reconciledAccounts"`
	PendingCount    int             `json:"pendingAccounts"`
	RecentMovements []BankMovement  `json:"recentMovements"`
}

// InventoryReport values the full inventory and flags low-stock products.
type InventoryReport struct {
	CompanyName      string          `json:"companyName"`
	AsOfDate         time.Time       `json:"asOfDate"`
	Products         []Product       `json:"products"`
	TotalProducts    int             `json:"totalProducts"`
	LowStockCount    int             `json:"lowStockCount"`
	LowStockProducts []Product       `json:"lowStockProducts"`
	TotalValue       decimal.Decimal `json:"totalValue"`
}

// AgingSummary summarizes open receivables or payables for one party kind.
type AgingSummary struct {
	CompanyName   string          `json:"companyName"`
	AsOfDate      time.Time       `json:"asOfDate"`
	Kind          PartyKind       `json:"kind"`
	OpenDocuments []OpenDocument  `json:"openDocuments"`
	TotalOpen     decimal.Decimal `json:"totalOpen"`
	TotalOverdue  decimal.Decimal `json:"totalOverdue"`
	OverdueCount  int             `json:"overdueCount"`
}
