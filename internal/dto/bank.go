package dto

import (
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterBankAccountRequest defines the data needed to register a bank
// account in the auxiliary ledger.
type RegisterBankAccountRequest struct {
	Name           string                 `json:"name" binding:"required"`
	BankName       string                 `json:"bankName" binding:"required"`
	AccountNumber  string                 `json:"accountNumber" binding:"required"`
	AccountType    domain.BankAccountType `json:"accountType" binding:"required,oneof=CHECKING SAVINGS TERM_DEPOSIT"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	Description    string                 `json:"description"`
	CreatedBy      string                 `json:"createdBy"`
}

// UpdateBankStatementBalanceRequest sets the balance reported by the bank,
// used to compute the reconciliation difference.
type UpdateBankStatementBalanceRequest struct {
	BankBalance decimal.Decimal `json:"bankBalance" binding:"required"`
	UpdatedBy   string          `json:"updatedBy"`
}

// RegisterBankMovementRequest defines the data needed to record a bank
// movement against an account.
type RegisterBankMovementRequest struct {
	MovementType   domain.BankMovementType `json:"movementType" binding:"required,oneof=DEPOSIT CHECK_ISSUED TRANSFER_IN TRANSFER_OUT BANK_DEBIT_NOTE BANK_CREDIT_NOTE BANK_FEE INTEREST_EARNED"`
	Amount         decimal.Decimal         `json:"amount" binding:"required"`
	MovementDate   time.Time               `json:"movementDate" binding:"required"`
	Description    string                  `json:"description"`
	DocumentNumber string                  `json:"documentNumber"`
	Beneficiary    string                  `json:"beneficiary"`
	Notes          string                  `json:"notes"`
	CreatedBy      string                  `json:"createdBy"`
}

// BankAccountResponse mirrors domain.BankAccount with the derived
// reconciliation fields included.
type BankAccountResponse struct {
	BankAccountID string                 `json:"bankAccountID"`
	Name          string                 `json:"name"`
	BankName      string                 `json:"bankName"`
	AccountNumber string                 `json:"accountNumber"`
	AccountType   domain.BankAccountType `json:"accountType"`
	BooksBalance  decimal.Decimal        `json:"booksBalance"`
	BankBalance   decimal.Decimal        `json:"bankBalance"`
	Difference    decimal.Decimal        `json:"difference"`
	Reconciled    bool                   `json:"reconciled"`
	IsActive      bool                   `json:"isActive"`
	Description   string                 `json:"description"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// BankMovementResponse mirrors domain.BankMovement.
type BankMovementResponse struct {
	MovementID     string                    `json:"movementID"`
	BankAccountID  string                    `json:"bankAccountID"`
	MovementType   domain.BankMovementType   `json:"movementType"`
	MovementDate   time.Time                 `json:"movementDate"`
	Amount         decimal.Decimal           `json:"amount"`
	SignedAmount   decimal.Decimal           `json:"signedAmount"`
	Description    string                    `json:"description"`
	DocumentNumber string                    `json:"documentNumber"`
	Beneficiary    string                    `json:"beneficiary"`
	Status         domain.BankMovementStatus `json:"status"`
	ReconciledAt   *time.Time                `json:"reconciledAt,omitempty"`
	Notes          string                    `json:"notes"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

// ToBankAccountResponse converts a domain bank account.
func ToBankAccountResponse(ba *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: ba.BankAccountID,
		Name:          ba.Name,
		BankName:      ba.BankName,
		AccountNumber: ba.AccountNumber,
		AccountType:   ba.AccountType,
		BooksBalance:  ba.BooksBalance,
		BankBalance:   ba.BankBalance,
		Difference:    ba.ReconciliationDifference(),
		Reconciled:    ba.IsReconciled(),
		IsActive:      ba.IsActive,
		Description:   ba.Description,
		CreatedAt:     ba.CreatedAt,
		UpdatedAt:     ba.LastUpdatedAt,
	}
}

// ToBankAccountResponses converts a slice of bank accounts.
func ToBankAccountResponses(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}

// ToBankMovementResponse converts a domain bank movement.
func ToBankMovementResponse(m *domain.BankMovement) BankMovementResponse {
	return BankMovementResponse{
		MovementID:     m.MovementID,
		BankAccountID:  m.BankAccountID,
		MovementType:   m.MovementType,
		MovementDate:   m.MovementDate,
		Amount:         m.Amount,
		SignedAmount:   m.SignedAmount(),
		Description:    m.Description,
		DocumentNumber: m.DocumentNumber,
		Beneficiary:    m.Beneficiary,
		Status:         m.Status,
		ReconciledAt:   m.ReconciledAt,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// ToBankMovementResponses converts a slice of movements.
func ToBankMovementResponses(movements []domain.BankMovement) []BankMovementResponse {
	res := make([]BankMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToBankMovementResponse(&movements[i])
	}
	return res
}
