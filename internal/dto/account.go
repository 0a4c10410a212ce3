package dto

import (
	"time"

	"github.com/SergioDaniel16/mipymes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest defines the data needed to register an account in
// the chart of accounts.
type RegisterAccountRequest struct {
	Code           string               `json:"code" binding:"required,accountcode"`
	Name           string               `json:"name" binding:"required"`
	AccountType    domain.AccountType   `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Nature         domain.AccountNature `json:"nature" binding:"required,oneof=DEBIT_NATURED CREDIT_NATURED"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Description    string               `json:"description"`
	CreatedBy      string               `json:"createdBy"`
}

// UpdateAccountRequest defines the fields allowed to change on an account.
// Balance is deliberately absent: it only changes through posting.
type UpdateAccountRequest struct {
	Name        *string               `json:"name"`
	AccountType *domain.AccountType   `json:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Nature      *domain.AccountNature `json:"nature" binding:"omitempty,oneof=DEBIT_NATURED CREDIT_NATURED"`
	Description *string               `json:"description"`
}

// AccountResponse mirrors domain.Account for API consumers.
type AccountResponse struct {
	AccountID   string               `json:"accountID"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	AccountType domain.AccountType   `json:"accountType"`
	Nature      domain.AccountNature `json:"nature"`
	Balance     decimal.Decimal      `json:"balance"`
	IsActive    bool                 `json:"isActive"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Nature:      acc.Nature,
		Balance:     acc.Balance,
		IsActive:    acc.IsActive,
		Description: acc.Description,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
