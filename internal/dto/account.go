package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
)

// CreateAccountRequest defines the payload for registering an account.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,max=64"`
	Name            string             `json:"name" binding:"required,max=255"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,accounttype"`
	Description     string             `json:"description"`
	ParentAccountID *string            `json:"parentAccountID"`
}

// ToInput converts the request into the service input.
func (r CreateAccountRequest) ToInput() portssvc.CreateAccountInput {
	return portssvc.CreateAccountInput{
		Code:            r.Code,
		Name:            r.Name,
		AccountType:     r.AccountType,
		Description:     r.Description,
		ParentAccountID: r.ParentAccountID,
	}
}

// UpdateAccountRequest defines the payload for editing an account. Omitted
// fields keep their stored values; code and type cannot change.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// ToInput converts the request into the service input.
func (r UpdateAccountRequest) ToInput() portssvc.UpdateAccountInput {
	return portssvc.UpdateAccountInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// SetAccountStatusRequest defines the payload for (de)activating an account.
type SetAccountStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// BalanceResponse is the snapshot view attached to account responses.
type BalanceResponse struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	Description     string             `json:"description,omitempty"`
	ParentAccountID *string            `json:"parentAccountID,omitempty"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Balance         *BalanceResponse   `json:"balance,omitempty"`
}

// ListAccountsResponse wraps the account collection.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     a.AccountType,
		Description:     a.Description,
		ParentAccountID: a.ParentAccountID,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Balance != nil {
		resp.Balance = &BalanceResponse{
			TotalDebit:  a.Balance.TotalDebit,
			TotalCredit: a.Balance.TotalCredit,
			Balance:     a.Balance.Balance,
			UpdatedAt:   a.Balance.UpdatedAt,
		}
	}
	return resp
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
