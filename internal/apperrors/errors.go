package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the service layer. Handlers map these onto HTTP
// statuses and stable error codes; services wrap them with context via
// fmt.Errorf and %w.
var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("resource already exists")
	ErrConflict   = errors.New("resource conflict")
	ErrInternal   = errors.New("internal error")

	// Journal validation failures, ordered the way the validator checks them.
	ErrInsufficientLines    = fmt.Errorf("%w: journal entry requires at least two lines", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: line amounts must be non-negative whole numbers", ErrValidation)
	ErrSingleSideViolation  = fmt.Errorf("%w: each line must have exactly one of debit or credit set", ErrValidation)
	ErrDebitCreditMismatch  = fmt.Errorf("%w: debit and credit totals do not match", ErrValidation)
	ErrAccountNotFound      = fmt.Errorf("%w: referenced account does not exist", ErrValidation)
	ErrInactiveAccount      = fmt.Errorf("%w: referenced account is inactive", ErrValidation)
	ErrInvalidDateRange     = fmt.Errorf("%w: from date must not be after to date", ErrValidation)
	ErrDuplicateAccountCode = fmt.Errorf("%w: account code already exists", ErrDuplicate)
	ErrAccountInUse         = fmt.Errorf("%w: account is referenced by journal lines", ErrConflict)
)

// MismatchError carries the totals behind a debit/credit imbalance.
type MismatchError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("debit total %s does not equal credit total %s", e.DebitTotal, e.CreditTotal)
}

func (e *MismatchError) Unwrap() error { return ErrDebitCreditMismatch }

// Difference returns the signed gap, debit total minus credit total.
// Negative means credits exceed debits.
func (e *MismatchError) Difference() decimal.Decimal {
	return e.DebitTotal.Sub(e.CreditTotal)
}

// MissingAccountsError lists account IDs referenced by lines but absent from
// the registry.
type MissingAccountsError struct {
	AccountIDs []string
}

func (e *MissingAccountsError) Error() string {
	return fmt.Sprintf("accounts not found: %v", e.AccountIDs)
}

func (e *MissingAccountsError) Unwrap() error { return ErrAccountNotFound }

// InactiveAccountDetail identifies one inactive account for error reporting.
type InactiveAccountDetail struct {
	AccountID string `json:"account_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}

// InactiveAccountsError lists accounts that exist but are deactivated.
type InactiveAccountsError struct {
	Accounts []InactiveAccountDetail
}

func (e *InactiveAccountsError) Error() string {
	return fmt.Sprintf("inactive accounts referenced: %d", len(e.Accounts))
}

func (e *InactiveAccountsError) Unwrap() error { return ErrInactiveAccount }

// AccountInUseError reports how many journal lines block a deactivation.
type AccountInUseError struct {
	AccountID  string
	UsageCount int64
}

func (e *AccountInUseError) Error() string {
	return fmt.Sprintf("account %s is referenced by %d journal lines", e.AccountID, e.UsageCount)
}

func (e *AccountInUseError) Unwrap() error { return ErrAccountInUse }
