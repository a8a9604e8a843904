package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
)

// SumLines returns the debit and credit column totals over lines.
func SumLines(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// ValidateLines runs the full journal validation pipeline against the given
// lines and the accounts they reference. Checks run in a fixed order and the
// first failing check wins:
//
//  1. at least two lines
//  2. amounts are non-negative whole numbers
//  3. each line posts to exactly one side
//  4. every referenced account exists
//  5. every referenced account is active
//  6. debit total equals credit total
//
// accounts must be keyed by account ID and may contain accounts the lines do
// not reference.
func ValidateLines(lines []domain.JournalLine, accounts map[string]domain.Account) error {
	if len(lines) < 2 {
		return apperrors.ErrInsufficientLines
	}

	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return apperrors.ErrInvalidAmount
		}
		if !line.Debit.IsInteger() || !line.Credit.IsInteger() {
			return apperrors.ErrInvalidAmount
		}
	}

	for _, line := range lines {
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet {
			return apperrors.ErrSingleSideViolation
		}
	}

	var missing []string
	for _, id := range domain.AccountIDs(lines) {
		if _, ok := accounts[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &apperrors.MissingAccountsError{AccountIDs: missing}
	}

	var inactive []apperrors.InactiveAccountDetail
	for _, id := range domain.AccountIDs(lines) {
		if acct := accounts[id]; !acct.IsActive {
			inactive = append(inactive, apperrors.InactiveAccountDetail{
				AccountID: acct.AccountID,
				Code:      acct.Code,
				Name:      acct.Name,
			})
		}
	}
	if len(inactive) > 0 {
		return &apperrors.InactiveAccountsError{Accounts: inactive}
	}

	debit, credit := SumLines(lines)
	if !debit.Equal(credit) {
		return &apperrors.MismatchError{DebitTotal: debit, CreditTotal: credit}
	}

	return nil
}

// ConvertBalance turns a signed net balance (debits minus credits) into a
// magnitude plus direction. A positive net sits on the debit side, a negative
// net on the credit side, and an exact zero reports the account type's normal
// direction so statements never show an ambiguous side.
func ConvertBalance(net decimal.Decimal, accountType domain.AccountType) domain.BalanceAmount {
	switch {
	case net.IsPositive():
		return domain.BalanceAmount{Amount: net, Direction: domain.Debit}
	case net.IsNegative():
		return domain.BalanceAmount{Amount: net.Neg(), Direction: domain.Credit}
	default:
		return domain.BalanceAmount{Amount: decimal.Zero, Direction: accountType.NormalDirection()}
	}
}
