package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	balanceRepo portsrepo.BalanceRepository
}

// NewAccountService creates the chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepository, balanceRepo portsrepo.BalanceRepository) portssvc.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
	}
}

var _ portssvc.AccountService = (*accountService)(nil)

// CreateAccount registers a new account with a unique code and seeds its
// zero balance snapshot.
func (s *accountService) CreateAccount(ctx context.Context, input portssvc.CreateAccountInput) (*domain.Account, error) {
	if !input.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, input.AccountType)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, input.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check account code uniqueness", slog.String("code", input.Code))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicateAccountCode, input.Code)
	}

	if input.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *input.ParentAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, &apperrors.MissingAccountsError{AccountIDs: []string{*input.ParentAccountID}}
			}
			return nil, err
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            input.Code,
		Name:            input.Name,
		AccountType:     input.AccountType,
		Description:     input.Description,
		ParentAccountID: input.ParentAccountID,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// The unique index is the authority on code collisions under
		// concurrency, the pre-check only gives nicer sequencing.
		if !errors.Is(err, apperrors.ErrDuplicateAccountCode) {
			s.LogError(ctx, err, "failed to save account", slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	if err := s.balanceRepo.RecomputeBalances(ctx, []string{account.AccountID}); err != nil {
		s.LogError(ctx, err, "failed to seed balance snapshot", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID fetches one account, optionally with its balance snapshot.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string, withBalance bool) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if withBalance {
		if err := s.attachBalances(ctx, []*domain.Account{account}); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// ListAccounts returns the chart of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, includeInactive, withBalances bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	if withBalances && len(accounts) > 0 {
		ptrs := make([]*domain.Account, len(accounts))
		for i := range accounts {
			ptrs[i] = &accounts[i]
		}
		if err := s.attachBalances(ctx, ptrs); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// UpdateAccount applies the mutable fields. Code and account type are fixed
// at creation.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, input portssvc.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Description != nil {
		account.Description = *input.Description
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// SetAccountStatus activates or deactivates an account. Deactivation is
// refused while any journal line references the account.
func (s *accountService) SetAccountStatus(ctx context.Context, accountID string, isActive bool) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.IsActive == isActive {
		return account, nil
	}

	if !isActive {
		usage, err := s.accountRepo.CountLineUsage(ctx, accountID)
		if err != nil {
			s.LogError(ctx, err, "failed to count account usage", slog.String("account_id", accountID))
			return nil, err
		}
		if usage > 0 {
			return nil, &apperrors.AccountInUseError{AccountID: accountID, UsageCount: usage}
		}
	}

	if err := s.accountRepo.SetAccountStatus(ctx, accountID, isActive); err != nil {
		s.LogError(ctx, err, "failed to set account status", slog.String("account_id", accountID))
		return nil, err
	}

	account.IsActive = isActive
	account.UpdatedAt = time.Now()
	s.LogInfo(ctx, "account status changed", slog.String("account_id", accountID), slog.Bool("is_active", isActive))
	return account, nil
}

func (s *accountService) attachBalances(ctx context.Context, accounts []*domain.Account) error {
	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.AccountID
	}
	balances, err := s.balanceRepo.FindBalancesByAccountIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "failed to load balance snapshots")
		return err
	}
	for _, a := range accounts {
		if b, ok := balances[a.AccountID]; ok {
			snapshot := b
			a.Balance = &snapshot
		}
	}
	return nil
}
