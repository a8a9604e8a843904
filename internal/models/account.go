package models

import "time"

// AccountType mirrors the domain account type at the persistence layer.
type AccountType string

// Account is the database shape of a chart-of-accounts row.
// Note: ParentAccountID uses a pointer for the nullable foreign key.
type Account struct {
	AccountID       string      `db:"account_id"`
	Code            string      `db:"code"`
	Name            string      `db:"name"`
	AccountType     AccountType `db:"account_type"`
	Description     *string     `db:"description"`
	ParentAccountID *string     `db:"parent_account_id"`
	IsActive        bool        `db:"is_active"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}
