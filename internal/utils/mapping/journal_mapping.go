package mapping

import (
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	"github.com/seojun-park/bookkeeper/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:   d.EntryID,
		EntryDate: d.Date,
		IsDeleted: d.IsDeleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Description != "" {
		m.Description = &d.Description
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:   m.EntryID,
		Date:      m.EntryDate,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:     d.LineID,
		EntryID:    d.EntryID,
		LineNumber: d.LineNumber,
		AccountID:  d.AccountID,
		Debit:      d.Debit,
		Credit:     d.Credit,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNumber:  m.LineNumber,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		CreatedAt:   m.CreatedAt,
		AccountName: m.AccountName,
	}
}

// ToDomainAccountBalance converts a model AccountBalance to a domain AccountBalance
func ToDomainAccountBalance(m models.AccountBalance) domain.AccountBalance {
	return domain.AccountBalance{
		AccountID:   m.AccountID,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Balance:     m.Balance,
		UpdatedAt:   m.UpdatedAt,
	}
}
