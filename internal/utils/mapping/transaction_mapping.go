package mapping

import (
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	v := n.Decimal
	return &v
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:         d.TransactionID,
		AccountID:             d.AccountID,
		AccountName:           d.AccountName,
		TransactionType:       string(d.TransactionType),
		Amount:                d.Amount,
		Debit:                 d.Debit,
		Credit:                d.Credit,
		TransactionDate:       d.TransactionDate,
		Description:           d.Description,
		Status:                string(d.Status),
		ExternalTransactionID: d.ExternalTransactionID,
		Qty:                   toNullDecimal(d.Qty),
		Price:                 toNullDecimal(d.Price),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:         m.TransactionID,
		AccountID:             m.AccountID,
		AccountName:           m.AccountName,
		TransactionType:       domain.TransactionType(m.TransactionType),
		Amount:                m.Amount,
		Debit:                 m.Debit,
		Credit:                m.Credit,
		TransactionDate:       m.TransactionDate,
		Description:           m.Description,
		Status:                domain.TransactionStatus(m.Status),
		ExternalTransactionID: m.ExternalTransactionID,
		Qty:                   fromNullDecimal(m.Qty),
		Price:                 fromNullDecimal(m.Price),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelRoznamcha converts a domain RoznamchaEntry to a model RoznamchaEntry
func ToModelRoznamcha(d domain.RoznamchaEntry) models.RoznamchaEntry {
	return models.RoznamchaEntry{
		EntryID:         d.EntryID,
		Description:     d.Description,
		TransactionType: string(d.TransactionType),
		Status:          string(d.Status),
		Debit:           d.Debit,
		Credit:          d.Credit,
		EntryDate:       d.EntryDate,
		ReferenceNumber: d.ReferenceNumber,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoznamcha converts a model RoznamchaEntry to a domain RoznamchaEntry
func ToDomainRoznamcha(m models.RoznamchaEntry) domain.RoznamchaEntry {
	return domain.RoznamchaEntry{
		EntryID:         m.EntryID,
		Description:     m.Description,
		TransactionType: domain.TransactionType(m.TransactionType),
		Status:          domain.TransactionStatus(m.Status),
		Debit:           m.Debit,
		Credit:          m.Credit,
		EntryDate:       m.EntryDate,
		ReferenceNumber: m.ReferenceNumber,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoznamchaSlice converts a slice of model entries to a slice of domain entries
func ToDomainRoznamchaSlice(ms []models.RoznamchaEntry) []domain.RoznamchaEntry {
	ds := make([]domain.RoznamchaEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoznamcha(m)
	}
	return ds
}
