package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoznamchaEntry is a row of the roznamcha table.
type RoznamchaEntry struct {
	EntryID         string          `db:"entry_id"`
	Description     string          `db:"description"`
	TransactionType string          `db:"transaction_type"`
	Status          string          `db:"status"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	EntryDate       time.Time       `db:"entry_date"`
	ReferenceNumber string          `db:"reference_number"`
	AuditFields
}
