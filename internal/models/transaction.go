package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// Debit and credit are stored alongside type and amount so that aggregation never
// needs to re-derive them.
type Transaction struct {
	TransactionID         string              `db:"transaction_id"`
	AccountID             string              `db:"account_id"`
	AccountName           string              `db:"-"` // Joined from parties on reads
	TransactionType       string              `db:"transaction_type"`
	Amount                decimal.Decimal     `db:"amount"`
	Debit                 decimal.Decimal     `db:"debit"`
	Credit                decimal.Decimal     `db:"credit"`
	TransactionDate       time.Time           `db:"transaction_date"`
	Description           string              `db:"description"`
	Status                string              `db:"status"`
	ExternalTransactionID string              `db:"external_transaction_id"`
	Qty                   decimal.NullDecimal `db:"qty"`
	Price                 decimal.NullDecimal `db:"price"`
	AuditFields
}
