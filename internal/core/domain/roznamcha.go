package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoznamchaEntry is a day-book journal line. Unlike Transaction it is not bound to a party.
type RoznamchaEntry struct {
	EntryID         string            `json:"entryID"` // Primary Key (UUID)
	Description     string            `json:"description"`
	TransactionType TransactionType   `json:"transactionType"`
	Status          TransactionStatus `json:"status"`
	Debit           decimal.Decimal   `json:"debit"`
	Credit          decimal.Decimal   `json:"credit"`
	EntryDate       time.Time         `json:"entryDate"`
	ReferenceNumber string            `json:"referenceNumber"`
	AuditFields
}

// ApplyEntry sets type, debit and credit from e.
func (r *RoznamchaEntry) ApplyEntry(e Entry) {
	r.TransactionType = e.Type
	r.Debit = e.Debit()
	r.Credit = e.Credit()
}

// Amount is whichever side of the entry is set.
func (r RoznamchaEntry) Amount() decimal.Decimal {
	if r.TransactionType == ExpenseVoucher {
		return r.Credit
	}
	return r.Debit
}

// RoznamchaFilter selects day-book entries. Start is inclusive and End exclusive.
type RoznamchaFilter struct {
	Description     *string
	TransactionType *TransactionType
	Status          *TransactionStatus
	Start           *time.Time
	End             *time.Time
}
