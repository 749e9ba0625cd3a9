package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a transaction as money received from or paid to a party.
// It is the single source of truth for the debit/credit pair.
type TransactionType string

const (
	CashReceived   TransactionType = "cashReceived"
	ExpenseVoucher TransactionType = "expenseVoucher"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == CashReceived || t == ExpenseVoucher
}

// TransactionStatus is descriptive only; it does not participate in balance math.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Entry is a tagged amount: Received(amount) or Paid(amount).
// Debit and credit are derived from it and can never both be non-zero.
type Entry struct {
	Type   TransactionType
	Amount decimal.Decimal
}

// NewEntry validates the pair and returns the entry.
func NewEntry(t TransactionType, amount decimal.Decimal) (Entry, error) {
	if !t.IsValid() {
		return Entry{}, fmt.Errorf("unknown transaction type %q", t)
	}
	if !amount.IsPositive() {
		return Entry{}, fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	return Entry{Type: t, Amount: amount}, nil
}

// Received is an entry that increases the balance.
func Received(amount decimal.Decimal) Entry {
	return Entry{Type: CashReceived, Amount: amount}
}

// Paid is an entry that decreases the balance.
func Paid(amount decimal.Decimal) Entry {
	return Entry{Type: ExpenseVoucher, Amount: amount}
}

// Debit returns the debit side of the entry.
func (e Entry) Debit() decimal.Decimal {
	if e.Type == CashReceived {
		return e.Amount
	}
	return decimal.Zero
}

// Credit returns the credit side of the entry.
func (e Entry) Credit() decimal.Decimal {
	if e.Type == ExpenseVoucher {
		return e.Amount
	}
	return decimal.Zero
}

// Transaction is a single debit or credit recorded against a party.
type Transaction struct {
	TransactionID         string            `json:"transactionID"` // Primary Key (UUID)
	AccountID             string            `json:"accountID"`     // FK -> parties.party_id
	AccountName           string            `json:"accountName"`   // Populated on reads
	TransactionType       TransactionType   `json:"transactionType"`
	Amount                decimal.Decimal   `json:"amount"`
	Debit                 decimal.Decimal   `json:"debit"`
	Credit                decimal.Decimal   `json:"credit"`
	TransactionDate       time.Time         `json:"transactionDate"`
	Description           string            `json:"description"`
	Status                TransactionStatus `json:"status"`
	ExternalTransactionID string            `json:"externalTransactionID"` // Optional external reference
	Qty                   *decimal.Decimal  `json:"qty,omitempty"`
	Price                 *decimal.Decimal  `json:"price,omitempty"`
	AuditFields
}

// ApplyEntry sets type, amount, debit and credit from e.
func (t *Transaction) ApplyEntry(e Entry) {
	t.TransactionType = e.Type
	t.Amount = e.Amount
	t.Debit = e.Debit()
	t.Credit = e.Credit()
}

// Entry returns the tagged entry of the transaction.
func (t Transaction) Entry() Entry {
	return Entry{Type: t.TransactionType, Amount: t.Amount}
}

// SignedAmount is debit minus credit.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}

// QtyOrZero returns the quantity, or zero when absent.
func (t Transaction) QtyOrZero() decimal.Decimal {
	if t.Qty == nil {
		return decimal.Zero
	}
	return *t.Qty
}

// TransactionFilter selects a subset of transactions from the store.
// Start is inclusive and End is exclusive; nil fields do not restrict.
type TransactionFilter struct {
	AccountID             *string
	TransactionType       *TransactionType
	Status                *TransactionStatus
	ExternalTransactionID *string
	Start                 *time.Time
	End                   *time.Time
}
