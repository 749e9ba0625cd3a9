package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTotals are the debit and credit sums over some transaction subset.
type BalanceTotals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// Balance is TotalDebit - TotalCredit.
func (b BalanceTotals) Balance() decimal.Decimal {
	return b.TotalDebit.Sub(b.TotalCredit)
}

// RunningLedgerRow pairs a transaction with the balance after it.
type RunningLedgerRow struct {
	Transaction    Transaction     `json:"transaction"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerTotals are footer figures of a folded ledger.
type LedgerTotals struct {
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalQty     decimal.Decimal `json:"totalQty"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
}

// RunningLedger is the result of folding a transaction sequence.
type RunningLedger struct {
	StartingBalance decimal.Decimal    `json:"startingBalance"`
	Rows            []RunningLedgerRow `json:"rows"`
	Totals          LedgerTotals       `json:"totals"`
}

// PartyStatus is derived from the sign of a party's balance.
type PartyStatus string

const (
	StatusPayable    PartyStatus = "payable"
	StatusReceivable PartyStatus = "receivable"
	StatusSettled    PartyStatus = "settled"
)

// PartyBalanceRow is a party with its all-time totals and classification.
type PartyBalanceRow struct {
	PartyID     string          `json:"partyID"`
	Name        string          `json:"name"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
	Status      PartyStatus     `json:"status"`
}

// PartySummary partitions party rows for the two display tables.
type PartySummary struct {
	Payable         []PartyBalanceRow `json:"payable"`
	Receivable      []PartyBalanceRow `json:"receivable"`
	Settled         []PartyBalanceRow `json:"settled"`
	TotalPayable    decimal.Decimal   `json:"totalPayable"`
	TotalReceivable decimal.Decimal   `json:"totalReceivable"`
}

// AccumulationOrder controls how the day ledger feeds its shared running balance.
type AccumulationOrder string

const (
	// OrderReceivedFirst folds every received row, then every paid row.
	OrderReceivedFirst AccumulationOrder = "received-first"
	// OrderChronological folds rows by transaction date, interleaving both tables.
	OrderChronological AccumulationOrder = "chronological"
)

// ParseAccumulationOrder parses s; empty selects OrderReceivedFirst.
func ParseAccumulationOrder(s string) (AccumulationOrder, error) {
	switch AccumulationOrder(s) {
	case "", OrderReceivedFirst:
		return OrderReceivedFirst, nil
	case OrderChronological:
		return OrderChronological, nil
	}
	return "", fmt.Errorf("unknown accumulation order %q", s)
}

// TableTotals are the footer of one day ledger table.
type TableTotals struct {
	Amount decimal.Decimal `json:"amount"`
	Qty    decimal.Decimal `json:"qty"`
}

// DayLedger is the cash book view of a single calendar day.
type DayLedger struct {
	Date            time.Time          `json:"date"`
	Order           AccumulationOrder  `json:"order"`
	PreviousBalance decimal.Decimal    `json:"previousBalance"`
	ReceivedRows    []RunningLedgerRow `json:"receivedRows"`
	PaidRows        []RunningLedgerRow `json:"paidRows"`
	ReceivedTotals  TableTotals        `json:"receivedTotals"`
	PaidTotals      TableTotals        `json:"paidTotals"`
	GrandBalance    decimal.Decimal    `json:"grandBalance"`
}

// AccountLedger is one party's ledger over a date range.
type AccountLedger struct {
	Party           Party              `json:"party"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         time.Time          `json:"endDate"`
	PreviousBalance decimal.Decimal    `json:"previousBalance"`
	Transactions    []Transaction      `json:"transactions"`
	Rows            []RunningLedgerRow `json:"rows"`
	Totals          LedgerTotals       `json:"totals"`
}
