package accounting

import (
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssembleDayLedger splits one day's transactions into received (debit > 0) and
// paid (credit > 0) tables that share a single running balance seeded with previous.
//
// With OrderReceivedFirst every received row is folded before any paid row, each
// table keeping input order. With OrderChronological rows are folded in
// transaction date order and interleave across the two tables. A received row
// adds its debit and a paid row subtracts its credit, so a record carrying both
// sides shows up in both tables without being counted twice.
func AssembleDayLedger(day time.Time, previous decimal.Decimal, dayTxns []domain.Transaction, order domain.AccumulationOrder) domain.DayLedger {
	ledger := domain.DayLedger{
		Date:            day,
		Order:           order,
		PreviousBalance: previous,
		ReceivedRows:    []domain.RunningLedgerRow{},
		PaidRows:        []domain.RunningLedgerRow{},
		ReceivedTotals:  domain.TableTotals{Amount: decimal.Zero, Qty: decimal.Zero},
		PaidTotals:      domain.TableTotals{Amount: decimal.Zero, Qty: decimal.Zero},
	}

	running := previous
	receive := func(txn domain.Transaction) {
		running = running.Add(txn.Debit)
		ledger.ReceivedRows = append(ledger.ReceivedRows, domain.RunningLedgerRow{Transaction: txn, RunningBalance: running})
		ledger.ReceivedTotals.Amount = ledger.ReceivedTotals.Amount.Add(txn.Debit)
		ledger.ReceivedTotals.Qty = ledger.ReceivedTotals.Qty.Add(txn.QtyOrZero())
	}
	pay := func(txn domain.Transaction) {
		running = running.Sub(txn.Credit)
		ledger.PaidRows = append(ledger.PaidRows, domain.RunningLedgerRow{Transaction: txn, RunningBalance: running})
		ledger.PaidTotals.Amount = ledger.PaidTotals.Amount.Add(txn.Credit)
		ledger.PaidTotals.Qty = ledger.PaidTotals.Qty.Add(txn.QtyOrZero())
	}

	switch order {
	case domain.OrderChronological:
		for _, txn := range SortChronologically(dayTxns) {
			if txn.Debit.IsPositive() {
				receive(txn)
			}
			if txn.Credit.IsPositive() {
				pay(txn)
			}
		}
	default:
		ledger.Order = domain.OrderReceivedFirst
		for _, txn := range dayTxns {
			if txn.Debit.IsPositive() {
				receive(txn)
			}
		}
		for _, txn := range dayTxns {
			if txn.Credit.IsPositive() {
				pay(txn)
			}
		}
	}

	ledger.GrandBalance = running
	return ledger
}
