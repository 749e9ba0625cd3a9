package accounting

import (
	"sort"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumTotals adds up debit and credit over txns.
func SumTotals(txns []domain.Transaction) domain.BalanceTotals {
	totals := domain.BalanceTotals{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, txn := range txns {
		totals.TotalDebit = totals.TotalDebit.Add(txn.Debit)
		totals.TotalCredit = totals.TotalCredit.Add(txn.Credit)
	}
	return totals
}

// ComputeRunningBalances folds txns left to right starting from startingBalance.
// Rows come back in input order; callers sort first if they need date order.
func ComputeRunningBalances(txns []domain.Transaction, startingBalance decimal.Decimal) domain.RunningLedger {
	ledger := domain.RunningLedger{
		StartingBalance: startingBalance,
		Rows:            make([]domain.RunningLedgerRow, 0, len(txns)),
		Totals: domain.LedgerTotals{
			TotalDebit:   decimal.Zero,
			TotalCredit:  decimal.Zero,
			TotalQty:     decimal.Zero,
			FinalBalance: startingBalance,
		},
	}

	running := startingBalance
	for _, txn := range txns {
		running = running.Add(txn.Debit).Sub(txn.Credit)
		ledger.Rows = append(ledger.Rows, domain.RunningLedgerRow{Transaction: txn, RunningBalance: running})
		ledger.Totals.TotalDebit = ledger.Totals.TotalDebit.Add(txn.Debit)
		ledger.Totals.TotalCredit = ledger.Totals.TotalCredit.Add(txn.Credit)
		ledger.Totals.TotalQty = ledger.Totals.TotalQty.Add(txn.QtyOrZero())
	}
	ledger.Totals.FinalBalance = running
	return ledger
}

// SortChronologically returns a copy of txns stably sorted by TransactionDate.
// Entries on the same instant keep their input (store) order.
func SortChronologically(txns []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TransactionDate.Before(sorted[j].TransactionDate)
	})
	return sorted
}
