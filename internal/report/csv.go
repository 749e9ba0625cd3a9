package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
)

var ledgerCSVHeader = []string{"date", "transaction_id", "description", "type", "debit", "credit", "qty", "balance"}

// WriteAccountLedgerCSV writes one row per running row, preceded by the
// opening balance and followed by a totals row. Amounts are plain decimals.
func WriteAccountLedgerCSV(w io.Writer, l *domain.AccountLedger, opts Options) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		ledgerCSVHeader,
		{opts.day(l.StartDate), "", "previous balance", "", "", "", "", l.PreviousBalance.String()},
	}
	for _, row := range l.Rows {
		txn := row.Transaction
		qty := ""
		if txn.Qty != nil {
			qty = txn.Qty.String()
		}
		records = append(records, []string{
			opts.day(txn.TransactionDate),
			txn.TransactionID,
			txn.Description,
			string(txn.TransactionType),
			txn.Debit.String(),
			txn.Credit.String(),
			qty,
			row.RunningBalance.String(),
		})
	}
	records = append(records, []string{
		opts.day(l.EndDate), "", "total", "",
		l.Totals.TotalDebit.String(),
		l.Totals.TotalCredit.String(),
		l.Totals.TotalQty.String(),
		l.Totals.FinalBalance.String(),
	})

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write ledger csv: %w", err)
	}
	return nil
}
