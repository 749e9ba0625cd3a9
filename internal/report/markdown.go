// Package report renders ledgers as Markdown, CSV and printable HTML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/utils/format"
	"github.com/shopspring/decimal"
)

// Options control localisation of a rendered report.
type Options struct {
	Lang     format.Lang
	Location *time.Location
}

func (o Options) loc() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o Options) day(t time.Time) string {
	return t.In(o.loc()).Format(time.DateOnly)
}

func (o Options) amount(d decimal.Decimal) string {
	return format.FormatAmount(d, o.Lang)
}

// side renders a debit or credit cell, blank when zero.
func (o Options) side(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return o.amount(d)
}

type table struct {
	header []string
	right  []bool
	rows   [][]string
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

func (t table) write(b *strings.Builder) {
	b.WriteString("|")
	for _, h := range t.header {
		b.WriteString(" " + cell(h) + " |")
	}
	b.WriteString("\n|")
	for i := range t.header {
		if i < len(t.right) && t.right[i] {
			b.WriteString("---:|")
		} else {
			b.WriteString("---|")
		}
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		b.WriteString("|")
		for _, c := range row {
			b.WriteString(" " + cell(c) + " |")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func bold(s string) string {
	if s == "" {
		return s
	}
	return "**" + s + "**"
}

// AccountLedgerMarkdown renders a party ledger with its opening balance,
// running balance column and totals row.
func AccountLedgerMarkdown(l *domain.AccountLedger, opts Options) string {
	lb := labelsFor(opts.Lang)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n\n", lb.LedgerTitle, l.Party.Name)
	fmt.Fprintf(&b, "%s %s %s %s\n\n", lb.From, opts.day(l.StartDate), lb.To, opts.day(l.EndDate))
	fmt.Fprintf(&b, "%s: %s\n\n", bold(lb.PreviousBalance), opts.amount(l.PreviousBalance))

	t := table{
		header: []string{lb.Date, lb.Description, lb.Debit, lb.Credit, lb.Qty, lb.Balance},
		right:  []bool{false, false, true, true, true, true},
	}
	for _, row := range l.Rows {
		txn := row.Transaction
		qty := ""
		if txn.Qty != nil {
			qty = txn.Qty.String()
		}
		t.rows = append(t.rows, []string{
			opts.day(txn.TransactionDate),
			txn.Description,
			opts.side(txn.Debit),
			opts.side(txn.Credit),
			qty,
			opts.amount(row.RunningBalance),
		})
	}
	t.rows = append(t.rows, []string{
		bold(lb.Total), "",
		bold(opts.amount(l.Totals.TotalDebit)),
		bold(opts.amount(l.Totals.TotalCredit)),
		bold(l.Totals.TotalQty.String()),
		bold(opts.amount(l.Totals.FinalBalance)),
	})
	t.write(&b)
	return b.String()
}

func dayTable(lb labels, opts Options, rows []domain.RunningLedgerRow, received bool, totals domain.TableTotals) table {
	t := table{
		header: []string{lb.Party, lb.Description, lb.Amount, lb.Qty, lb.Balance},
		right:  []bool{false, false, true, true, true},
	}
	for _, row := range rows {
		txn := row.Transaction
		amount := txn.Credit
		if received {
			amount = txn.Debit
		}
		qty := ""
		if txn.Qty != nil {
			qty = txn.Qty.String()
		}
		t.rows = append(t.rows, []string{
			txn.AccountName,
			txn.Description,
			opts.amount(amount),
			qty,
			opts.amount(row.RunningBalance),
		})
	}
	t.rows = append(t.rows, []string{
		bold(lb.Total), "", bold(opts.amount(totals.Amount)), bold(totals.Qty.String()), "",
	})
	return t
}

// CashBookMarkdown renders the received and paid tables of one day.
func CashBookMarkdown(l *domain.DayLedger, opts Options) string {
	lb := labelsFor(opts.Lang)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", lb.CashBookTitle, opts.day(l.Date))
	fmt.Fprintf(&b, "%s: %s\n\n", bold(lb.PreviousBalance), opts.amount(l.PreviousBalance))

	fmt.Fprintf(&b, "## %s\n\n", lb.Received)
	dayTable(lb, opts, l.ReceivedRows, true, l.ReceivedTotals).write(&b)

	fmt.Fprintf(&b, "## %s\n\n", lb.Paid)
	dayTable(lb, opts, l.PaidRows, false, l.PaidTotals).write(&b)

	fmt.Fprintf(&b, "%s: %s\n", bold(lb.Balance), opts.amount(l.GrandBalance))
	return b.String()
}

func partyTable(lb labels, opts Options, rows []domain.PartyBalanceRow, total *decimal.Decimal) table {
	t := table{
		header: []string{lb.Party, lb.Debit, lb.Credit, lb.Balance},
		right:  []bool{false, true, true, true},
	}
	for _, row := range rows {
		t.rows = append(t.rows, []string{
			row.Name,
			opts.amount(row.TotalDebit),
			opts.amount(row.TotalCredit),
			opts.amount(row.Balance),
		})
	}
	if total != nil {
		t.rows = append(t.rows, []string{bold(lb.Total), "", "", bold(opts.amount(*total))})
	}
	return t
}

// PartySummaryMarkdown renders the payable, receivable and settled tables.
func PartySummaryMarkdown(s *domain.PartySummary, opts Options) string {
	lb := labelsFor(opts.Lang)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", lb.PartiesTitle)

	fmt.Fprintf(&b, "## %s\n\n", lb.Payable)
	partyTable(lb, opts, s.Payable, &s.TotalPayable).write(&b)

	fmt.Fprintf(&b, "## %s\n\n", lb.Receivable)
	partyTable(lb, opts, s.Receivable, &s.TotalReceivable).write(&b)

	fmt.Fprintf(&b, "## %s\n\n", lb.Settled)
	if len(s.Settled) == 0 {
		b.WriteString(lb.NoEntries + "\n")
		return b.String()
	}
	for _, row := range s.Settled {
		fmt.Fprintf(&b, "- %s\n", cell(row.Name))
	}
	return b.String()
}
