package accounting

import (
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClassifyBalance maps a balance sign to a party status.
// Negative is receivable, positive is payable and exactly zero is settled.
func ClassifyBalance(balance decimal.Decimal) domain.PartyStatus {
	switch balance.Sign() {
	case -1:
		return domain.StatusReceivable
	case 1:
		return domain.StatusPayable
	default:
		return domain.StatusSettled
	}
}

// FilterExcludedParties drops parties whose name exactly matches one of excluded.
func FilterExcludedParties(parties []domain.Party, excluded []string) []domain.Party {
	if len(excluded) == 0 {
		return parties
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}
	kept := make([]domain.Party, 0, len(parties))
	for _, p := range parties {
		if _, ok := skip[p.Name]; ok {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// SummarizeParties builds one row per party, in party order, from per-account totals.
// Parties without totals appear settled with zero figures. Totals for accounts that
// are not in parties (including excluded ones) are ignored.
func SummarizeParties(parties []domain.Party, totals map[string]domain.BalanceTotals, excluded []string) []domain.PartyBalanceRow {
	parties = FilterExcludedParties(parties, excluded)
	rows := make([]domain.PartyBalanceRow, 0, len(parties))
	for _, p := range parties {
		t, ok := totals[p.PartyID]
		if !ok {
			t = domain.BalanceTotals{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
		}
		balance := t.Balance()
		rows = append(rows, domain.PartyBalanceRow{
			PartyID:     p.PartyID,
			Name:        p.Name,
			TotalDebit:  t.TotalDebit,
			TotalCredit: t.TotalCredit,
			Balance:     balance,
			Status:      ClassifyBalance(balance),
		})
	}
	return rows
}

// PartitionPartyBalances splits rows by status, keeping their relative order.
// Each list total is the sum of that list's balances.
func PartitionPartyBalances(rows []domain.PartyBalanceRow) domain.PartySummary {
	summary := domain.PartySummary{
		Payable:         []domain.PartyBalanceRow{},
		Receivable:      []domain.PartyBalanceRow{},
		Settled:         []domain.PartyBalanceRow{},
		TotalPayable:    decimal.Zero,
		TotalReceivable: decimal.Zero,
	}
	for _, row := range rows {
		switch row.Status {
		case domain.StatusPayable:
			summary.Payable = append(summary.Payable, row)
			summary.TotalPayable = summary.TotalPayable.Add(row.Balance)
		case domain.StatusReceivable:
			summary.Receivable = append(summary.Receivable, row)
			summary.TotalReceivable = summary.TotalReceivable.Add(row.Balance)
		default:
			summary.Settled = append(summary.Settled, row)
		}
	}
	return summary
}
