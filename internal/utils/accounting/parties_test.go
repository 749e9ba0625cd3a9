package accounting

import (
	"testing"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		balance string
		want    domain.PartyStatus
	}{
		{"-0.01", domain.StatusReceivable},
		{"-500", domain.StatusReceivable},
		{"0", domain.StatusSettled},
		{"0.00", domain.StatusSettled},
		{"0.01", domain.StatusPayable},
		{"200", domain.StatusPayable},
	}
	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBalance(dec(tt.balance)))
		})
	}
}

func TestSummarizeParties(t *testing.T) {
	parties := []domain.Party{
		{PartyID: "p1", Name: "Ahmed Traders"},
		{PartyID: "p2", Name: "Bilal & Sons"},
		{PartyID: "p3", Name: "Account"},
		{PartyID: "p4", Name: "Cash Counter"},
	}
	totals := map[string]domain.BalanceTotals{
		"p1": {TotalDebit: dec("500"), TotalCredit: dec("500")},
		"p2": {TotalDebit: dec("200"), TotalCredit: decimal.Zero},
		"p3": {TotalDebit: dec("1000"), TotalCredit: decimal.Zero},
		"gone": {TotalDebit: dec("1"), TotalCredit: decimal.Zero},
	}

	rows := SummarizeParties(parties, totals, []string{"Account"})

	require.Len(t, rows, 3)

	// Scenario C: equal debit and credit is settled.
	assert.Equal(t, "p1", rows[0].PartyID)
	assert.True(t, rows[0].Balance.IsZero())
	assert.Equal(t, domain.StatusSettled, rows[0].Status)

	// Scenario D: debit only is payable.
	assert.Equal(t, "p2", rows[1].PartyID)
	assert.Equal(t, "200", rows[1].Balance.String())
	assert.Equal(t, domain.StatusPayable, rows[1].Status)

	// No transactions: zero and settled.
	assert.Equal(t, "p4", rows[2].PartyID)
	assert.True(t, rows[2].TotalDebit.IsZero())
	assert.True(t, rows[2].TotalCredit.IsZero())
	assert.Equal(t, domain.StatusSettled, rows[2].Status)

	for _, row := range rows {
		assert.NotEqual(t, "Account", row.Name)
	}
}

func TestSummarizeParties_NoExclusions(t *testing.T) {
	parties := []domain.Party{{PartyID: "p3", Name: "Account"}}
	rows := SummarizeParties(parties, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Account", rows[0].Name)
}

func TestPartitionPartyBalances(t *testing.T) {
	rows := []domain.PartyBalanceRow{
		{PartyID: "a", Balance: dec("120"), Status: domain.StatusPayable},
		{PartyID: "b", Balance: dec("-30"), Status: domain.StatusReceivable},
		{PartyID: "c", Balance: decimal.Zero, Status: domain.StatusSettled},
		{PartyID: "d", Balance: dec("80"), Status: domain.StatusPayable},
		{PartyID: "e", Balance: dec("-70.5"), Status: domain.StatusReceivable},
	}

	summary := PartitionPartyBalances(rows)

	require.Len(t, summary.Payable, 2)
	require.Len(t, summary.Receivable, 2)
	require.Len(t, summary.Settled, 1)
	assert.Equal(t, "a", summary.Payable[0].PartyID)
	assert.Equal(t, "d", summary.Payable[1].PartyID)
	assert.Equal(t, "200", summary.TotalPayable.String())
	assert.Equal(t, "-100.5", summary.TotalReceivable.String())
}

func TestPartitionPartyBalances_Empty(t *testing.T) {
	summary := PartitionPartyBalances(nil)
	assert.NotNil(t, summary.Payable)
	assert.NotNil(t, summary.Receivable)
	assert.True(t, summary.TotalPayable.IsZero())
	assert.True(t, summary.TotalReceivable.IsZero())
}
