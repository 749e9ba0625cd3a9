package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runningBalances(rows []domain.RunningLedgerRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.RunningBalance.String()
	}
	return out
}

func TestAssembleDayLedger_ScenarioE(t *testing.T) {
	day := StartOfDay(day1, time.UTC)
	txns := []domain.Transaction{
		txn("paid", "a", day.Add(9*time.Hour), "0", "20"),
		txn("received", "b", day.Add(10*time.Hour), "50", "0"),
	}

	ledger := AssembleDayLedger(day, dec("10"), txns, domain.OrderReceivedFirst)

	require.Len(t, ledger.ReceivedRows, 1)
	require.Len(t, ledger.PaidRows, 1)
	assert.Equal(t, []string{"60"}, runningBalances(ledger.ReceivedRows))
	assert.Equal(t, []string{"40"}, runningBalances(ledger.PaidRows))
	assert.Equal(t, "40", ledger.GrandBalance.String())
	assert.Equal(t, "50", ledger.ReceivedTotals.Amount.String())
	assert.Equal(t, "20", ledger.PaidTotals.Amount.String())
	assert.Equal(t, "10", ledger.PreviousBalance.String())
}

func TestAssembleDayLedger_Chronological(t *testing.T) {
	day := StartOfDay(day1, time.UTC)
	txns := []domain.Transaction{
		txn("r2", "a", day.Add(12*time.Hour), "50", "0"),
		txn("p1", "a", day.Add(9*time.Hour), "0", "20"),
		txn("r1", "b", day.Add(8*time.Hour), "5", "0"),
	}

	ledger := AssembleDayLedger(day, dec("10"), txns, domain.OrderChronological)

	// 10 +5 (r1) = 15, -20 (p1) = -5, +50 (r2) = 45
	assert.Equal(t, []string{"15", "45"}, runningBalances(ledger.ReceivedRows))
	assert.Equal(t, []string{"-5"}, runningBalances(ledger.PaidRows))
	assert.Equal(t, "r1", ledger.ReceivedRows[0].Transaction.TransactionID)
	assert.Equal(t, "45", ledger.GrandBalance.String())
	assert.Equal(t, domain.OrderChronological, ledger.Order)
}

func TestAssembleDayLedger_GrandBalanceIndependentOfOrder(t *testing.T) {
	day := StartOfDay(day1, time.UTC)
	txns := []domain.Transaction{
		txn("1", "a", day.Add(1*time.Hour), "0", "17.5"),
		txn("2", "a", day.Add(2*time.Hour), "40", "0"),
		txn("3", "b", day.Add(3*time.Hour), "0", "2.25"),
		txn("4", "c", day.Add(4*time.Hour), "9", "0"),
	}
	previous := dec("100")

	receivedFirst := AssembleDayLedger(day, previous, txns, domain.OrderReceivedFirst)
	chronological := AssembleDayLedger(day, previous, txns, domain.OrderChronological)

	totals := SumTotals(txns)
	expected := previous.Add(totals.Balance())
	assert.True(t, expected.Equal(receivedFirst.GrandBalance))
	assert.True(t, expected.Equal(chronological.GrandBalance))
}

func TestAssembleDayLedger_BothSidesSetCountedOnce(t *testing.T) {
	day := StartOfDay(day1, time.UTC)
	both := txn("both", "a", day.Add(time.Hour), "30", "10")

	ledger := AssembleDayLedger(day, decimal.Zero, []domain.Transaction{both}, domain.OrderReceivedFirst)

	require.Len(t, ledger.ReceivedRows, 1)
	require.Len(t, ledger.PaidRows, 1)
	assert.Equal(t, "30", ledger.ReceivedRows[0].RunningBalance.String())
	assert.Equal(t, "20", ledger.PaidRows[0].RunningBalance.String())
	assert.Equal(t, "20", ledger.GrandBalance.String())
}

func TestAssembleDayLedger_EmptyDay(t *testing.T) {
	ledger := AssembleDayLedger(day1, dec("7"), nil, "")

	assert.Empty(t, ledger.ReceivedRows)
	assert.Empty(t, ledger.PaidRows)
	assert.Equal(t, "7", ledger.GrandBalance.String())
	assert.Equal(t, domain.OrderReceivedFirst, ledger.Order)
}

func TestDayRangeAndValidateRange(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)
	at := time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC) // 01:30 on Mar 2 in PKT

	start, end := DayRange(at, karachi)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, karachi), start)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, karachi), end)

	assert.NoError(t, ValidateRange(at, at, karachi))
	assert.NoError(t, ValidateRange(at, at.Add(48*time.Hour), karachi))
	assert.ErrorIs(t, ValidateRange(at, at.Add(-48*time.Hour), karachi), apperrors.ErrInvalidRange)
}

func TestParseDay(t *testing.T) {
	pkt := time.FixedZone("PKT", 5*60*60)

	got, err := ParseDay("2024-03-02", pkt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, pkt), got)

	got, err = ParseDay("2024-03-01T20:30:00Z", pkt)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 2, 0, 0, 0, 0, pkt).Equal(got))

	_, err = ParseDay("02/03/2024", pkt)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
