package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFilter_NumbersPlaceholders(t *testing.T) {
	account := "p1"
	status := domain.StatusCompleted
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	b := transactionFilter(domain.TransactionFilter{AccountID: &account, Status: &status, Start: &start, End: &end})
	b.add("(t.transaction_date, t.transaction_id) < (?, ?)", end, "t9")
	limit := b.placeholder(21)

	assert.Equal(t,
		" WHERE t.account_id = $1 AND t.status = $2 AND t.transaction_date >= $3 AND t.transaction_date < $4"+
			" AND (t.transaction_date, t.transaction_id) < ($5, $6)",
		b.where())
	assert.Equal(t, "$7", limit)
	assert.Equal(t, []any{"p1", "completed", start, end, end, "t9", 21}, b.args)
}

func TestTransactionFilter_Empty(t *testing.T) {
	b := transactionFilter(domain.TransactionFilter{})
	assert.Empty(t, b.where())
	assert.Empty(t, b.args)
}
