package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_OptionalDecimals(t *testing.T) {
	qty := decimal.NewFromInt(3)
	txn := domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "p1",
		TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Qty:             &qty,
	}
	txn.ApplyEntry(domain.Received(decimal.NewFromInt(10)))

	m := ToModelTransaction(txn)
	assert.True(t, m.Qty.Valid)
	assert.False(t, m.Price.Valid)
	assert.Equal(t, "cashReceived", m.TransactionType)

	back := ToDomainTransaction(m)
	require.NotNil(t, back.Qty)
	assert.Equal(t, "3", back.Qty.String())
	assert.Nil(t, back.Price)
	assert.Equal(t, "10", back.Debit.String())
}
