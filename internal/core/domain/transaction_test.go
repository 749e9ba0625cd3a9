package domain_test

import (
	"testing"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name       string
		txType     domain.TransactionType
		amount     decimal.Decimal
		wantErr    bool
		wantDebit  string
		wantCredit string
	}{
		{name: "cash received is a debit", txType: domain.CashReceived, amount: decimal.NewFromInt(100), wantDebit: "100", wantCredit: "0"},
		{name: "expense voucher is a credit", txType: domain.ExpenseVoucher, amount: decimal.RequireFromString("40.25"), wantDebit: "0", wantCredit: "40.25"},
		{name: "unknown type", txType: "transfer", amount: decimal.NewFromInt(1), wantErr: true},
		{name: "zero amount", txType: domain.CashReceived, amount: decimal.Zero, wantErr: true},
		{name: "negative amount", txType: domain.ExpenseVoucher, amount: decimal.NewFromInt(-5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := domain.NewEntry(tt.txType, tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebit, entry.Debit().String())
			assert.Equal(t, tt.wantCredit, entry.Credit().String())
		})
	}
}

func TestTransaction_ApplyEntry(t *testing.T) {
	txn := domain.Transaction{}
	txn.ApplyEntry(domain.Received(decimal.NewFromInt(70)))
	assert.Equal(t, domain.CashReceived, txn.TransactionType)
	assert.True(t, txn.Debit.Equal(decimal.NewFromInt(70)))
	assert.True(t, txn.Credit.IsZero())

	// Switching the type moves the amount to the other side and clears the first.
	txn.ApplyEntry(domain.Paid(decimal.NewFromInt(70)))
	assert.True(t, txn.Debit.IsZero())
	assert.True(t, txn.Credit.Equal(decimal.NewFromInt(70)))
	assert.True(t, txn.SignedAmount().Equal(decimal.NewFromInt(-70)))
}

func TestRole_HasRight(t *testing.T) {
	assert.True(t, domain.RoleUser.HasRight(domain.RightGetLedger))
	assert.False(t, domain.RoleUser.HasRight(domain.RightManageTransactions))
	assert.True(t, domain.RoleAdmin.HasRight(domain.RightManageUsers))
	assert.True(t, domain.RoleAdmin.HasRight(domain.RightDownloadBackup))
	assert.False(t, domain.RoleUser.HasRight(domain.RightDownloadBackup))
	assert.False(t, domain.Role("guest").HasRight(domain.RightGetLedger))
}

func TestParseAccumulationOrder(t *testing.T) {
	order, err := domain.ParseAccumulationOrder("")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderReceivedFirst, order)

	order, err = domain.ParseAccumulationOrder("chronological")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderChronological, order)

	_, err = domain.ParseAccumulationOrder("random")
	assert.Error(t, err)
}
