package dto

import (
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction against a party.
type CreateTransactionRequest struct {
	AccountID             string                    `json:"accountID" binding:"required"`
	TransactionType       domain.TransactionType    `json:"transactionType" binding:"required,transaction_type"`
	Amount                decimal.Decimal           `json:"amount" binding:"required,gt=0"`
	TransactionDate       *time.Time                `json:"transactionDate"` // Defaults to now
	Description           string                    `json:"description"`
	Status                *domain.TransactionStatus `json:"status" binding:"omitempty,transaction_status"` // Defaults to pending
	ExternalTransactionID string                    `json:"transactionId"`
	Qty                   *decimal.Decimal          `json:"qty"`
	Price                 *decimal.Decimal          `json:"price"`
}

// UpdateTransactionRequest defines the fields allowed for a partial update.
// Debit and credit are never accepted directly; they follow type and amount.
type UpdateTransactionRequest struct {
	AccountID             *string                   `json:"accountID" binding:"omitempty,min=1"`
	TransactionType       *domain.TransactionType   `json:"transactionType" binding:"omitempty,transaction_type"`
	Amount                *decimal.Decimal          `json:"amount" binding:"omitempty,gt=0"`
	TransactionDate       *time.Time                `json:"transactionDate"`
	Description           *string                   `json:"description"`
	Status                *domain.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	ExternalTransactionID *string                   `json:"transactionId"`
	Qty                   *decimal.Decimal          `json:"qty"`
	Price                 *decimal.Decimal          `json:"price"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Dates are YYYY-MM-DD in the ledger timezone; EndDate includes the whole day.
type ListTransactionsParams struct {
	AccountID             string `form:"accountId"`
	TransactionType       string `form:"transactionType"`
	Status                string `form:"status"`
	ExternalTransactionID string `form:"transactionId"`
	StartDate             string `form:"startDate"`
	EndDate               string `form:"endDate"`
	Limit                 int    `form:"limit,default=20"`
	NextToken             string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID         string                   `json:"transactionID"`
	AccountID             string                   `json:"accountID"`
	AccountName           string                   `json:"accountName,omitempty"`
	TransactionType       domain.TransactionType   `json:"transactionType"`
	Amount                decimal.Decimal          `json:"amount"`
	Debit                 decimal.Decimal          `json:"debit"`
	Credit                decimal.Decimal          `json:"credit"`
	TransactionDate       time.Time                `json:"transactionDate"`
	Description           string                   `json:"description"`
	Status                domain.TransactionStatus `json:"status"`
	ExternalTransactionID string                   `json:"transactionId,omitempty"`
	Qty                   *decimal.Decimal         `json:"qty,omitempty"`
	Price                 *decimal.Decimal         `json:"price,omitempty"`
	CreatedAt             time.Time                `json:"createdAt"`
	CreatedBy             string                   `json:"createdBy"`
	LastUpdatedAt         time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy         string                   `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:         txn.TransactionID,
		AccountID:             txn.AccountID,
		AccountName:           txn.AccountName,
		TransactionType:       txn.TransactionType,
		Amount:                txn.Amount,
		Debit:                 txn.Debit,
		Credit:                txn.Credit,
		TransactionDate:       txn.TransactionDate,
		Description:           txn.Description,
		Status:                txn.Status,
		ExternalTransactionID: txn.ExternalTransactionID,
		Qty:                   txn.Qty,
		Price:                 txn.Price,
		CreatedAt:             txn.CreatedAt,
		CreatedBy:             txn.CreatedBy,
		LastUpdatedAt:         txn.LastUpdatedAt,
		LastUpdatedBy:         txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
