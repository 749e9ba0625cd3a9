package dto

import (
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoznamchaRequest defines the data needed to record a day-book entry.
type CreateRoznamchaRequest struct {
	Description     string                    `json:"description" binding:"required"`
	TransactionType domain.TransactionType    `json:"transactionType" binding:"required,transaction_type"`
	Amount          decimal.Decimal           `json:"amount" binding:"required,gt=0"`
	EntryDate       *time.Time                `json:"entryDate"`
	Status          *domain.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	ReferenceNumber string                    `json:"referenceNumber"`
}

// UpdateRoznamchaRequest defines the fields allowed for a partial update of a day-book entry.
type UpdateRoznamchaRequest struct {
	Description     *string                   `json:"description" binding:"omitempty,min=1"`
	TransactionType *domain.TransactionType   `json:"transactionType" binding:"omitempty,transaction_type"`
	Amount          *decimal.Decimal          `json:"amount" binding:"omitempty,gt=0"`
	EntryDate       *time.Time                `json:"entryDate"`
	Status          *domain.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	ReferenceNumber *string                   `json:"referenceNumber"`
}

// ListRoznamchaParams defines query parameters for listing day-book entries.
type ListRoznamchaParams struct {
	Date            string `form:"date"` // YYYY-MM-DD, restricts to that day
	Description     string `form:"description"`
	TransactionType string `form:"transactionType"`
	Status          string `form:"status"`
	Limit           int    `form:"limit,default=50"`
	NextToken       string `form:"nextToken"`
}

// RoznamchaResponse defines the data returned for a day-book entry.
type RoznamchaResponse struct {
	EntryID         string                   `json:"entryID"`
	Description     string                   `json:"description"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	Status          domain.TransactionStatus `json:"status"`
	Debit           decimal.Decimal          `json:"debit"`
	Credit          decimal.Decimal          `json:"credit"`
	EntryDate       time.Time                `json:"entryDate"`
	ReferenceNumber string                   `json:"referenceNumber"`
	CreatedAt       time.Time                `json:"createdAt"`
	CreatedBy       string                   `json:"createdBy"`
}

// ListRoznamchaResponse wraps one page of day-book entries.
type ListRoznamchaResponse struct {
	Entries   []RoznamchaResponse `json:"entries"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToRoznamchaResponse converts a domain.RoznamchaEntry to its DTO.
func ToRoznamchaResponse(e *domain.RoznamchaEntry) RoznamchaResponse {
	return RoznamchaResponse{
		EntryID:         e.EntryID,
		Description:     e.Description,
		TransactionType: e.TransactionType,
		Status:          e.Status,
		Debit:           e.Debit,
		Credit:          e.Credit,
		EntryDate:       e.EntryDate,
		ReferenceNumber: e.ReferenceNumber,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToRoznamchaResponses converts a slice of entries.
func ToRoznamchaResponses(entries []domain.RoznamchaEntry) []RoznamchaResponse {
	res := make([]RoznamchaResponse, len(entries))
	for i := range entries {
		res[i] = ToRoznamchaResponse(&entries[i])
	}
	return res
}
