package dto

import (
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DayLedgerParams are the query parameters of the cash book endpoint.
type DayLedgerParams struct {
	Date  string `form:"date"` // YYYY-MM-DD, defaults to today
	Order string `form:"order" binding:"omitempty,oneof=received-first chronological"`
}

// AccountLedgerParams are the query parameters of the party ledger endpoint.
type AccountLedgerParams struct {
	AccountID string `form:"accountId" binding:"required"`
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// ExportLedgerParams extends AccountLedgerParams with rendering options.
type ExportLedgerParams struct {
	AccountLedgerParams
	Format string `form:"format,default=csv" binding:"omitempty,oneof=csv md html"`
	Lang   string `form:"lang,default=en" binding:"omitempty,oneof=en ur"`
}

// PreviousBalanceParams are the query parameters of the previous balance endpoint.
type PreviousBalanceParams struct {
	AccountID string `form:"accountId"`
	Cutoff    string `form:"cutoff" binding:"required"`
}

// LedgerRowResponse is one transaction line with the balance after it.
type LedgerRowResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	AccountName     string                 `json:"accountName,omitempty"`
	TransactionType domain.TransactionType `json:"transactionType"`
	TransactionDate time.Time              `json:"transactionDate"`
	Description     string                 `json:"description"`
	Debit           decimal.Decimal        `json:"debit"`
	Credit          decimal.Decimal        `json:"credit"`
	Qty             *decimal.Decimal       `json:"qty,omitempty"`
	Price           *decimal.Decimal       `json:"price,omitempty"`
	RunningBalance  decimal.Decimal        `json:"runningBalance"`
}

// DayLedgerResponse is the cash book of one day.
type DayLedgerResponse struct {
	Date            time.Time                `json:"date"`
	Order           domain.AccumulationOrder `json:"order"`
	PreviousBalance decimal.Decimal          `json:"previousBalance"`
	ReceivedRows    []LedgerRowResponse      `json:"receivedRows"`
	PaidRows        []LedgerRowResponse      `json:"paidRows"`
	ReceivedTotals  domain.TableTotals       `json:"receivedTotals"`
	PaidTotals      domain.TableTotals       `json:"paidTotals"`
	GrandBalance    decimal.Decimal          `json:"grandBalance"`
}

// AccountLedgerResponse is a party's ledger over a date range.
type AccountLedgerResponse struct {
	Party           PartyResponse         `json:"party"`
	StartDate       time.Time             `json:"startDate"`
	EndDate         time.Time             `json:"endDate"`
	PreviousBalance decimal.Decimal       `json:"previousBalance"`
	Transactions    []TransactionResponse `json:"transactions"`
	Rows            []LedgerRowResponse   `json:"rows"`
	Totals          domain.LedgerTotals   `json:"totals"`
}

// PartyDetailResponse lists every party with its balance plus the payable/receivable split.
type PartyDetailResponse struct {
	Parties []domain.PartyBalanceRow `json:"parties"`
	Summary domain.PartySummary      `json:"summary"`
}

// PreviousBalanceResponse is the opening balance at a cutoff day.
type PreviousBalanceResponse struct {
	AccountID       *string         `json:"accountID,omitempty"`
	Cutoff          time.Time       `json:"cutoff"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
}

// ToLedgerRowResponses flattens running ledger rows.
func ToLedgerRowResponses(rows []domain.RunningLedgerRow) []LedgerRowResponse {
	res := make([]LedgerRowResponse, len(rows))
	for i, row := range rows {
		txn := row.Transaction
		res[i] = LedgerRowResponse{
			TransactionID:   txn.TransactionID,
			AccountID:       txn.AccountID,
			AccountName:     txn.AccountName,
			TransactionType: txn.TransactionType,
			TransactionDate: txn.TransactionDate,
			Description:     txn.Description,
			Debit:           txn.Debit,
			Credit:          txn.Credit,
			Qty:             txn.Qty,
			Price:           txn.Price,
			RunningBalance:  row.RunningBalance,
		}
	}
	return res
}

// ToDayLedgerResponse converts a domain.DayLedger to its DTO.
func ToDayLedgerResponse(l *domain.DayLedger) DayLedgerResponse {
	return DayLedgerResponse{
		Date:            l.Date,
		Order:           l.Order,
		PreviousBalance: l.PreviousBalance,
		ReceivedRows:    ToLedgerRowResponses(l.ReceivedRows),
		PaidRows:        ToLedgerRowResponses(l.PaidRows),
		ReceivedTotals:  l.ReceivedTotals,
		PaidTotals:      l.PaidTotals,
		GrandBalance:    l.GrandBalance,
	}
}

// ToAccountLedgerResponse converts a domain.AccountLedger to its DTO.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	return AccountLedgerResponse{
		Party:           ToPartyResponse(&l.Party),
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		PreviousBalance: l.PreviousBalance,
		Transactions:    ToTransactionResponses(l.Transactions),
		Rows:            ToLedgerRowResponses(l.Rows),
		Totals:          l.Totals,
	}
}
