package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/utils/accounting"
	"github.com/SscSPs/cash_book_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// TransactionService implements portssvc.TransactionSvcFacade.
type TransactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	partyRepo portsrepo.PartyReader
	loc       *time.Location
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// NewTransactionService creates a TransactionService; loc defines calendar days for list filters.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, partyRepo portsrepo.PartyReader, loc *time.Location) *TransactionService {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionService{
		BaseService: newBaseService(),
		txnRepo:     txnRepo,
		partyRepo:   partyRepo,
		loc:         loc,
	}
}

// resolveParty maps a missing party to ErrAccountNotFound.
func (s *TransactionService) resolveParty(ctx context.Context, accountID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		s.LogError(ctx, err, "Failed to resolve party", slog.String("account_id", accountID))
		return nil, err
	}
	return party, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	entry, err := domain.NewEntry(req.TransactionType, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	status := domain.StatusPending
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		status = *req.Status
	}

	party, err := s.resolveParty(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	txnDate := now
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		txnDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:         uuid.NewString(),
		AccountID:             party.PartyID,
		AccountName:           party.Name,
		TransactionDate:       txnDate,
		Description:           req.Description,
		Status:                status,
		ExternalTransactionID: req.ExternalTransactionID,
		Qty:                   req.Qty,
		Price:                 req.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	txn.ApplyEntry(entry)

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil && *req.AccountID != txn.AccountID {
		party, err := s.resolveParty(ctx, *req.AccountID)
		if err != nil {
			return nil, err
		}
		txn.AccountID = party.PartyID
		txn.AccountName = party.Name
	}

	// Debit and credit always follow the resulting (type, amount) pair.
	entry := txn.Entry()
	if req.TransactionType != nil {
		entry.Type = *req.TransactionType
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	entry, err = domain.NewEntry(entry.Type, entry.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	txn.ApplyEntry(entry)

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		txn.Status = *req.Status
	}
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.ExternalTransactionID != nil {
		txn.ExternalTransactionID = *req.ExternalTransactionID
	}
	if req.Qty != nil {
		txn.Qty = req.Qty
	}
	if req.Price != nil {
		txn.Price = req.Price
	}
	txn.LastUpdatedAt = s.now()
	txn.LastUpdatedBy = requestingUserID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID), slog.String("deleted_by", requestingUserID))
	return nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, err
	}

	var nextToken *string
	if params.NextToken != "" {
		if _, err := pagination.DecodeToken(params.NextToken); err != nil {
			return nil, err
		}
		nextToken = &params.NextToken
	}

	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	txns, next, err := s.txnRepo.ListTransactions(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    next,
	}, nil
}

func (s *TransactionService) buildFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if params.AccountID != "" {
		filter.AccountID = &params.AccountID
	}
	if params.TransactionType != "" {
		t := domain.TransactionType(params.TransactionType)
		if !t.IsValid() {
			return filter, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.TransactionType)
		}
		filter.TransactionType = &t
	}
	if params.Status != "" {
		st := domain.TransactionStatus(params.Status)
		if !st.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &st
	}
	if params.ExternalTransactionID != "" {
		filter.ExternalTransactionID = &params.ExternalTransactionID
	}

	var start, end time.Time
	if params.StartDate != "" {
		day, err := accounting.ParseDay(params.StartDate, s.loc)
		if err != nil {
			return filter, err
		}
		start = day
		filter.Start = &start
	}
	if params.EndDate != "" {
		day, err := accounting.ParseDay(params.EndDate, s.loc)
		if err != nil {
			return filter, err
		}
		_, end = accounting.DayRange(day, s.loc)
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil {
		if err := accounting.ValidateRange(start, end.AddDate(0, 0, -1), s.loc); err != nil {
			return filter, err
		}
	}
	return filter, nil
}
