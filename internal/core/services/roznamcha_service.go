package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

const defaultRoznamchaPageSize = 50

// RoznamchaService manages day-book entries.
type RoznamchaService struct {
	BaseService
	repo portsrepo.RoznamchaRepositoryFacade
	loc  *time.Location
}

var _ portssvc.RoznamchaSvcFacade = (*RoznamchaService)(nil)

func NewRoznamchaService(repo portsrepo.RoznamchaRepositoryFacade, loc *time.Location) *RoznamchaService {
	if loc == nil {
		loc = time.Local
	}
	return &RoznamchaService{BaseService: newBaseService(), repo: repo, loc: loc}
}

func (s *RoznamchaService) CreateRoznamcha(ctx context.Context, req dto.CreateRoznamchaRequest, creatorUserID string) (*domain.RoznamchaEntry, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
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

	now := s.now()
	entryDate := now
	if req.EntryDate != nil && !req.EntryDate.IsZero() {
		entryDate = *req.EntryDate
	}

	rec := domain.RoznamchaEntry{
		EntryID:         uuid.NewString(),
		Description:     description,
		Status:          status,
		EntryDate:       entryDate,
		ReferenceNumber: req.ReferenceNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	rec.ApplyEntry(entry)

	if err := s.repo.SaveRoznamcha(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save roznamcha entry")
		return nil, fmt.Errorf("failed to create roznamcha entry: %w", err)
	}
	s.LogInfo(ctx, "Roznamcha entry created", slog.String("entry_id", rec.EntryID))
	return &rec, nil
}

func (s *RoznamchaService) GetRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error) {
	rec, err := s.repo.FindRoznamchaByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find roznamcha entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return rec, nil
}

func (s *RoznamchaService) ListRoznamcha(ctx context.Context, params dto.ListRoznamchaParams) (*dto.ListRoznamchaResponse, error) {
	var filter domain.RoznamchaFilter

	if d := strings.TrimSpace(params.Description); d != "" {
		filter.Description = &d
	}
	if params.TransactionType != "" {
		t := domain.TransactionType(params.TransactionType)
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.TransactionType)
		}
		filter.TransactionType = &t
	}
	if params.Status != "" {
		st := domain.TransactionStatus(params.Status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &st
	}
	if params.Date != "" {
		day, err := accounting.ParseDay(params.Date, s.loc)
		if err != nil {
			return nil, err
		}
		start, end := accounting.DayRange(day, s.loc)
		filter.Start = &start
		filter.End = &end
	}

	var nextToken *string
	if params.NextToken != "" {
		if _, err := pagination.DecodeToken(params.NextToken); err != nil {
			return nil, err
		}
		nextToken = &params.NextToken
	}

	limit := pagination.ClampLimit(params.Limit, defaultRoznamchaPageSize, maxPageSize)
	entries, next, err := s.repo.ListRoznamcha(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roznamcha entries")
		return nil, fmt.Errorf("failed to list roznamcha entries: %w", err)
	}
	return &dto.ListRoznamchaResponse{
		Entries:   dto.ToRoznamchaResponses(entries),
		NextToken: next,
	}, nil
}

func (s *RoznamchaService) UpdateRoznamcha(ctx context.Context, entryID string, req dto.UpdateRoznamchaRequest, requestingUserID string) (*domain.RoznamchaEntry, error) {
	rec, err := s.GetRoznamchaByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		rec.Description = d
	}

	entryType := rec.TransactionType
	amount := rec.Amount()
	if req.TransactionType != nil {
		entryType = *req.TransactionType
	}
	if req.Amount != nil {
		amount = *req.Amount
	}
	entry, err := domain.NewEntry(entryType, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	rec.ApplyEntry(entry)

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		rec.Status = *req.Status
	}
	if req.EntryDate != nil && !req.EntryDate.IsZero() {
		rec.EntryDate = *req.EntryDate
	}
	if req.ReferenceNumber != nil {
		rec.ReferenceNumber = *req.ReferenceNumber
	}
	rec.LastUpdatedAt = s.now()
	rec.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateRoznamcha(ctx, *rec); err != nil {
		s.LogError(ctx, err, "Failed to update roznamcha entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update roznamcha entry: %w", err)
	}
	return rec, nil
}

func (s *RoznamchaService) DeleteRoznamcha(ctx context.Context, entryID string, requestingUserID string) error {
	if err := s.repo.DeleteRoznamcha(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete roznamcha entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Roznamcha entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", requestingUserID))
	return nil
}
