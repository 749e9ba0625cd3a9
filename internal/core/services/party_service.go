package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/google/uuid"
)

// PartyService implements portssvc.PartySvcFacade.
type PartyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

var _ portssvc.PartySvcFacade = (*PartyService)(nil)

func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) *PartyService {
	return &PartyService{BaseService: newBaseService(), partyRepo: partyRepo}
}

func (s *PartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}

	now := s.now()
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Address:     req.Address,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("name", name))
		return nil, fmt.Errorf("failed to create party: %w", err)
	}
	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID))
	return &party, nil
}

func (s *PartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party", slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

func (s *PartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.FindParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

func (s *PartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error) {
	party, err := s.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: party name cannot be empty", apperrors.ErrValidation)
		}
		party.Name = name
	}
	if req.Phone != nil {
		party.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.Description != nil {
		party.Description = *req.Description
	}
	party.LastUpdatedAt = s.now()
	party.LastUpdatedBy = requestingUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}
	return party, nil
}

func (s *PartyService) DeleteParty(ctx context.Context, partyID string, requestingUserID string) error {
	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		}
		return err
	}
	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID), slog.String("deleted_by", requestingUserID))
	return nil
}
