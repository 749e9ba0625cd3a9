package services

import (
	"context"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/dto"
)

// PartyReaderSvc defines read operations for parties
type PartyReaderSvc interface {
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for parties
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error)
	// DeleteParty fails with apperrors.ErrValidation while the party still has transactions.
	DeleteParty(ctx context.Context, partyID string, requestingUserID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
