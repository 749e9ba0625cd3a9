package repositories

import (
	"context"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a party by its ID. Returns apperrors.ErrNotFound when missing.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindParties returns every party ordered by name.
	FindParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party. Parties that still have transactions cannot be deleted.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
