package dto

import (
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string    `json:"partyID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Name:          p.Name,
		Phone:         p.Phone,
		Address:       p.Address,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPartyResponse converts a slice of domain.Party to a slice of PartyResponse DTOs
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
