package services

import (
	"context"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/dto"
)

// RoznamchaSvcFacade defines operations on day-book entries
type RoznamchaSvcFacade interface {
	CreateRoznamcha(ctx context.Context, req dto.CreateRoznamchaRequest, creatorUserID string) (*domain.RoznamchaEntry, error)
	GetRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error)
	ListRoznamcha(ctx context.Context, params dto.ListRoznamchaParams) (*dto.ListRoznamchaResponse, error)
	UpdateRoznamcha(ctx context.Context, entryID string, req dto.UpdateRoznamchaRequest, requestingUserID string) (*domain.RoznamchaEntry, error)
	DeleteRoznamcha(ctx context.Context, entryID string, requestingUserID string) error
}
