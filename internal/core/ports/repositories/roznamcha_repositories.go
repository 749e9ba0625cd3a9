package repositories

import (
	"context"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
)

// RoznamchaReader defines read operations for day-book entries
type RoznamchaReader interface {
	FindRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error)

	// ListRoznamcha returns one page of matching entries, newest first, and a token for the next page.
	ListRoznamcha(ctx context.Context, filter domain.RoznamchaFilter, limit int, nextToken *string) ([]domain.RoznamchaEntry, *string, error)
}

// RoznamchaWriter defines write operations for day-book entries
type RoznamchaWriter interface {
	SaveRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error
	UpdateRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error
	DeleteRoznamcha(ctx context.Context, entryID string) error
}

// RoznamchaRepositoryFacade combines all day-book repository interfaces
type RoznamchaRepositoryFacade interface {
	RoznamchaReader
	RoznamchaWriter
}
