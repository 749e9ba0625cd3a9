package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/core/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RoznamchaServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRoznamchaRepository
	service  *services.RoznamchaService
	ctx      context.Context
}

func (suite *RoznamchaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRoznamchaRepository)
	suite.service = services.NewRoznamchaService(suite.mockRepo, time.UTC)
	suite.service.Now = func() time.Time { return fixedNow }
	suite.ctx = context.Background()
}

func (suite *RoznamchaServiceTestSuite) TestCreateRoznamcha_DerivesSides() {
	req := dto.CreateRoznamchaRequest{
		Description:     "Shop rent",
		TransactionType: domain.ExpenseVoucher,
		Amount:          decimal.NewFromInt(5000),
		ReferenceNumber: "R-17",
	}
	suite.mockRepo.On("SaveRoznamcha", suite.ctx, mock.MatchedBy(func(e domain.RoznamchaEntry) bool {
		return e.Credit.Equal(decimal.NewFromInt(5000)) && e.Debit.IsZero() && e.EntryID != ""
	})).Return(nil).Once()

	entry, err := suite.service.CreateRoznamcha(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, entry.Status)
	suite.Equal(fixedNow, entry.EntryDate)
	suite.Equal("5000", entry.Amount().String())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoznamchaServiceTestSuite) TestCreateRoznamcha_BadType() {
	req := dto.CreateRoznamchaRequest{Description: "x", TransactionType: "gift", Amount: decimal.NewFromInt(1)}

	_, err := suite.service.CreateRoznamcha(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RoznamchaServiceTestSuite) TestUpdateRoznamcha_FlipType() {
	existing := &domain.RoznamchaEntry{EntryID: "e1", Description: "Milk"}
	existing.ApplyEntry(domain.Paid(decimal.NewFromInt(80)))
	received := domain.CashReceived
	suite.mockRepo.On("FindRoznamchaByID", suite.ctx, "e1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateRoznamcha", suite.ctx, mock.AnythingOfType("domain.RoznamchaEntry")).Return(nil).Once()

	entry, err := suite.service.UpdateRoznamcha(suite.ctx, "e1", dto.UpdateRoznamchaRequest{TransactionType: &received}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("80", entry.Debit.String())
	suite.True(entry.Credit.IsZero())
}

func (suite *RoznamchaServiceTestSuite) TestListRoznamcha_DateFilter() {
	wantStart := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListRoznamcha", suite.ctx, mock.MatchedBy(func(f domain.RoznamchaFilter) bool {
		return f.Start.Equal(wantStart) && f.End.Equal(wantStart.AddDate(0, 0, 1)) &&
			f.Description != nil && *f.Description == "rent"
	}), 50, (*string)(nil)).Return([]domain.RoznamchaEntry{{EntryID: "e1"}}, nil, nil).Once()

	resp, err := suite.service.ListRoznamcha(suite.ctx, dto.ListRoznamchaParams{Date: "2024-05-09", Description: " rent "})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Nil(resp.NextToken)
}

func (suite *RoznamchaServiceTestSuite) TestDeleteRoznamcha_NotFound() {
	suite.mockRepo.On("DeleteRoznamcha", suite.ctx, "e404").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRoznamcha(suite.ctx, "e404", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRoznamchaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoznamchaServiceTestSuite))
}
