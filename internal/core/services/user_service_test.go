package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/SscSPs/cash_book_app/internal/core/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupSuite() {
	utils.PasswordCost = bcrypt.MinCost
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndDefaultsRole() {
	req := dto.CreateUserRequest{Username: " Clerk ", Name: "Clerk One", Password: "correct-horse"}
	var saved domain.User
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("clerk", user.Username)
	suite.Equal(domain.RoleUser, user.Role)
	suite.NotEqual("correct-horse", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct-horse", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "clerk", Name: "C", Password: "12345678"}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "clerk", Role: domain.RoleUser, PasswordHash: hash}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "clerk").Return(stored, nil)
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "nobody").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "Clerk", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "clerk", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nobody", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestEnsureAdminUser_CreatesOnce() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.CreatedBy == "system"
	})).Return(nil).Once()

	user, created, err := suite.service.EnsureAdminUser(suite.ctx, "admin", "admin-password")
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(domain.RoleAdmin, user.Role)

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "admin").Return(user, nil).Once()
	again, created, err := suite.service.EnsureAdminUser(suite.ctx, "admin", "admin-password")
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(user.UserID, again.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_DefaultsLimit() {
	suite.mockRepo.On("FindUsers", suite.ctx, 20, 0).Return([]domain.User{}, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx, 0, -5)

	suite.Require().NoError(err)
	suite.Empty(users)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "token-test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "u9", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "u9", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
