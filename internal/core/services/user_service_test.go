package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/core/services"
	"github.com/owna-app/owna_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	var saved domain.User

	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2348012345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, "Ada Obi", "+2348012345678", "ada@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("Ada Obi", user.FullName)
	suite.False(user.IsVerified)
	// Password is stored hashed, never verbatim
	suite.NotEqual("s3cret-pass", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicatePhone() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), PhoneNumber: "+2348012345678"}
	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2348012345678").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, "Ada Obi", "+2348012345678", "", "s3cret-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifyOTP_AnySixDigitCodeAccepted() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, IsVerified: false}

	suite.mockRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil).Once()

	verified, err := suite.service.VerifyOTP(ctx, userID, "123456")

	suite.Require().NoError(err)
	suite.True(verified.IsVerified)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestVerifyOTP_RejectsMalformedCodes() {
	ctx := context.Background()
	userID := uuid.NewString()

	for _, code := range []string{"", "12345", "1234567", "12a456", "abcdef"} {
		_, err := suite.service.VerifyOTP(ctx, userID, code)
		suite.Require().Error(err, "code %q should be rejected", code)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifyOTP_IdempotentForVerifiedUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, IsVerified: true}

	suite.mockRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()

	verified, err := suite.service.VerifyOTP(ctx, userID, "654321")

	suite.Require().NoError(err)
	suite.True(verified.IsVerified)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PhoneNumber: "+2348012345678", PasswordHash: hash, IsVerified: true}

	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2348012345678").Return(user, nil).Once()

	authed, err := suite.service.Authenticate(ctx, "+2348012345678", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PasswordHash: hash, IsVerified: true}

	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2348012345678").Return(user, nil).Once()

	_, err = suite.service.Authenticate(ctx, "+2348012345678", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownNumberLooksLikeBadPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2340000000000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "+2340000000000", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnverifiedUserRejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PasswordHash: hash, IsVerified: false}

	suite.mockRepo.On("FindUserByPhone", mock.Anything, "+2348012345678").Return(user, nil).Once()

	_, err = suite.service.Authenticate(ctx, "+2348012345678", "s3cret-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, FullName: "Ada Obi", Email: "ada@example.com"}
	var saved domain.User

	suite.mockRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	newName := "Ada Eze"
	updated, err := suite.service.UpdateProfile(ctx, userID, &newName, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Ada Eze", updated.FullName)
	suite.Equal("ada@example.com", updated.Email)
	suite.Equal("Ada Eze", saved.FullName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NoFieldsIsNoOp() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, FullName: "Ada Obi"}

	suite.mockRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, userID, nil, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Ada Obi", updated.FullName)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
