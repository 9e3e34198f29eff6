package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/zcred_app/internal/apperrors"
	"github.com/SscSPs/zcred_app/internal/core/domain"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/core/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Username: " ayesha ", Password: "passw0rdX", Name: "Ayesha"}
	suite.mockRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ayesha" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash) &&
			u.CreatedBy == u.UserID &&
			!u.IsAdmin
	})).Return(nil)

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_WeakPassword() {
	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "ayesha", Password: "short", Name: "A"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	suite.mockRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "ayesha", Password: "passw0rdX", Name: "A"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("passw0rdX")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Username: "ayesha", PasswordHash: hash}
	suite.mockRepo.On("FindUserByUsername", mock.Anything, "ayesha").Return(stored, nil)
	suite.mockRepo.On("FindUserByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "ayesha", "passw0rdX")
	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ayesha", "wrong1234")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nobody", "passw0rdX")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetProfile() {
	suite.mockRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)

	profile, err := suite.service.GetProfile(suite.ctx, regularUser.UserID)

	suite.Require().NoError(err)
	suite.Equal("ayesha", profile.Username)
	suite.False(profile.IsAdmin)
}

func (suite *UserServiceTestSuite) TestGetProfile_NotFound() {
	suite.mockRepo.On("FindUserByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetProfile(suite.ctx, "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestResetPassword_ExplicitPassword() {
	suite.mockRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)
	suite.mockRepo.On("UpdatePasswordHash", mock.Anything, regularUser.UserID,
		mock.MatchedBy(func(hash string) bool { return utils.CheckPasswordHash("newpass99", hash) }),
		mock.Anything, adminUser.UserID).Return(nil)

	generated, err := suite.service.ResetPassword(suite.ctx, regularUser.UserID, "newpass99", adminUser.UserID)

	suite.Require().NoError(err)
	suite.Empty(generated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPassword_GeneratesWhenEmpty() {
	var storedHash string
	suite.mockRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)
	suite.mockRepo.On("UpdatePasswordHash", mock.Anything, regularUser.UserID, mock.Anything, mock.Anything, adminUser.UserID).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	generated, err := suite.service.ResetPassword(suite.ctx, regularUser.UserID, "", adminUser.UserID)

	suite.Require().NoError(err)
	suite.NoError(utils.ValidatePasswordPolicy(generated))
	suite.True(utils.CheckPasswordHash(generated, storedHash))
}

func (suite *UserServiceTestSuite) TestResetPassword_NonAdminForbidden() {
	suite.mockRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)

	_, err := suite.service.ResetPassword(suite.ctx, "someone-else", "newpass99", regularUser.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResetPassword_UnknownTarget() {
	suite.mockRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRepo.On("FindUserByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ResetPassword(suite.ctx, "ghost", "newpass99", adminUser.UserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestResetPassword_WeakPassword() {
	suite.mockRepo.On("FindUserByID", mock.Anything, adminUser.UserID).Return(adminUser, nil)
	suite.mockRepo.On("FindUserByID", mock.Anything, regularUser.UserID).Return(regularUser, nil)

	_, err := suite.service.ResetPassword(suite.ctx, regularUser.UserID, "abc", adminUser.UserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}
