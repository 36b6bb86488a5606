//go:build integration
// +build integration

package repository

import (
	"testing"

	"maua-esports-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests the case-insensitive email lookup
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.WithEmail("22.00000-0@maua.br")
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(" 22.00000-0@MAUA.BR")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithEmail("dup@maua.br")))

	err := suite.repo.Create(suite.factories.User.WithEmail("dup@maua.br"))
	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByDiscordIDs tests the Discord id lookup
func (suite *UserRepositoryTestSuite) TestGetByDiscordIDs() {
	linked := suite.factories.User.WithDiscordID("123456789012345678")
	other := suite.factories.User.WithDiscordID("876543210987654321")
	suite.Require().NoError(suite.repo.Create(linked))
	suite.Require().NoError(suite.repo.Create(other))
	suite.Require().NoError(suite.repo.Create(suite.factories.User.Create()))

	users, err := suite.repo.GetByDiscordIDs([]string{"123456789012345678", "000000000000000000"})
	suite.NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal(linked.ID, users[0].ID)

	users, err = suite.repo.GetByDiscordIDs(nil)
	suite.NoError(err)
	suite.Empty(users)
}

// TestUpdateDiscordID tests linking and the missing row case
func (suite *UserRepositoryTestSuite) TestUpdateDiscordID() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.UpdateDiscordID(user.ID, "123456789012345678"))
	found, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.DiscordID)
	suite.Equal("123456789012345678", *found.DiscordID)

	suite.ErrorIs(suite.repo.UpdateDiscordID(uuid.New(), "123456789012345678"), gorm.ErrRecordNotFound)
}

// TestListSkipsPhotoBytes tests that list queries keep only the photo content type
func (suite *UserRepositoryTestSuite) TestListSkipsPhotoBytes() {
	user := suite.factories.User.Create()
	user.ProfilePhoto = testutils.TestImage()
	suite.Require().NoError(suite.repo.Create(user))

	users, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Empty(users[0].ProfilePhoto.Data)
	suite.Equal("image/png", users[0].ProfilePhoto.ContentType)

	found, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal(testutils.PNGHeader, found.ProfilePhoto.Data)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))
	_, err := suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
