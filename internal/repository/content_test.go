//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"maua-esports-backend/internal/database/models"
	"maua-esports-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContentRepositoryTestSuite tests the site content repositories
type ContentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite    *testutils.BaseTestSuite
	newsRepo         *NewsItemRepository
	presentationRepo *PresentationRepository
	policyRepo       *PolicyRepository
	factories        *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ContentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.newsRepo = NewNewsItemRepository(suite.baseTestSuite.DB)
	suite.presentationRepo = NewPresentationRepository(suite.baseTestSuite.DB)
	suite.policyRepo = NewPolicyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ContentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestNewsItemEmpty tests the lookup before anything was saved
func (suite *ContentRepositoryTestSuite) TestNewsItemEmpty() {
	_, err := suite.newsRepo.Get()
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestNewsItemSaveOverwrites tests that saving twice keeps a single row
func (suite *ContentRepositoryTestSuite) TestNewsItemSaveOverwrites() {
	item := &models.NewsItem{Title: "Seletiva", Description: "Inscrições abertas", Image: testutils.TestImage()}
	suite.Require().NoError(suite.newsRepo.Save(item))

	item.Title = "Seletiva 2025"
	suite.Require().NoError(suite.newsRepo.Save(item))

	found, err := suite.newsRepo.Get()
	suite.Require().NoError(err)
	suite.Equal(item.ID, found.ID)
	suite.Equal("Seletiva 2025", found.Title)
	suite.Equal(testutils.PNGHeader, found.Image.Data)

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.NewsItem{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestNewsItemGetReturnsLatest tests that the most recent row wins
func (suite *ContentRepositoryTestSuite) TestNewsItemGetReturnsLatest() {
	old := &models.NewsItem{Title: "Antiga", Description: "x"}
	old.UpdatedAt = time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(old).Error)
	latest := &models.NewsItem{Title: "Nova", Description: "y"}
	suite.Require().NoError(suite.newsRepo.Save(latest))

	found, err := suite.newsRepo.Get()
	suite.Require().NoError(err)
	suite.Equal(latest.ID, found.ID)
}

// TestPresentationIconsRoundTrip tests the jsonb icon column
func (suite *ContentRepositoryTestSuite) TestPresentationIconsRoundTrip() {
	presentation := &models.Presentation{
		Title1:       "Mauá",
		Title2:       "Esports",
		Description1: "Entidade de esports",
		Description2: "Venha jogar",
		Button1Name:  "Times",
		Button1Link:  "/times",
		Button2Name:  "Campeonatos",
		Button2Link:  "/campeonatos",
		Icons: []models.PresentationIcon{
			{ID: "1", Image: testutils.PNGHeader, ImageType: "image/png", Link: "https://playvalorant.com"},
			{ID: "2", Link: "https://leagueoflegends.com"},
		},
	}
	suite.Require().NoError(suite.presentationRepo.Save(presentation))

	found, err := suite.presentationRepo.Get()
	suite.Require().NoError(err)
	suite.Require().Len(found.Icons, 2)
	suite.Equal("1", found.Icons[0].ID)
	suite.Equal(testutils.PNGHeader, found.Icons[0].Image)
	suite.Equal("image/png", found.Icons[0].ImageType)
	suite.Empty(found.Icons[1].Image)
	suite.Equal("https://leagueoflegends.com", found.Icons[1].Link)
}

// TestPolicyCRUD tests the policy repository
func (suite *ContentRepositoryTestSuite) TestPolicyCRUD() {
	first := suite.factories.Policy.WithTitle("Regulamento")
	second := suite.factories.Policy.WithTitle("Código de conduta")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	suite.Require().NoError(suite.policyRepo.Create(first))
	suite.Require().NoError(suite.policyRepo.Create(second))

	policies, err := suite.policyRepo.GetAll()
	suite.Require().NoError(err)
	suite.Len(policies, 2)

	first.Description = "Atualizado"
	suite.Require().NoError(suite.policyRepo.Update(first))
	found, err := suite.policyRepo.GetByID(first.ID)
	suite.Require().NoError(err)
	suite.Equal("Atualizado", found.Description)

	suite.NoError(suite.policyRepo.Delete(first.ID))
	_, err = suite.policyRepo.GetByID(first.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestContentRepositoryTestSuite runs the test suite
func TestContentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContentRepositoryTestSuite))
}
