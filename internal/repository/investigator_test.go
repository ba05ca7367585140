//go:build integration
// +build integration

package repository

import (
	"testing"

	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InvestigatorRepositoryTestSuite tests the InvestigatorRepository
type InvestigatorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvestigatorRepository
	caseRepo      *CaseRepository
}

// SetupSuite runs before all tests in the suite
func (suite *InvestigatorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewInvestigatorRepository(suite.baseTestSuite.DB)
	suite.caseRepo = NewCaseRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *InvestigatorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InvestigatorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InvestigatorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests insertion and email lookup
func (suite *InvestigatorRepositoryTestSuite) TestCreateAndGetByEmail() {
	inv := testutils.NewInvestigatorFactory().WithEmail("agent@example.com")

	err := suite.repo.Create(inv)
	suite.NoError(err)
	suite.NotZero(inv.ID)

	retrieved, err := suite.repo.GetByEmail("agent@example.com")
	suite.NoError(err)
	suite.Equal(inv.ID, retrieved.ID)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *InvestigatorRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(testutils.NewInvestigatorFactory().WithEmail("dup@example.com")))

	err := suite.repo.Create(testutils.NewInvestigatorFactory().WithEmail("dup@example.com"))

	suite.Error(err)
}

// TestGetAllOrdersByName tests roster ordering
func (suite *InvestigatorRepositoryTestSuite) TestGetAllOrdersByName() {
	factory := testutils.NewInvestigatorFactory()
	suite.NoError(suite.repo.Create(factory.WithName("MARTIN", "LUC")))
	suite.NoError(suite.repo.Create(factory.WithName("BERNARD", "PAUL")))
	suite.NoError(suite.repo.Create(factory.WithName("DUPUIS", "ANNE")))

	roster, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(roster, 3)
	suite.Equal("BERNARD", roster[0].LastName)
	suite.Equal("DUPUIS", roster[1].LastName)
	suite.Equal("MARTIN", roster[2].LastName)
}

// TestGetByIDNotFound tests lookup of a missing investigator
func (suite *InvestigatorRepositoryTestSuite) TestGetByIDNotFound() {
	inv, err := suite.repo.GetByID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(inv)
}

// TestDeleteReleasesAssignedCases tests that deletion unassigns cases first
func (suite *InvestigatorRepositoryTestSuite) TestDeleteReleasesAssignedCases() {
	inv := testutils.NewInvestigatorFactory().Create()
	suite.NoError(suite.repo.Create(inv))

	file := testutils.NewImportFileFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(file).Error)
	c := testutils.NewCaseFactory().Create(file.ID)
	c.InvestigatorID = &inv.ID
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)

	err := suite.repo.Delete(inv.ID)

	suite.NoError(err)
	retrieved, err := suite.caseRepo.GetByID(c.ID)
	suite.NoError(err, "the case itself survives")
	suite.Nil(retrieved.InvestigatorID)
}

// TestDeleteNotFound tests deleting a missing investigator
func (suite *InvestigatorRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(99999)

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestInvestigatorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvestigatorRepositoryTestSuite))
}
