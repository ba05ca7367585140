//go:build integration
// +build integration

package repository

import (
	"fmt"
	"testing"

	"enquete-portal-backend/internal/database/models"
	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CaseRepositoryTestSuite tests the CaseRepository
type CaseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CaseRepository
	fileID        uint
}

// SetupSuite runs before all tests in the suite
func (suite *CaseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCaseRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *CaseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CaseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	file := testutils.NewImportFileFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(file).Error)
	suite.fileID = file.ID
}

// TearDownTest runs after each test
func (suite *CaseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CaseRepositoryTestSuite) createCase(caseNumber string) *models.Case {
	c := testutils.NewCaseFactory().WithCaseNumber(suite.fileID, caseNumber)
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)
	return c
}

func (suite *CaseRepositoryTestSuite) createInvestigator() *models.Investigator {
	inv := testutils.NewInvestigatorFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(inv).Error)
	return inv
}

// TestCreate tests inserting a case
func (suite *CaseRepositoryTestSuite) TestCreate() {
	c := testutils.NewCaseFactory().Create(suite.fileID)

	err := suite.repo.Create(c)

	suite.NoError(err)
	suite.NotZero(c.ID)
}

// TestCreateDuplicateCaseNumber tests the unique index on case numbers
func (suite *CaseRepositoryTestSuite) TestCreateDuplicateCaseNumber() {
	suite.createCase("2024000001")

	dup := testutils.NewCaseFactory().WithCaseNumber(suite.fileID, "2024000001")
	err := suite.repo.Create(dup)

	suite.Error(err)
}

// TestCreateBatchRollsBackOnFailure tests that a failing batch leaves no rows
func (suite *CaseRepositoryTestSuite) TestCreateBatchRollsBackOnFailure() {
	factory := testutils.NewCaseFactory()
	batch := []*models.Case{
		factory.WithCaseNumber(suite.fileID, "2024000010"),
		factory.WithCaseNumber(suite.fileID, "2024000011"),
		factory.WithCaseNumber(suite.fileID, "2024000010"), // duplicate
	}

	err := suite.repo.CreateBatch(batch)

	suite.Error(err)
	count, countErr := suite.repo.Count()
	suite.NoError(countErr)
	suite.Equal(int64(0), count)
}

// TestGetByCaseNumber tests lookup by business identifier
func (suite *CaseRepositoryTestSuite) TestGetByCaseNumber() {
	created := suite.createCase("2024000002")

	retrieved, err := suite.repo.GetByCaseNumber("2024000002")

	suite.NoError(err)
	suite.Equal(created.ID, retrieved.ID)
	suite.Equal("DUPONT", retrieved.LastName)
}

// TestGetByCaseNumberNotFound tests lookup of an unknown case number
func (suite *CaseRepositoryTestSuite) TestGetByCaseNumberNotFound() {
	c, err := suite.repo.GetByCaseNumber("9999999999")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(c)
}

// TestGetAllPreservesImportOrder tests that listing follows insertion order
func (suite *CaseRepositoryTestSuite) TestGetAllPreservesImportOrder() {
	for i := 1; i <= 3; i++ {
		suite.createCase(fmt.Sprintf("202400000%d", i))
	}

	cases, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(cases, 3)
	suite.Equal("2024000001", cases[0].CaseNumber)
	suite.Equal("2024000003", cases[2].CaseNumber)
}

// TestUpdateInvestigator tests assigning and unassigning a case
func (suite *CaseRepositoryTestSuite) TestUpdateInvestigator() {
	c := suite.createCase("2024000003")
	inv := suite.createInvestigator()

	err := suite.repo.UpdateInvestigator(c.ID, &inv.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(c.ID)
	suite.NoError(err)
	suite.NotNil(retrieved.InvestigatorID)
	suite.Equal(inv.ID, *retrieved.InvestigatorID)

	// Unassign writes NULL back
	err = suite.repo.UpdateInvestigator(c.ID, nil)
	suite.NoError(err)

	retrieved, err = suite.repo.GetByID(c.ID)
	suite.NoError(err)
	suite.Nil(retrieved.InvestigatorID)
}

// TestUpdateInvestigatorNotFound tests assigning a missing case
func (suite *CaseRepositoryTestSuite) TestUpdateInvestigatorNotFound() {
	inv := suite.createInvestigator()

	err := suite.repo.UpdateInvestigator(99999, &inv.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestClearInvestigator tests releasing every case of one investigator
func (suite *CaseRepositoryTestSuite) TestClearInvestigator() {
	inv := suite.createInvestigator()
	c1 := suite.createCase("2024000004")
	c2 := suite.createCase("2024000005")
	c3 := suite.createCase("2024000006")
	suite.NoError(suite.repo.UpdateInvestigator(c1.ID, &inv.ID))
	suite.NoError(suite.repo.UpdateInvestigator(c2.ID, &inv.ID))

	err := suite.repo.ClearInvestigator(inv.ID)

	suite.NoError(err)
	for _, id := range []uint{c1.ID, c2.ID, c3.ID} {
		retrieved, err := suite.repo.GetByID(id)
		suite.NoError(err)
		suite.Nil(retrieved.InvestigatorID)
	}
}

// TestDeleteByImportFileID tests removing a whole file's cases
func (suite *CaseRepositoryTestSuite) TestDeleteByImportFileID() {
	suite.createCase("2024000007")
	suite.createCase("2024000008")

	err := suite.repo.DeleteByImportFileID(suite.fileID)

	suite.NoError(err)
	count, countErr := suite.repo.CountByImportFileID(suite.fileID)
	suite.NoError(countErr)
	suite.Equal(int64(0), count)
}

// TestGetByIDPreloadsFindings tests that findings ride along
func (suite *CaseRepositoryTestSuite) TestGetByIDPreloadsFindings() {
	c := suite.createCase("2024000009")
	findings := testutils.NewFindingsFactory().WithResult(c.ID, models.ResultPositive)
	suite.NoError(suite.baseTestSuite.DB.Create(findings).Error)

	retrieved, err := suite.repo.GetByID(c.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.Findings)
	suite.Equal(models.ResultPositive, retrieved.Findings.ResultCode)
}

// Run the test suite
func TestCaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CaseRepositoryTestSuite))
}
