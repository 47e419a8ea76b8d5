package service_test

import (
	"testing"
	"time"

	"customer-tracker/internal/database/models"
	apperrors "customer-tracker/internal/errors"
	"customer-tracker/internal/repository"
	"customer-tracker/internal/service"
	"customer-tracker/internal/testutils"
	"customer-tracker/internal/validation"

	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite drives the services end to end against a real store,
// mirroring a full operator session.
type ScenarioTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	customers     *service.CustomerService
	products      *service.ProductService
	assignments   *service.AssignmentService
}

// SetupSuite runs before all tests in the suite
func (suite *ScenarioTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	v := validation.New()
	customerRepo := repository.NewCustomerRepository(suite.baseTestSuite.DB)
	productRepo := repository.NewProductRepository(suite.baseTestSuite.DB)
	assignmentRepo := repository.NewAssignmentRepository(suite.baseTestSuite.DB)

	suite.customers = service.NewCustomerService(customerRepo, v, 30)
	suite.products = service.NewProductService(productRepo, v)
	suite.assignments = service.NewAssignmentService(assignmentRepo, customerRepo, productRepo, v)
}

// TearDownSuite runs after all tests in the suite
func (suite *ScenarioTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScenarioTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScenarioTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestFullBillingFlow walks through sign-up, product setup, assignment,
// billing, and the cascade on product removal.
func (suite *ScenarioTestSuite) TestFullBillingFlow() {
	janFirst := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	alice, err := suite.customers.Add(&service.AddCustomerRequest{
		Name:        "Alice",
		PhoneNum:    "555-123-4567",
		Location:    "Main St",
		CardNum:     "4111111111111111",
		SignUpDate:  janFirst,
		LastPayment: janFirst,
	})
	suite.NoError(err)

	_, err = suite.products.Add(&service.AddProductRequest{
		Name: "Router", Type: models.ProductTypeEquipment, Price: 0,
	})
	suite.NoError(err)

	fiber, err := suite.products.Add(&service.AddProductRequest{
		Name: "Fiber100", Type: models.ProductTypeService, Price: 49.99,
	})
	suite.NoError(err)

	_, err = suite.assignments.Assign(&service.AssignRequest{
		CustomerName:     "Alice",
		CustomerLocation: "Main St",
		ProductName:      "Fiber100",
		ProductPrice:     49.99,
	})
	suite.NoError(err)

	bill, err := suite.assignments.MonthlyBill("Alice")
	suite.NoError(err)
	suite.Equal("49.99", bill)

	// Removing the service cascades away the assignment
	suite.NoError(suite.products.Remove(fiber.ID, "Fiber100"))

	has, err := suite.assignments.CustomerHasAssignment("Alice")
	suite.NoError(err)
	suite.False(has)

	// The customer entry itself is untouched
	suite.NotZero(alice.ID)
	entries, err := suite.customers.FindByName("Alice")
	suite.NoError(err)
	suite.Len(entries, 1)
	suite.True(entries[0].SignUpDate.Equal(janFirst))
}

// TestDoubleAssignmentRejected verifies the second identical assignment fails
// while a different price point still succeeds.
func (suite *ScenarioTestSuite) TestDoubleAssignmentRejected() {
	janFirst := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	_, err := suite.customers.Add(&service.AddCustomerRequest{
		Name:        "Alice",
		PhoneNum:    "555-123-4567",
		Location:    "Main St",
		CardNum:     "4111111111111111",
		SignUpDate:  janFirst,
		LastPayment: janFirst,
	})
	suite.NoError(err)

	for _, price := range []float64{49.99, 59.99} {
		_, err = suite.products.Add(&service.AddProductRequest{
			Name: "Fiber100", Type: models.ProductTypeService, Price: price,
		})
		suite.NoError(err)
	}

	req := &service.AssignRequest{
		CustomerName:     "Alice",
		CustomerLocation: "Main St",
		ProductName:      "Fiber100",
		ProductPrice:     49.99,
	}
	_, err = suite.assignments.Assign(req)
	suite.NoError(err)

	_, err = suite.assignments.Assign(req)
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)

	// A different price is a distinct tuple
	other := *req
	other.ProductPrice = 59.99
	_, err = suite.assignments.Assign(&other)
	suite.NoError(err)

	bill, err := suite.assignments.MonthlyBill("Alice")
	suite.NoError(err)
	suite.Equal("109.98", bill)
}

// TestRepriceFollowsAssignments verifies that editing a product's price
// reclassifies the assignments referencing it.
func (suite *ScenarioTestSuite) TestRepriceFollowsAssignments() {
	janFirst := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	_, err := suite.customers.Add(&service.AddCustomerRequest{
		Name:        "Alice",
		PhoneNum:    "555-123-4567",
		Location:    "Main St",
		CardNum:     "4111111111111111",
		SignUpDate:  janFirst,
		LastPayment: janFirst,
	})
	suite.NoError(err)

	fiber, err := suite.products.Add(&service.AddProductRequest{
		Name: "Fiber100", Type: models.ProductTypeService, Price: 49.99,
	})
	suite.NoError(err)

	_, err = suite.assignments.Assign(&service.AssignRequest{
		CustomerName:     "Alice",
		CustomerLocation: "Main St",
		ProductName:      "Fiber100",
		ProductPrice:     49.99,
	})
	suite.NoError(err)

	suite.NoError(suite.products.UpdatePrice(fiber.ID, 59.99))

	bill, err := suite.assignments.MonthlyBill("Alice")
	suite.NoError(err)
	suite.Equal("59.99", bill)
}

// Run the test suite
func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
