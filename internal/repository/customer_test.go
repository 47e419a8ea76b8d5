package repository

import (
	"testing"
	"time"

	"customer-tracker/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CustomerRepositoryTestSuite tests the CustomerRepository
type CustomerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *CustomerRepository
	assignmentRepo *AssignmentRepository
	factories      *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CustomerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCustomerRepository(suite.baseTestSuite.DB)
	suite.assignmentRepo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CustomerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CustomerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CustomerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new customer
func (suite *CustomerRepositoryTestSuite) TestCreate() {
	customer := suite.factories.Customer.Create()

	err := suite.repo.Create(customer)

	suite.NoError(err)
	suite.NotZero(customer.ID)
}

// TestCreateAssignsIncreasingIDs tests that ids are assigned monotonically
func (suite *CustomerRepositoryTestSuite) TestCreateAssignsIncreasingIDs() {
	first := suite.factories.Customer.WithLocation("1 First St")
	second := suite.factories.Customer.WithLocation("2 Second St")

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	suite.Greater(second.ID, first.ID)
}

// TestCreateDuplicateLocation tests the unique constraint on (name, location)
func (suite *CustomerRepositoryTestSuite) TestCreateDuplicateLocation() {
	customer := suite.factories.Customer.Create()
	suite.NoError(suite.repo.Create(customer))

	duplicate := suite.factories.Customer.Create()
	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	// Exactly one row stored
	customers, err := suite.repo.GetByName(customer.Name)
	suite.NoError(err)
	suite.Len(customers, 1)
}

// TestCreateSameNameDifferentLocation tests that a customer may have several
// entries as long as each location is distinct
func (suite *CustomerRepositoryTestSuite) TestCreateSameNameDifferentLocation() {
	suite.NoError(suite.repo.Create(suite.factories.Customer.WithLocation("12 Main St")))
	suite.NoError(suite.repo.Create(suite.factories.Customer.WithLocation("90 Oak Ave")))

	customers, err := suite.repo.GetByName("Alice Johnson")
	suite.NoError(err)
	suite.Len(customers, 2)
}

// TestGetByNameOrdered tests that entries come back in insertion order
func (suite *CustomerRepositoryTestSuite) TestGetByNameOrdered() {
	locations := []string{"3 Pine Rd", "1 Main St", "2 Oak Ave"}
	for _, loc := range locations {
		suite.NoError(suite.repo.Create(suite.factories.Customer.WithLocation(loc)))
	}

	customers, err := suite.repo.GetByName("Alice Johnson")
	suite.NoError(err)
	suite.Len(customers, 3)
	for i, c := range customers {
		suite.Equal(locations[i], c.Location)
	}
}

// TestGetByNameNoMatch tests that an unknown name yields an empty slice
func (suite *CustomerRepositoryTestSuite) TestGetByNameNoMatch() {
	customers, err := suite.repo.GetByName("Nobody")
	suite.NoError(err)
	suite.Empty(customers)
}

// TestGetAll tests listing all customers
func (suite *CustomerRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Customer.WithName("Alice Johnson")))
	suite.NoError(suite.repo.Create(suite.factories.Customer.WithName("Bob Miller")))

	customers, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(customers, 2)
}

// TestGetLateSince tests the strict late-payment boundary
func (suite *CustomerRepositoryTestSuite) TestGetLateSince() {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)
	cutoff := now.AddDate(0, 0, -30)

	late := suite.factories.Customer.WithName("Late Larry")
	late.LastPayment = cutoff.Add(-time.Second)
	suite.NoError(suite.repo.Create(late))

	boundary := suite.factories.Customer.WithName("Boundary Betty")
	boundary.LastPayment = cutoff
	suite.NoError(suite.repo.Create(boundary))

	current := suite.factories.Customer.WithName("Current Carl")
	current.LastPayment = now
	suite.NoError(suite.repo.Create(current))

	customers, err := suite.repo.GetLateSince(cutoff)
	suite.NoError(err)
	suite.Len(customers, 1)
	suite.Equal("Late Larry", customers[0].Name)
}

// TestUpdateLastPayment tests updating the last payment timestamp by id
func (suite *CustomerRepositoryTestSuite) TestUpdateLastPayment() {
	customer := suite.factories.Customer.Create()
	suite.NoError(suite.repo.Create(customer))

	newPayment := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.Local)
	suite.NoError(suite.repo.UpdateLastPayment(customer.ID, newPayment))

	customers, err := suite.repo.GetByName(customer.Name)
	suite.NoError(err)
	suite.Len(customers, 1)
	suite.True(customers[0].LastPayment.Equal(newPayment))
}

// TestUpdateLastPaymentMissingID tests that updating an unknown id is a no-op
func (suite *CustomerRepositoryTestSuite) TestUpdateLastPaymentMissingID() {
	err := suite.repo.UpdateLastPayment(9999, time.Now())
	suite.NoError(err)
}

// TestTimestampRoundTrip tests that sign-up timestamps survive the store
// boundary unchanged
func (suite *CustomerRepositoryTestSuite) TestTimestampRoundTrip() {
	signUp := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	customer := suite.factories.Customer.Create()
	customer.SignUpDate = signUp
	suite.NoError(suite.repo.Create(customer))

	customers, err := suite.repo.GetByName(customer.Name)
	suite.NoError(err)
	suite.Len(customers, 1)
	suite.True(customers[0].SignUpDate.Equal(signUp))
}

// TestDeleteByIDAndName tests deletion with the belt-and-suspenders id+name match
func (suite *CustomerRepositoryTestSuite) TestDeleteByIDAndName() {
	customer := suite.factories.Customer.Create()
	suite.NoError(suite.repo.Create(customer))

	suite.NoError(suite.repo.DeleteByIDAndName(customer.ID, customer.Name))

	exists, err := suite.repo.ExistsByName(customer.Name)
	suite.NoError(err)
	suite.False(exists)
}

// TestDeleteByIDAndNameMismatch tests that a stale id pointing at another
// customer does not delete anything
func (suite *CustomerRepositoryTestSuite) TestDeleteByIDAndNameMismatch() {
	customer := suite.factories.Customer.Create()
	suite.NoError(suite.repo.Create(customer))

	suite.NoError(suite.repo.DeleteByIDAndName(customer.ID, "Bob Miller"))

	exists, err := suite.repo.ExistsByName(customer.Name)
	suite.NoError(err)
	suite.True(exists)
}

// TestDeleteCascadesToAssignments tests that deleting a customer removes its
// assignments and leaves unrelated assignments untouched
func (suite *CustomerRepositoryTestSuite) TestDeleteCascadesToAssignments() {
	alice := suite.factories.Customer.WithName("Alice Johnson")
	suite.NoError(suite.repo.Create(alice))
	bob := suite.factories.Customer.WithName("Bob Miller")
	bob.Location = "90 Oak Ave"
	suite.NoError(suite.repo.Create(bob))

	product := suite.factories.Product.Create()
	productRepo := NewProductRepository(suite.baseTestSuite.DB)
	suite.NoError(productRepo.Create(product))

	suite.NoError(suite.assignmentRepo.Create(suite.factories.Assignment.For(alice, product)))
	suite.NoError(suite.assignmentRepo.Create(suite.factories.Assignment.For(bob, product)))

	suite.NoError(suite.repo.DeleteByIDAndName(alice.ID, alice.Name))

	assignments, err := suite.assignmentRepo.GetAll()
	suite.NoError(err)
	suite.Len(assignments, 1)
	suite.Equal("Bob Miller", assignments[0].CustomerName)
}

// TestExistsPredicates tests the existence predicates
func (suite *CustomerRepositoryTestSuite) TestExistsPredicates() {
	customer := suite.factories.Customer.Create()
	suite.NoError(suite.repo.Create(customer))

	exists, err := suite.repo.ExistsByName(customer.Name)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByName("Nobody")
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.ExistsAtLocation(customer.Name, customer.Location)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsAtLocation(customer.Name, "99 Elsewhere Blvd")
	suite.NoError(err)
	suite.False(exists)

	valid, err := suite.repo.IDBelongsTo(customer.ID, customer.Name)
	suite.NoError(err)
	suite.True(valid)

	valid, err = suite.repo.IDBelongsTo(customer.ID, "Bob Miller")
	suite.NoError(err)
	suite.False(valid)
}

// Run the test suite
func TestCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}
