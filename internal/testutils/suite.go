package testutils

import (
	"sync"
	"testing"

	"customer-tracker/internal/database"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce    sync.Once
	sharedInitErr error
	sharedDB      *gorm.DB
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite initializes (once) the shared in-memory SQLite database and
// returns a per-suite wrapper. Call this in your tests before using the DB.
// The store holds a single connection, so the in-memory database survives
// across suites for the whole test run.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedDB() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test database: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB: sharedDB,
	}
}

func initSharedDB() error {
	db, err := database.Initialize(":memory:", &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	})
	if err != nil {
		return err
	}
	sharedDB = db
	return nil
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean the DB here;
// the in-memory database persists across suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties known tables if they exist and resets the id sequences
// so each test starts from a predictable state.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"customer_products",
		"products",
		"customers",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `";`)
			s.DB.Exec(`DELETE FROM sqlite_sequence WHERE name = ?;`, t)
		}
	}
}
