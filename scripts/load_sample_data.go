package main

import (
	"fmt"
	"log"
	"os"

	"customer-tracker/internal/config"
	"customer-tracker/internal/database"
	"customer-tracker/internal/database/models"
	"customer-tracker/internal/validation"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the YAML sample file
type CustomerData struct {
	Name        string `yaml:"name"`
	PhoneNum    string `yaml:"phone_num"`
	Location    string `yaml:"location"`
	CardNum     string `yaml:"card_num"`
	SignUpDate  string `yaml:"sign_up_date"`
	LastPayment string `yaml:"last_payment"`
}

type ProductData struct {
	Name  string  `yaml:"product"`
	Type  string  `yaml:"product_type"`
	Price float64 `yaml:"price"`
}

type AssignmentData struct {
	CustomerName     string  `yaml:"customer_name"`
	CustomerLocation string  `yaml:"customer_location"`
	ProductName      string  `yaml:"product_name"`
	ProductPrice     float64 `yaml:"product_price"`
}

type SampleData struct {
	Customers   []CustomerData   `yaml:"customers"`
	Products    []ProductData    `yaml:"products"`
	Assignments []AssignmentData `yaml:"assignments"`
}

// load_sample_data seeds the store from a YAML file. Entries whose unique
// pair already exists are skipped, so the loader can run repeatedly against
// the same database.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	path := "scripts/sample_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read sample data file:", err)
	}

	var data SampleData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatal("Failed to parse sample data file:", err)
	}

	db, err := database.Initialize(cfg.DatabasePath, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	loaded := 0
	skipped := 0

	for _, c := range data.Customers {
		customer, err := toCustomer(c)
		if err != nil {
			log.Fatalf("Invalid customer %q: %v", c.Name, err)
		}
		created, err := createIfMissing(db, customer,
			"name = ? AND location = ?", c.Name, c.Location)
		if err != nil {
			logrus.Fatal("Failed to load customer:", err)
		}
		loaded, skipped = tally(loaded, skipped, created)
	}

	for _, p := range data.Products {
		productType, valid := validation.ParseProductType(p.Type)
		if !valid {
			log.Fatalf("Invalid product type %q for %q", p.Type, p.Name)
		}
		price := p.Price
		if productType == string(models.ProductTypeEquipment) {
			price = 0
		}
		created, err := createIfMissing(db, &models.Product{
			Name:  p.Name,
			Type:  models.ProductType(productType),
			Price: price,
		}, "product = ? AND price = ?", p.Name, price)
		if err != nil {
			logrus.Fatal("Failed to load product:", err)
		}
		loaded, skipped = tally(loaded, skipped, created)
	}

	for _, a := range data.Assignments {
		if err := checkPairs(db, a); err != nil {
			log.Fatalf("Invalid assignment of %q to %q: %v", a.ProductName, a.CustomerName, err)
		}
		created, err := createIfMissing(db, &models.Assignment{
			CustomerName:     a.CustomerName,
			CustomerLocation: a.CustomerLocation,
			ProductName:      a.ProductName,
			ProductPrice:     a.ProductPrice,
		}, "customer_name = ? AND customer_location = ? AND product_name = ? AND product_price = ?",
			a.CustomerName, a.CustomerLocation, a.ProductName, a.ProductPrice)
		if err != nil {
			logrus.Fatal("Failed to load assignment:", err)
		}
		loaded, skipped = tally(loaded, skipped, created)
	}

	logrus.WithFields(logrus.Fields{
		"loaded":  loaded,
		"skipped": skipped,
		"path":    path,
	}).Info("Sample data load complete")
}

func toCustomer(c CustomerData) (*models.Customer, error) {
	if !validation.ValidPhoneNumber(c.PhoneNum) {
		return nil, fmt.Errorf("phone number %q is not in XXX-XXX-XXXX format", c.PhoneNum)
	}
	if !validation.ValidCardNumber(c.CardNum) {
		return nil, fmt.Errorf("card number must be 13-19 characters with no separators")
	}
	signUp, err := validation.ParseDate(c.SignUpDate)
	if err != nil {
		return nil, fmt.Errorf("sign-up date: %w", err)
	}
	lastPayment, err := validation.ParseDate(c.LastPayment)
	if err != nil {
		return nil, fmt.Errorf("last payment date: %w", err)
	}
	return &models.Customer{
		Name:        c.Name,
		PhoneNum:    c.PhoneNum,
		Location:    c.Location,
		CardNum:     c.CardNum,
		SignUpDate:  signUp,
		LastPayment: lastPayment,
	}, nil
}

// checkPairs rejects assignments whose customer or product pair is absent,
// keeping the loader under the same referential rule as the application.
func checkPairs(db *gorm.DB, a AssignmentData) error {
	var count int64
	if err := db.Model(&models.Customer{}).
		Where("name = ? AND location = ?", a.CustomerName, a.CustomerLocation).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no customer %q at %q", a.CustomerName, a.CustomerLocation)
	}
	if err := db.Model(&models.Product{}).
		Where("product = ? AND price = ?", a.ProductName, a.ProductPrice).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no product %q at price %.2f", a.ProductName, a.ProductPrice)
	}
	return nil
}

func createIfMissing(db *gorm.DB, record interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.Model(record).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := db.Create(record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func tally(loaded, skipped int, created bool) (int, int) {
	if created {
		return loaded + 1, skipped
	}
	return loaded, skipped + 1
}
