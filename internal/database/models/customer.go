package models

import (
	"time"
)

// Customer represents a subscriber entry. A person may appear more than once
// as long as each entry has a distinct location, so (name, location) carries
// the uniqueness constraint rather than name alone.
type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_customers_name_location" validate:"required,min=1,max=100"`
	PhoneNum    string    `json:"phone_num" gorm:"column:phone_num;size:12;not null" validate:"required"`
	Location    string    `json:"location" gorm:"size:200;not null;uniqueIndex:idx_customers_name_location" validate:"required,min=1,max=200"`
	CardNum     string    `json:"card_num" gorm:"column:card_num;size:19;not null" validate:"required,min=13,max=19"`
	SignUpDate  time.Time `json:"sign_up_date" gorm:"column:sign_up_date;not null"`
	LastPayment time.Time `json:"last_payment" gorm:"column:last_payment;not null"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
