// Package model defines the GORM row types. Column names and sizes mirror
// the card-processing schema; timestamps are maintained by GORM's
// autoCreateTime/autoUpdateTime behavior on save.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a financial account row.
type Account struct {
	AccountID          int64           `gorm:"column:account_id;primaryKey"`
	CustomerID         int64           `gorm:"column:customer_id;not null;index"`
	ActiveStatus       string          `gorm:"column:active_status;type:varchar(1);not null"`
	CurrentBalance     decimal.Decimal `gorm:"column:current_balance;type:decimal(12,2);not null"`
	CreditLimit        decimal.Decimal `gorm:"column:credit_limit;type:decimal(12,2);not null"`
	CashCreditLimit    decimal.Decimal `gorm:"column:cash_credit_limit;type:decimal(12,2);not null"`
	OpenDate           time.Time       `gorm:"column:open_date;type:date;not null"`
	ExpirationDate     time.Time       `gorm:"column:expiration_date;type:date;not null"`
	ReissueDate        *time.Time      `gorm:"column:reissue_date;type:date"`
	CurrentCycleCredit decimal.Decimal `gorm:"column:current_cycle_credit;type:decimal(12,2);not null"`
	CurrentCycleDebit  decimal.Decimal `gorm:"column:current_cycle_debit;type:decimal(12,2);not null"`
	GroupID            string          `gorm:"column:group_id;type:varchar(10)"`
	CreatedAt          time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

// Customer is a person row, linked to accounts by customer_id.
type Customer struct {
	CustomerID                 int64      `gorm:"column:customer_id;primaryKey"`
	FirstName                  string     `gorm:"column:first_name;type:varchar(25);not null"`
	MiddleName                 *string    `gorm:"column:middle_name;type:varchar(25)"`
	LastName                   string     `gorm:"column:last_name;type:varchar(25);not null"`
	SSN                        string     `gorm:"column:ssn;type:varchar(9);not null"`
	DateOfBirth                time.Time  `gorm:"column:date_of_birth;type:date;not null"`
	FicoScore                  *int       `gorm:"column:fico_score"`
	AddressLine1               string     `gorm:"column:address_line1;type:varchar(50);not null"`
	AddressLine2               *string    `gorm:"column:address_line2;type:varchar(50)"`
	City                       string     `gorm:"column:city;type:varchar(50);not null"`
	StateCode                  string     `gorm:"column:state_code;type:varchar(2);not null"`
	ZipCode                    string     `gorm:"column:zip_code;type:varchar(10);not null"`
	CountryCode                string     `gorm:"column:country_code;type:varchar(3);not null"`
	PhoneNumber1               string     `gorm:"column:phone_number1;type:varchar(15);not null"`
	PhoneNumber2               *string    `gorm:"column:phone_number2;type:varchar(15)"`
	GovernmentIssuedID         string     `gorm:"column:government_issued_id;type:varchar(20);not null"`
	EftAccountID               *string    `gorm:"column:eft_account_id;type:varchar(10)"`
	PrimaryCardHolderIndicator string     `gorm:"column:primary_card_holder_indicator;type:varchar(1);not null"`
	CreatedAt                  time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt                  time.Time  `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string { return "customers" }

// CardXref maps a card number to both its customer and its account. An
// account can have several rows here, one per issued card.
type CardXref struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CardNumber string    `gorm:"column:card_number;type:varchar(16);not null"`
	CustomerID int64     `gorm:"column:customer_id;not null;index"`
	AccountID  int64     `gorm:"column:account_id;not null;index:idx_card_xref_account_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the CardXref model.
func (CardXref) TableName() string { return "card_xref" }

// Card is an issued card row.
type Card struct {
	CardNumber     string    `gorm:"column:card_number;type:varchar(16);primaryKey"`
	AccountID      int64     `gorm:"column:account_id;not null;index"`
	CustomerID     int64     `gorm:"column:customer_id;not null"`
	CardStatus     string    `gorm:"column:card_status;type:varchar(1);not null"`
	ExpirationDate time.Time `gorm:"column:expiration_date;type:date;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Card model.
func (Card) TableName() string { return "cards" }
