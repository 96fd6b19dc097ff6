// Package dto holds the transport-facing request and response shapes shared
// by the web layer and the services. Field names follow the wire contract
// (camelCase) rather than Go conventions for JSON keys.
package dto

import "github.com/shopspring/decimal"

// UpdateAccountRequest is the partial-update payload for an account and its
// owning customer. Every field is optional: nil means "leave unchanged".
// There is no way to clear a stored value; supplying a field always means
// "set to this value".
//
// The validate tags cover the structural constraints (lengths, formats,
// enumerations) checked at the HTTP boundary. The ordered business rules
// (negative amounts, SSN digits, FICO range, name/phone/state/zip patterns)
// live in the account service so their messages and evaluation order stay
// authoritative; each constraint is enforced in exactly one place.
type UpdateAccountRequest struct {
	// Account fields.
	ActiveStatus       *string          `json:"activeStatus"`
	CurrentBalance     *decimal.Decimal `json:"currentBalance"`
	CreditLimit        *decimal.Decimal `json:"creditLimit"`
	CashCreditLimit    *decimal.Decimal `json:"cashCreditLimit"`
	OpenDate           *string          `json:"openDate" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate     *string          `json:"expirationDate" validate:"omitempty,datetime=2006-01-02"`
	ReissueDate        *string          `json:"reissueDate" validate:"omitempty,datetime=2006-01-02"`
	CurrentCycleCredit *decimal.Decimal `json:"currentCycleCredit"`
	CurrentCycleDebit  *decimal.Decimal `json:"currentCycleDebit"`
	GroupID            *string          `json:"groupId" validate:"omitempty,max=10"`

	// Customer fields.
	FirstName                  *string `json:"firstName" validate:"omitempty,max=25"`
	MiddleName                 *string `json:"middleName" validate:"omitempty,max=25"`
	LastName                   *string `json:"lastName" validate:"omitempty,max=25"`
	SSN                        *string `json:"ssn"`
	DateOfBirth                *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	FicoScore                  *int    `json:"ficoScore"`
	AddressLine1               *string `json:"addressLine1" validate:"omitempty,max=50"`
	AddressLine2               *string `json:"addressLine2" validate:"omitempty,max=50"`
	City                       *string `json:"city" validate:"omitempty,max=50"`
	StateCode                  *string `json:"stateCode"`
	ZipCode                    *string `json:"zipCode"`
	CountryCode                *string `json:"countryCode" validate:"omitempty,uppercase,alpha,min=2,max=3"`
	PhoneNumber1               *string `json:"phoneNumber1"`
	PhoneNumber2               *string `json:"phoneNumber2"`
	GovernmentIssuedID         *string `json:"governmentIssuedId" validate:"omitempty,max=20"`
	EftAccountID               *string `json:"eftAccountId" validate:"omitempty,max=10"`
	PrimaryCardHolderIndicator *string `json:"primaryCardHolderIndicator" validate:"omitempty,oneof=Y N"`
}

// AccountView is the flattened read-model combining an account with the
// customer resolved through the card cross-reference. Dates are rendered
// as YYYY-MM-DD; the SSN is rendered as XXX-XX-XXXX when well formed.
type AccountView struct {
	AccountID          int64           `json:"accountId"`
	ActiveStatus       string          `json:"activeStatus"`
	CurrentBalance     decimal.Decimal `json:"currentBalance"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	CashCreditLimit    decimal.Decimal `json:"cashCreditLimit"`
	OpenDate           string          `json:"openDate"`
	ExpirationDate     string          `json:"expirationDate"`
	ReissueDate        string          `json:"reissueDate,omitempty"`
	CurrentCycleCredit decimal.Decimal `json:"currentCycleCredit"`
	CurrentCycleDebit  decimal.Decimal `json:"currentCycleDebit"`
	GroupID            string          `json:"groupId"`

	CustomerID                 int64  `json:"customerId"`
	FirstName                  string `json:"firstName"`
	MiddleName                 string `json:"middleName,omitempty"`
	LastName                   string `json:"lastName"`
	SSN                        string `json:"ssn"`
	FicoScore                  *int   `json:"ficoScore"`
	DateOfBirth                string `json:"dateOfBirth"`
	AddressLine1               string `json:"addressLine1"`
	AddressLine2               string `json:"addressLine2,omitempty"`
	City                       string `json:"city"`
	StateCode                  string `json:"stateCode"`
	ZipCode                    string `json:"zipCode"`
	CountryCode                string `json:"countryCode"`
	PhoneNumber1               string `json:"phoneNumber1"`
	PhoneNumber2               string `json:"phoneNumber2,omitempty"`
	GovernmentIssuedID         string `json:"governmentIssuedId"`
	EftAccountID               string `json:"eftAccountId,omitempty"`
	PrimaryCardHolderIndicator string `json:"primaryCardHolderIndicator"`
}

// CardRead is the API representation of a card issued against an account.
type CardRead struct {
	CardNumber     string `json:"cardNumber"`
	AccountID      int64  `json:"accountId"`
	CustomerID     int64  `json:"customerId"`
	CardStatus     string `json:"cardStatus"`
	ExpirationDate string `json:"expirationDate"`
}
