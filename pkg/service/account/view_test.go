package account

import (
	"testing"
	"time"

	"github.com/amirasaad/carddemo/infra/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatSSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nine raw digits", in: "123456789", want: "123-45-6789"},
		{name: "already formatted re-derives same digits", in: "123-45-6789", want: "123-45-6789"},
		{name: "digits with spaces", in: "123 45 6789", want: "123-45-6789"},
		{name: "too few digits returned unchanged", in: "12345678", want: "12345678"},
		{name: "too many digits returned unchanged", in: "1234567890", want: "1234567890"},
		{name: "non numeric returned unchanged", in: "none", want: "none"},
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSSN(tt.in))
		})
	}
}

func TestFormatSSN_Idempotent(t *testing.T) {
	once := formatSSN("123456789")
	assert.Equal(t, once, formatSSN(once))
}

func TestToAccountView(t *testing.T) {
	openDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	expiration := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)
	fico := 720

	account := &model.Account{
		AccountID:          1001,
		CustomerID:         555,
		ActiveStatus:       "Y",
		CurrentBalance:     decimal.RequireFromString("5000.00"),
		CreditLimit:        decimal.RequireFromString("10000.00"),
		CashCreditLimit:    decimal.RequireFromString("2000.00"),
		OpenDate:           openDate,
		ExpirationDate:     expiration,
		CurrentCycleCredit: decimal.RequireFromString("1500.00"),
		CurrentCycleDebit:  decimal.RequireFromString("800.00"),
		GroupID:            "GRP001",
	}
	customer := &model.Customer{
		CustomerID:                 555,
		FirstName:                  "John",
		LastName:                   "Doe",
		SSN:                        "123456789",
		DateOfBirth:                dob,
		FicoScore:                  &fico,
		AddressLine1:               "123 Main Street",
		City:                       "New York",
		StateCode:                  "NY",
		ZipCode:                    "10001",
		CountryCode:                "USA",
		PhoneNumber1:               "(212)555-1234",
		GovernmentIssuedID:         "DL123456789",
		PrimaryCardHolderIndicator: "Y",
	}

	view := toAccountView(account, customer)

	assert.Equal(t, int64(1001), view.AccountID)
	assert.Equal(t, int64(555), view.CustomerID)
	assert.Equal(t, "123-45-6789", view.SSN)
	assert.Equal(t, "2023-01-15", view.OpenDate)
	assert.Equal(t, "2026-01-15", view.ExpirationDate)
	// Nullable fields absent on the row come back empty.
	assert.Empty(t, view.ReissueDate)
	assert.Empty(t, view.MiddleName)
	assert.Empty(t, view.AddressLine2)
	assert.Empty(t, view.PhoneNumber2)
	assert.Equal(t, "1985-06-15", view.DateOfBirth)
	assert.Equal(t, &fico, view.FicoScore)
	assert.True(t, view.CurrentBalance.Equal(decimal.RequireFromString("5000.00")))
}
