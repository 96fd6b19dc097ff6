package account

import (
	"testing"
	"time"

	"github.com/amirasaad/carddemo/pkg/domain"
	"github.com/amirasaad/carddemo/pkg/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validFullRequest() *dto.UpdateAccountRequest {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	return &dto.UpdateAccountRequest{
		ActiveStatus:       strPtr("Y"),
		CurrentBalance:     decPtr("1500.50"),
		CreditLimit:        decPtr("5000.00"),
		CashCreditLimit:    decPtr("1000.00"),
		OpenDate:           strPtr("2023-01-15"),
		ExpirationDate:     strPtr(tomorrow),
		ReissueDate:        strPtr("2025-12-01"),
		CurrentCycleCredit: decPtr("250.75"),
		CurrentCycleDebit:  decPtr("180.25"),
		GroupID:            strPtr("GRP001"),

		FirstName:                  strPtr("John"),
		MiddleName:                 strPtr("Michael"),
		LastName:                   strPtr("Doe"),
		SSN:                        strPtr("123456789"),
		DateOfBirth:                strPtr("1985-06-15"),
		FicoScore:                  intPtr(720),
		AddressLine1:               strPtr("123 Main Street"),
		AddressLine2:               strPtr("Apt 4B"),
		City:                       strPtr("New York"),
		StateCode:                  strPtr("NY"),
		ZipCode:                    strPtr("10001"),
		CountryCode:                strPtr("USA"),
		PhoneNumber1:               strPtr("(212)555-1234"),
		PhoneNumber2:               strPtr("(212)555-5678"),
		GovernmentIssuedID:         strPtr("DL123456789"),
		EftAccountID:               strPtr("EFT987654"),
		PrimaryCardHolderIndicator: strPtr("Y"),
	}
}

func TestValidateUpdateRequest_AllFieldsValid(t *testing.T) {
	assert.NoError(t, validateUpdateRequest(validFullRequest()))
}

func TestValidateUpdateRequest_EmptyRequest(t *testing.T) {
	// Absent fields are never validated.
	assert.NoError(t, validateUpdateRequest(&dto.UpdateAccountRequest{}))
}

func TestValidateUpdateRequest_RuleViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.UpdateAccountRequest)
		message string
	}{
		{
			name:    "invalid active status",
			mutate:  func(r *dto.UpdateAccountRequest) { r.ActiveStatus = strPtr("X") },
			message: "account status must be 'Y' or 'N'",
		},
		{
			name:    "negative credit limit",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CreditLimit = decPtr("-10.00") },
			message: "credit limit cannot be negative",
		},
		{
			name:    "negative current balance",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CurrentBalance = decPtr("-0.01") },
			message: "current balance cannot be negative",
		},
		{
			name:    "negative cash credit limit",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CashCreditLimit = decPtr("-1") },
			message: "cash credit limit cannot be negative",
		},
		{
			name:    "negative current cycle credit",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CurrentCycleCredit = decPtr("-5") },
			message: "current cycle credit cannot be negative",
		},
		{
			name:    "negative current cycle debit",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CurrentCycleDebit = decPtr("-5") },
			message: "current cycle debit cannot be negative",
		},
		{
			name:    "ssn too short",
			mutate:  func(r *dto.UpdateAccountRequest) { r.SSN = strPtr("12345678") },
			message: "SSN must be a valid 9-digit number",
		},
		{
			name:    "ssn with dashes",
			mutate:  func(r *dto.UpdateAccountRequest) { r.SSN = strPtr("123-45-6789") },
			message: "SSN must be a valid 9-digit number",
		},
		{
			name:    "fico score too high",
			mutate:  func(r *dto.UpdateAccountRequest) { r.FicoScore = intPtr(900) },
			message: "FICO score must be between 300 and 850",
		},
		{
			name:    "fico score too low",
			mutate:  func(r *dto.UpdateAccountRequest) { r.FicoScore = intPtr(299) },
			message: "FICO score must be between 300 and 850",
		},
		{
			name:    "numeric first name",
			mutate:  func(r *dto.UpdateAccountRequest) { r.FirstName = strPtr("J0hn") },
			message: "first name must contain only alphabetic characters",
		},
		{
			name:    "numeric middle name",
			mutate:  func(r *dto.UpdateAccountRequest) { r.MiddleName = strPtr("M1chael") },
			message: "middle name must contain only alphabetic characters",
		},
		{
			name:    "numeric last name",
			mutate:  func(r *dto.UpdateAccountRequest) { r.LastName = strPtr("D0e") },
			message: "last name must contain only alphabetic characters",
		},
		{
			name:    "numeric city",
			mutate:  func(r *dto.UpdateAccountRequest) { r.City = strPtr("N3w York") },
			message: "city must contain only alphabetic characters",
		},
		{
			name:    "bad phone number 1",
			mutate:  func(r *dto.UpdateAccountRequest) { r.PhoneNumber1 = strPtr("212-555-1234") },
			message: "phone number 1 must be in format (XXX)XXX-XXXX",
		},
		{
			name:    "bad phone number 2",
			mutate:  func(r *dto.UpdateAccountRequest) { r.PhoneNumber2 = strPtr("5551234") },
			message: "phone number 2 must be in format (XXX)XXX-XXXX",
		},
		{
			name:    "lowercase state code",
			mutate:  func(r *dto.UpdateAccountRequest) { r.StateCode = strPtr("ny") },
			message: "state code must be a valid 2-letter code",
		},
		{
			name:    "short zip code",
			mutate:  func(r *dto.UpdateAccountRequest) { r.ZipCode = strPtr("1000") },
			message: "zip code must be a valid 5-digit number",
		},
		{
			name:    "credit limit over ten integer digits",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CreditLimit = decPtr("10000000000.00") },
			message: "credit limit must have at most 10 integer digits and 2 decimal places",
		},
		{
			name:    "balance with three decimal places",
			mutate:  func(r *dto.UpdateAccountRequest) { r.CurrentBalance = decPtr("100.123") },
			message: "current balance must have at most 10 integer digits and 2 decimal places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFullRequest()
			tt.mutate(req)

			err := validateUpdateRequest(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateUpdateRequest_FirstFailureWins(t *testing.T) {
	req := validFullRequest()
	req.ActiveStatus = strPtr("maybe")
	req.ZipCode = strPtr("bad")

	err := validateUpdateRequest(req)
	require.Error(t, err)
	// Active status is rule one; the zip violation is never reached.
	assert.Equal(t, "account status must be 'Y' or 'N'", err.Error())
}

func TestValidateUpdateRequest_LowercaseStatusAccepted(t *testing.T) {
	req := &dto.UpdateAccountRequest{ActiveStatus: strPtr("n")}
	assert.NoError(t, validateUpdateRequest(req))
}

func TestValidateUpdateRequest_EmptyMiddleNameAndPhoneTwoAccepted(t *testing.T) {
	// Empty strings bypass the pattern checks for these two fields only.
	req := &dto.UpdateAccountRequest{
		MiddleName:   strPtr(""),
		PhoneNumber2: strPtr(""),
	}
	assert.NoError(t, validateUpdateRequest(req))
}

func TestValidateUpdateRequest_PhoneWithoutParenthesesAccepted(t *testing.T) {
	req := &dto.UpdateAccountRequest{PhoneNumber1: strPtr("212555-1234")}
	assert.NoError(t, validateUpdateRequest(req))
}

func TestValidateUpdateRequest_DateConstraints(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	t.Run("open date in future rejected", func(t *testing.T) {
		err := validateUpdateRequest(&dto.UpdateAccountRequest{OpenDate: strPtr(tomorrow)})
		require.Error(t, err)
		assert.Equal(t, "open date must be in the past or present", err.Error())
	})

	t.Run("expiration date in past rejected", func(t *testing.T) {
		err := validateUpdateRequest(&dto.UpdateAccountRequest{ExpirationDate: strPtr(yesterday)})
		require.Error(t, err)
		assert.Equal(t, "expiration date must be in the future", err.Error())
	})

	t.Run("date of birth in future rejected", func(t *testing.T) {
		err := validateUpdateRequest(&dto.UpdateAccountRequest{DateOfBirth: strPtr(tomorrow)})
		require.Error(t, err)
		assert.Equal(t, "date of birth must be in the past", err.Error())
	})

	t.Run("unparseable date rejected", func(t *testing.T) {
		err := validateUpdateRequest(&dto.UpdateAccountRequest{ReissueDate: strPtr("12/01/2025")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
