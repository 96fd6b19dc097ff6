package account

import (
	"regexp"
	"strings"
	"time"

	"github.com/amirasaad/carddemo/pkg/domain"
	"github.com/amirasaad/carddemo/pkg/dto"
	"github.com/shopspring/decimal"
)

var (
	ssnPattern        = regexp.MustCompile(`^\d{9}$`)
	phonePattern      = regexp.MustCompile(`^\(?\d{3}\)?\d{3}-\d{4}$`)
	alphabeticPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	stateCodePattern  = regexp.MustCompile(`^[A-Z]{2}$`)
	zipCodePattern    = regexp.MustCompile(`^\d{5}$`)
)

const (
	minFicoScore = 300
	maxFicoScore = 850

	dateLayout = "2006-01-02"
)

// maxMonetary is the largest amount the schema can hold: 10 integer digits,
// 2 fraction digits.
var maxMonetary = decimal.RequireFromString("9999999999.99")

// validateUpdateRequest checks every present field of the request against the
// business rules and stops at the first violation. Absent (nil) fields are
// never checked. The rule order is part of the contract: callers receive the
// message of the first rule that failed.
func validateUpdateRequest(req *dto.UpdateAccountRequest) error {
	if req.ActiveStatus != nil {
		status := strings.ToUpper(*req.ActiveStatus)
		if status != "Y" && status != "N" {
			return domain.NewValidationError("account status must be 'Y' or 'N'")
		}
	}

	for _, amount := range []struct {
		value *decimal.Decimal
		name  string
	}{
		{req.CreditLimit, "credit limit"},
		{req.CurrentBalance, "current balance"},
		{req.CashCreditLimit, "cash credit limit"},
		{req.CurrentCycleCredit, "current cycle credit"},
		{req.CurrentCycleDebit, "current cycle debit"},
	} {
		if amount.value != nil && amount.value.IsNegative() {
			return domain.NewValidationError("%s cannot be negative", amount.name)
		}
	}

	if req.SSN != nil && !ssnPattern.MatchString(*req.SSN) {
		return domain.NewValidationError("SSN must be a valid 9-digit number")
	}

	if req.FicoScore != nil && (*req.FicoScore < minFicoScore || *req.FicoScore > maxFicoScore) {
		return domain.NewValidationError("FICO score must be between %d and %d", minFicoScore, maxFicoScore)
	}

	if req.FirstName != nil && !alphabeticPattern.MatchString(*req.FirstName) {
		return domain.NewValidationError("first name must contain only alphabetic characters")
	}
	// Middle name may be empty; the pattern applies only to non-empty values.
	if req.MiddleName != nil && *req.MiddleName != "" && !alphabeticPattern.MatchString(*req.MiddleName) {
		return domain.NewValidationError("middle name must contain only alphabetic characters")
	}
	if req.LastName != nil && !alphabeticPattern.MatchString(*req.LastName) {
		return domain.NewValidationError("last name must contain only alphabetic characters")
	}
	if req.City != nil && !alphabeticPattern.MatchString(*req.City) {
		return domain.NewValidationError("city must contain only alphabetic characters")
	}

	if req.PhoneNumber1 != nil && !phonePattern.MatchString(*req.PhoneNumber1) {
		return domain.NewValidationError("phone number 1 must be in format (XXX)XXX-XXXX")
	}
	// Like the middle name, an empty second phone number is accepted.
	if req.PhoneNumber2 != nil && *req.PhoneNumber2 != "" && !phonePattern.MatchString(*req.PhoneNumber2) {
		return domain.NewValidationError("phone number 2 must be in format (XXX)XXX-XXXX")
	}

	if req.StateCode != nil && !stateCodePattern.MatchString(*req.StateCode) {
		return domain.NewValidationError("state code must be a valid 2-letter code")
	}

	if req.ZipCode != nil && !zipCodePattern.MatchString(*req.ZipCode) {
		return domain.NewValidationError("zip code must be a valid 5-digit number")
	}

	return validateConstraints(req)
}

// validateConstraints enforces the schema-level constraints that are not part
// of the ordered rule set above: monetary digit precision and date plausibility.
func validateConstraints(req *dto.UpdateAccountRequest) error {
	for _, amount := range []struct {
		value *decimal.Decimal
		name  string
	}{
		{req.CreditLimit, "credit limit"},
		{req.CurrentBalance, "current balance"},
		{req.CashCreditLimit, "cash credit limit"},
		{req.CurrentCycleCredit, "current cycle credit"},
		{req.CurrentCycleDebit, "current cycle debit"},
	} {
		if amount.value == nil {
			continue
		}
		if amount.value.GreaterThan(maxMonetary) || amount.value.Exponent() < -2 {
			return domain.NewValidationError(
				"%s must have at most 10 integer digits and 2 decimal places", amount.name)
		}
	}

	now := time.Now()
	if req.OpenDate != nil {
		openDate, err := parseDate(*req.OpenDate, "open date")
		if err != nil {
			return err
		}
		if openDate.After(now) {
			return domain.NewValidationError("open date must be in the past or present")
		}
	}
	if req.ExpirationDate != nil {
		expirationDate, err := parseDate(*req.ExpirationDate, "expiration date")
		if err != nil {
			return err
		}
		if !expirationDate.After(now) {
			return domain.NewValidationError("expiration date must be in the future")
		}
	}
	if req.ReissueDate != nil {
		if _, err := parseDate(*req.ReissueDate, "reissue date"); err != nil {
			return err
		}
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseDate(*req.DateOfBirth, "date of birth")
		if err != nil {
			return err
		}
		if !dateOfBirth.Before(now) {
			return domain.NewValidationError("date of birth must be in the past")
		}
	}

	return nil
}

func parseDate(value, name string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("%s must be a valid date in format YYYY-MM-DD", name)
	}
	return parsed, nil
}
