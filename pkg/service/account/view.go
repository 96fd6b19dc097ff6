package account

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/amirasaad/carddemo/infra/model"
	"github.com/amirasaad/carddemo/pkg/dto"
)

var nonDigits = regexp.MustCompile(`\D`)

// formatSSN renders a stored 9-digit SSN as XXX-XX-XXXX. When the stored
// value does not reduce to exactly 9 digits it comes back unchanged; the
// view never fails on a malformed SSN.
func formatSSN(ssn string) string {
	if strings.TrimSpace(ssn) == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(ssn, "")
	if len(digits) != 9 {
		return ssn
	}
	return fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:5], digits[5:9])
}

// toAccountView flattens an account and its customer into the read-model.
func toAccountView(account *model.Account, customer *model.Customer) *dto.AccountView {
	return &dto.AccountView{
		AccountID:          account.AccountID,
		ActiveStatus:       account.ActiveStatus,
		CurrentBalance:     account.CurrentBalance,
		CreditLimit:        account.CreditLimit,
		CashCreditLimit:    account.CashCreditLimit,
		OpenDate:           account.OpenDate.Format(dateLayout),
		ExpirationDate:     account.ExpirationDate.Format(dateLayout),
		ReissueDate:        formatDatePtr(account.ReissueDate),
		CurrentCycleCredit: account.CurrentCycleCredit,
		CurrentCycleDebit:  account.CurrentCycleDebit,
		GroupID:            account.GroupID,

		CustomerID:                 customer.CustomerID,
		FirstName:                  customer.FirstName,
		MiddleName:                 strOrEmpty(customer.MiddleName),
		LastName:                   customer.LastName,
		SSN:                        formatSSN(customer.SSN),
		FicoScore:                  customer.FicoScore,
		DateOfBirth:                customer.DateOfBirth.Format(dateLayout),
		AddressLine1:               customer.AddressLine1,
		AddressLine2:               strOrEmpty(customer.AddressLine2),
		City:                       customer.City,
		StateCode:                  customer.StateCode,
		ZipCode:                    customer.ZipCode,
		CountryCode:                customer.CountryCode,
		PhoneNumber1:               customer.PhoneNumber1,
		PhoneNumber2:               strOrEmpty(customer.PhoneNumber2),
		GovernmentIssuedID:         customer.GovernmentIssuedID,
		EftAccountID:               strOrEmpty(customer.EftAccountID),
		PrimaryCardHolderIndicator: customer.PrimaryCardHolderIndicator,
	}
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
