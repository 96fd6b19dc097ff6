// Package account implements the two account flows: the consolidated
// account view (account joined to its customer through the card
// cross-reference) and the validated partial update of an account together
// with its owning customer.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/carddemo/infra/model"
	"github.com/amirasaad/carddemo/pkg/domain"
	"github.com/amirasaad/carddemo/pkg/dto"
	"github.com/amirasaad/carddemo/pkg/repository"
)

// Service exposes the account view, update, and card listing operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates an account service backed by the given unit of work.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// GetAccountView assembles the flattened read-model for an account. It loads
// the account, resolves the owning customer through the first card
// cross-reference row for the account, and merges both into one response.
// Lookups run in that order and a miss short-circuits the rest.
func (s *Service) GetAccountView(ctx context.Context, accountID int64) (*dto.AccountView, error) {
	s.logger.Info("retrieving account view", "account_id", accountID)

	if accountID <= 0 {
		s.logger.Error("invalid account ID", "account_id", accountID)
		return nil, domain.ErrInvalidAccountID
	}

	account, err := s.uow.Accounts().Get(ctx, accountID)
	if err != nil {
		return nil, notFoundErr(err, domain.ErrAccountNotFound, accountID)
	}

	xref, err := s.uow.CardXrefs().FirstByAccountID(ctx, accountID)
	if err != nil {
		return nil, notFoundErr(err, domain.ErrCardXrefNotFound, accountID)
	}

	customer, err := s.uow.Customers().Get(ctx, xref.CustomerID)
	if err != nil {
		return nil, notFoundErr(err, domain.ErrCustomerNotFound, xref.CustomerID)
	}

	s.logger.Info("account view assembled", "account_id", accountID, "customer_id", customer.CustomerID)
	return toAccountView(account, customer), nil
}

// UpdateAccount validates the request, loads the account and its owning
// customer (via the account's direct customer reference), copies every
// present field onto the two rows, and persists both inside one
// transaction. Absent fields are left untouched; any failure rolls the
// whole update back.
func (s *Service) UpdateAccount(ctx context.Context, accountID int64, req *dto.UpdateAccountRequest) error {
	s.logger.Info("starting account update", "account_id", accountID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Error("account update validation failed", "account_id", accountID, "error", err)
		return err
	}

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		account, err := uow.Accounts().Get(ctx, accountID)
		if err != nil {
			return notFoundErr(err, domain.ErrAccountNotFound, accountID)
		}

		customer, err := uow.Customers().Get(ctx, account.CustomerID)
		if err != nil {
			return notFoundErr(err, domain.ErrCustomerNotFound, account.CustomerID)
		}

		if err := applyAccountFields(account, req); err != nil {
			return err
		}
		applyCustomerFields(customer, req)

		if err := uow.Accounts().Save(ctx, account); err != nil {
			return err
		}
		return uow.Customers().Save(ctx, customer)
	})
	if err != nil {
		s.logger.Error("account update failed", "account_id", accountID, "error", err)
		return err
	}

	s.logger.Info("account and customer updated", "account_id", accountID)
	return nil
}

// ListCards returns the cards issued against an account.
func (s *Service) ListCards(ctx context.Context, accountID int64) ([]*dto.CardRead, error) {
	if accountID <= 0 {
		return nil, domain.ErrInvalidAccountID
	}

	if _, err := s.uow.Accounts().Get(ctx, accountID); err != nil {
		return nil, notFoundErr(err, domain.ErrAccountNotFound, accountID)
	}

	cards, err := s.uow.Cards().ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CardRead, 0, len(cards))
	for _, card := range cards {
		result = append(result, &dto.CardRead{
			CardNumber:     card.CardNumber,
			AccountID:      card.AccountID,
			CustomerID:     card.CustomerID,
			CardStatus:     card.CardStatus,
			ExpirationDate: card.ExpirationDate.Format(dateLayout),
		})
	}
	return result, nil
}

// notFoundErr turns a repository miss into the flow-specific sentinel,
// keeping the missing entity and identifier in the message. Other errors
// pass through unchanged.
func notFoundErr(err error, sentinel error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: ID %d", sentinel, id)
	}
	return err
}

// applyAccountFields copies every present account field from the request.
// Dates were validated already; a parse failure here still surfaces as a
// validation error rather than corrupting the row.
func applyAccountFields(account *model.Account, req *dto.UpdateAccountRequest) error {
	if req.ActiveStatus != nil {
		account.ActiveStatus = *req.ActiveStatus
	}
	if req.CreditLimit != nil {
		account.CreditLimit = *req.CreditLimit
	}
	if req.CurrentBalance != nil {
		account.CurrentBalance = *req.CurrentBalance
	}
	if req.CashCreditLimit != nil {
		account.CashCreditLimit = *req.CashCreditLimit
	}
	if req.OpenDate != nil {
		openDate, err := parseDate(*req.OpenDate, "open date")
		if err != nil {
			return err
		}
		account.OpenDate = openDate
	}
	if req.ExpirationDate != nil {
		expirationDate, err := parseDate(*req.ExpirationDate, "expiration date")
		if err != nil {
			return err
		}
		account.ExpirationDate = expirationDate
	}
	if req.ReissueDate != nil {
		reissueDate, err := parseDate(*req.ReissueDate, "reissue date")
		if err != nil {
			return err
		}
		account.ReissueDate = &reissueDate
	}
	if req.CurrentCycleCredit != nil {
		account.CurrentCycleCredit = *req.CurrentCycleCredit
	}
	if req.CurrentCycleDebit != nil {
		account.CurrentCycleDebit = *req.CurrentCycleDebit
	}
	if req.GroupID != nil {
		account.GroupID = *req.GroupID
	}
	return nil
}

// applyCustomerFields copies every present customer field from the request.
func applyCustomerFields(customer *model.Customer, req *dto.UpdateAccountRequest) {
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		customer.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.SSN != nil {
		customer.SSN = *req.SSN
	}
	if req.DateOfBirth != nil {
		// Format was checked during validation.
		if dateOfBirth, err := parseDate(*req.DateOfBirth, "date of birth"); err == nil {
			customer.DateOfBirth = dateOfBirth
		}
	}
	if req.FicoScore != nil {
		customer.FicoScore = req.FicoScore
	}
	if req.AddressLine1 != nil {
		customer.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		customer.AddressLine2 = req.AddressLine2
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.StateCode != nil {
		customer.StateCode = *req.StateCode
	}
	if req.ZipCode != nil {
		customer.ZipCode = *req.ZipCode
	}
	if req.CountryCode != nil {
		customer.CountryCode = *req.CountryCode
	}
	if req.PhoneNumber1 != nil {
		customer.PhoneNumber1 = *req.PhoneNumber1
	}
	if req.PhoneNumber2 != nil {
		customer.PhoneNumber2 = req.PhoneNumber2
	}
	if req.GovernmentIssuedID != nil {
		customer.GovernmentIssuedID = *req.GovernmentIssuedID
	}
	if req.EftAccountID != nil {
		customer.EftAccountID = req.EftAccountID
	}
	if req.PrimaryCardHolderIndicator != nil {
		customer.PrimaryCardHolderIndicator = *req.PrimaryCardHolderIndicator
	}
}
