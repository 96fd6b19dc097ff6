// Package repository declares the persistence contracts the services depend
// on. Implementations live under infra/repository; tests substitute mocks.
package repository

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
)

// AccountRepository defines data access for account rows.
type AccountRepository interface {
	// Get returns the account with the given ID or domain.ErrNotFound.
	Get(ctx context.Context, accountID int64) (*model.Account, error)
	// ListByCustomerID returns every account owned by a customer.
	ListByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error)
	// Save upserts the account row and refreshes its updated_at timestamp.
	Save(ctx context.Context, account *model.Account) error
}

// CustomerRepository defines data access for customer rows.
type CustomerRepository interface {
	Get(ctx context.Context, customerID int64) (*model.Customer, error)
	Save(ctx context.Context, customer *model.Customer) error
}

// CardXrefRepository defines data access for card cross-reference rows.
type CardXrefRepository interface {
	// FirstByAccountID returns the cross-reference row with the lowest
	// surrogate id among those referencing the account, or domain.ErrNotFound.
	// Ordering by id keeps the account-to-customer resolution deterministic
	// when an account has several cards.
	FirstByAccountID(ctx context.Context, accountID int64) (*model.CardXref, error)
	GetByCardNumber(ctx context.Context, cardNumber string) (*model.CardXref, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]*model.CardXref, error)
}

// CardRepository defines data access for issued card rows.
type CardRepository interface {
	ListByAccountID(ctx context.Context, accountID int64) ([]*model.Card, error)
}
