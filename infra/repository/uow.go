package repository

import (
	"context"

	repo "github.com/amirasaad/carddemo/pkg/repository"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork over GORM. Outside Do it hands out
// repositories bound to the base session; inside Do they share one
// transaction, which GORM rolls back when the callback errors.
type UoW struct {
	session *gorm.DB
}

// NewUoW creates a unit of work over the given GORM session.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{session: db}
}

// Do implements repository.UnitOfWork.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	return u.session.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{session: tx})
	})
}

// Accounts implements repository.UnitOfWork.
func (u *UoW) Accounts() repo.AccountRepository {
	return NewAccountRepository(u.session)
}

// Customers implements repository.UnitOfWork.
func (u *UoW) Customers() repo.CustomerRepository {
	return NewCustomerRepository(u.session)
}

// CardXrefs implements repository.UnitOfWork.
func (u *UoW) CardXrefs() repo.CardXrefRepository {
	return NewCardXrefRepository(u.session)
}

// Cards implements repository.UnitOfWork.
func (u *UoW) Cards() repo.CardRepository {
	return NewCardRepository(u.session)
}
