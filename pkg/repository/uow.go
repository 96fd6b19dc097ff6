package repository

import "context"

// UnitOfWork groups repository access under one database session so that
// multi-row writes stay atomic. Do runs fn inside a transaction boundary:
// the repositories obtained from the UnitOfWork passed to fn share that
// transaction, and any error from fn rolls the whole transaction back.
//
// Outside Do, the accessors hand back repositories bound to the base
// session, which is what read-only flows use.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Accounts() AccountRepository
	Customers() CustomerRepository
	CardXrefs() CardXrefRepository
	Cards() CardRepository
}
