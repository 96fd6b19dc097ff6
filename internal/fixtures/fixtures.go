// Package fixtures provides repository test doubles shared by the service
// and web layer tests.
package fixtures

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
	"github.com/amirasaad/carddemo/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Get(ctx context.Context, accountID int64) (*model.Account, error) {
	args := m.Called(ctx, accountID)
	var account *model.Account
	if v := args.Get(0); v != nil {
		account = v.(*model.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error) {
	args := m.Called(ctx, customerID)
	var accounts []*model.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]*model.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *model.Account) error {
	return m.Called(ctx, account).Error(0)
}

// MockCustomerRepository is a testify mock for repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Get(ctx context.Context, customerID int64) (*model.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *model.Customer
	if v := args.Get(0); v != nil {
		customer = v.(*model.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *model.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

// MockCardXrefRepository is a testify mock for repository.CardXrefRepository.
type MockCardXrefRepository struct {
	mock.Mock
}

func (m *MockCardXrefRepository) FirstByAccountID(ctx context.Context, accountID int64) (*model.CardXref, error) {
	args := m.Called(ctx, accountID)
	var xref *model.CardXref
	if v := args.Get(0); v != nil {
		xref = v.(*model.CardXref)
	}
	return xref, args.Error(1)
}

func (m *MockCardXrefRepository) GetByCardNumber(ctx context.Context, cardNumber string) (*model.CardXref, error) {
	args := m.Called(ctx, cardNumber)
	var xref *model.CardXref
	if v := args.Get(0); v != nil {
		xref = v.(*model.CardXref)
	}
	return xref, args.Error(1)
}

func (m *MockCardXrefRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*model.CardXref, error) {
	args := m.Called(ctx, customerID)
	var xrefs []*model.CardXref
	if v := args.Get(0); v != nil {
		xrefs = v.([]*model.CardXref)
	}
	return xrefs, args.Error(1)
}

// MockCardRepository is a testify mock for repository.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*model.Card, error) {
	args := m.Called(ctx, accountID)
	var cards []*model.Card
	if v := args.Get(0); v != nil {
		cards = v.([]*model.Card)
	}
	return cards, args.Error(1)
}

// FakeUnitOfWork hands out the configured mocks and runs Do callbacks
// against itself, so a test observes exactly the repository calls the
// service would make inside a transaction. Setting DoErr simulates a
// transaction that cannot start.
type FakeUnitOfWork struct {
	AccountsRepo  *MockAccountRepository
	CustomersRepo *MockCustomerRepository
	CardXrefsRepo *MockCardXrefRepository
	CardsRepo     *MockCardRepository
	DoErr         error
}

// NewFakeUnitOfWork builds a FakeUnitOfWork with fresh mocks.
func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		AccountsRepo:  &MockAccountRepository{},
		CustomersRepo: &MockCustomerRepository{},
		CardXrefsRepo: &MockCardXrefRepository{},
		CardsRepo:     &MockCardRepository{},
	}
}

func (u *FakeUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.DoErr != nil {
		return u.DoErr
	}
	return fn(u)
}

func (u *FakeUnitOfWork) Accounts() repository.AccountRepository   { return u.AccountsRepo }
func (u *FakeUnitOfWork) Customers() repository.CustomerRepository { return u.CustomersRepo }
func (u *FakeUnitOfWork) CardXrefs() repository.CardXrefRepository { return u.CardXrefsRepo }
func (u *FakeUnitOfWork) Cards() repository.CardRepository         { return u.CardsRepo }

// AssertExpectations asserts expectations on every mock.
func (u *FakeUnitOfWork) AssertExpectations(t mock.TestingT) {
	u.AccountsRepo.AssertExpectations(t)
	u.CustomersRepo.AssertExpectations(t)
	u.CardXrefsRepo.AssertExpectations(t)
	u.CardsRepo.AssertExpectations(t)
}
