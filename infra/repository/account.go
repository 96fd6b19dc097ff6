// Package repository implements the persistence contracts from
// pkg/repository on top of GORM.
package repository

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
	repo "github.com/amirasaad/carddemo/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided *gorm.DB.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, accountID int64) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, "account_id = ?", accountID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &account, nil
}

// ListByCustomerID implements repository.AccountRepository.
func (r *accountRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error) {
	var accounts []*model.Account
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&accounts).Error; err != nil {
		return nil, mapGormError(err)
	}
	return accounts, nil
}

// Save implements repository.AccountRepository.
func (r *accountRepository) Save(ctx context.Context, account *model.Account) error {
	return mapGormError(r.db.WithContext(ctx).Save(account).Error)
}
