package repository

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
	repo "github.com/amirasaad/carddemo/pkg/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository using the provided *gorm.DB.
func NewCustomerRepository(db *gorm.DB) repo.CustomerRepository {
	return &customerRepository{db: db}
}

// Get implements repository.CustomerRepository.
func (r *customerRepository) Get(ctx context.Context, customerID int64) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, "customer_id = ?", customerID).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &customer, nil
}

// Save implements repository.CustomerRepository.
func (r *customerRepository) Save(ctx context.Context, customer *model.Customer) error {
	return mapGormError(r.db.WithContext(ctx).Save(customer).Error)
}
