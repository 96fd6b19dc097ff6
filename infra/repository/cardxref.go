package repository

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
	repo "github.com/amirasaad/carddemo/pkg/repository"
	"gorm.io/gorm"
)

type cardXrefRepository struct {
	db *gorm.DB
}

// NewCardXrefRepository creates a card cross-reference repository using the
// provided *gorm.DB.
func NewCardXrefRepository(db *gorm.DB) repo.CardXrefRepository {
	return &cardXrefRepository{db: db}
}

// FirstByAccountID implements repository.CardXrefRepository. Rows are ordered
// by surrogate id so the pick is deterministic when an account has several
// cards.
func (r *cardXrefRepository) FirstByAccountID(ctx context.Context, accountID int64) (*model.CardXref, error) {
	var xref model.CardXref
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id").
		First(&xref).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	return &xref, nil
}

// GetByCardNumber implements repository.CardXrefRepository.
func (r *cardXrefRepository) GetByCardNumber(ctx context.Context, cardNumber string) (*model.CardXref, error) {
	var xref model.CardXref
	if err := r.db.WithContext(ctx).First(&xref, "card_number = ?", cardNumber).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &xref, nil
}

// ListByCustomerID implements repository.CardXrefRepository.
func (r *cardXrefRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*model.CardXref, error) {
	var xrefs []*model.CardXref
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&xrefs).Error; err != nil {
		return nil, mapGormError(err)
	}
	return xrefs, nil
}
