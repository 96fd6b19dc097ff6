package repository

import (
	"context"

	"github.com/amirasaad/carddemo/infra/model"
	repo "github.com/amirasaad/carddemo/pkg/repository"
	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a card repository using the provided *gorm.DB.
func NewCardRepository(db *gorm.DB) repo.CardRepository {
	return &cardRepository{db: db}
}

// ListByAccountID implements repository.CardRepository. Cards come back in
// card-number order.
func (r *cardRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*model.Card, error) {
	var cards []*model.Card
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("card_number").
		Find(&cards).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	return cards, nil
}
