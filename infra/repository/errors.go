package repository

import (
	"errors"

	"github.com/amirasaad/carddemo/pkg/domain"
	"gorm.io/gorm"
)

// mapGormError converts GORM errors to domain errors so database concerns
// stay inside the infrastructure layer. The error chain is walked because
// GORM wraps driver errors.
func mapGormError(err error) error {
	if err == nil {
		return nil
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		if errors.Is(current, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
	}
	return err
}
