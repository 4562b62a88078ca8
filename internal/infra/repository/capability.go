package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusops/roster/internal/infra/database/models"
)

type CapabilityRepository struct {
	db *gorm.DB
}

func NewCapabilityRepository(db *gorm.DB) *CapabilityRepository {
	return &CapabilityRepository{db: db}
}

// CapabilitiesFor returns the capability names granted to a user.
func (r *CapabilityRepository) CapabilitiesFor(ctx context.Context, userID int64) ([]string, error) {
	var capabilities []string
	err := r.db.WithContext(ctx).
		Model(&models.CapabilityGrant{}).
		Where("user_id = ?", userID).
		Pluck("capability", &capabilities).Error
	if err != nil {
		return nil, errors.Wrap(err, "capability query failed")
	}
	return capabilities, nil
}
