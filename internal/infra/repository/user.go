package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusops/roster/internal/domain"
	"github.com/campusops/roster/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List reads up to limit users, ascending by id so pagination is
// reproducible.
func (r *UserRepository) List(ctx context.Context, limit int64) ([]domain.User, error) {
	var rows []models.User
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(int(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "user list query failed")
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, domain.User{
			ID:        row.ID,
			Username:  row.Username,
			Firstname: row.Firstname,
			Lastname:  row.Lastname,
			Email:     row.Email,
			Fullname:  row.Fullname,
			Address:   row.Address,
			Phone1:    row.Phone1,
			Phone2:    row.Phone2,
		})
	}
	return users, nil
}
