package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusops/roster/internal/domain"
	"github.com/campusops/roster/internal/infra/database/models"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List reads up to limit courses, ascending by id.
func (r *CourseRepository) List(ctx context.Context, limit int64) ([]domain.Course, error) {
	var rows []models.Course
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(int(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "course list query failed")
	}

	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseFromModel(row))
	}
	return courses, nil
}

func courseFromModel(row models.Course) domain.Course {
	return domain.Course{
		ID:        row.ID,
		Fullname:  row.Fullname,
		Shortname: row.Shortname,
		Category:  row.Category,
		IDNumber:  row.IDNumber,
	}
}
