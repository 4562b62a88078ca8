package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusops/roster/internal/domain"
	"github.com/campusops/roster/internal/infra/database/models"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// UserCourses returns the courses a user is enrolled in, ascending by
// course id. onlyActive excludes suspended enrollments.
func (r *EnrollmentRepository) UserCourses(ctx context.Context, userID int64, onlyActive bool) ([]domain.Course, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Joins("JOIN enrollments e ON e.course_id = courses.id").
		Where("e.user_id = ?", userID)
	if onlyActive {
		q = q.Where("e.active = ?", true)
	}

	var rows []models.Course
	err := q.Order("courses.id ASC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "enrollment query failed")
	}

	courses := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseFromModel(row))
	}
	return courses, nil
}
