package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campusops/roster/internal/infra/database/models"
)

type GradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// CourseGrades fetches all of one user's grades for the given courses in a
// single query. Courses with no recorded grade are absent from the map.
func (r *GradeRepository) CourseGrades(ctx context.Context, userID int64, courseIDs []int64) (map[int64]float64, error) {
	grades := make(map[int64]float64, len(courseIDs))
	if len(courseIDs) == 0 {
		return grades, nil
	}

	var rows []models.Grade
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id IN ?", userID, courseIDs).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "grade query failed")
	}

	for _, row := range rows {
		grades[row.CourseID] = row.FinalGrade
	}
	return grades, nil
}
