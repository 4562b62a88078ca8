package usecase

import (
	"context"

	"github.com/campusops/roster/internal/domain"
)

// UserRepository reads user rows, ordered ascending by id.
type UserRepository interface {
	List(ctx context.Context, limit int64) ([]domain.User, error)
}

// CourseRepository reads course rows, ordered ascending by id.
type CourseRepository interface {
	List(ctx context.Context, limit int64) ([]domain.Course, error)
}

// EnrollmentRepository resolves a user's course memberships.
type EnrollmentRepository interface {
	UserCourses(ctx context.Context, userID int64, onlyActive bool) ([]domain.Course, error)
}

// GradeRepository resolves course grades in one batched lookup per user.
type GradeRepository interface {
	CourseGrades(ctx context.Context, userID int64, courseIDs []int64) (map[int64]float64, error)
}
