package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/campusops/roster"
	"github.com/campusops/roster/internal/domain"
)

var tracer = otel.Tracer("report")

const (
	// DefaultMaxLimit bounds the limit parameter when config does not.
	DefaultMaxLimit = 500

	fanoutWorkers = 8
)

// ReportUsecase implements the three read-only list operations. Each call
// runs validate, authorize, execute, project, in that order, and holds no
// state between requests.
type ReportUsecase struct {
	users    UserRepository
	courses  CourseRepository
	enrol    EnrollmentRepository
	grades   GradeRepository
	format   TextFormatter
	maxLimit int64
}

func NewReportUsecase(
	users UserRepository,
	courses CourseRepository,
	enrol EnrollmentRepository,
	grades GradeRepository,
	format TextFormatter,
	maxLimit int64,
) *ReportUsecase {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &ReportUsecase{
		users:    users,
		courses:  courses,
		enrol:    enrol,
		grades:   grades,
		format:   format,
		maxLimit: maxLimit,
	}
}

// boundLimit applies the hardening bound the original platform omitted:
// negative limits are rejected, anything above the ceiling is clamped.
func (uc *ReportUsecase) boundLimit(params Params) (int64, error) {
	limit := params.Int("limit")
	if limit < 0 {
		return 0, domain.InvalidParameterError{Name: "limit", Reason: "must not be negative"}
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}
	return limit, nil
}

func (uc *ReportUsecase) authorize(requester domain.Requester) error {
	if !requester.Has(domain.CapabilityViewUserDetails) {
		return domain.UnauthorizedError{Reason: "missing " + domain.CapabilityViewUserDetails}
	}
	return nil
}

// ListUsers returns up to limit users, ascending by id.
func (uc *ReportUsecase) ListUsers(ctx context.Context, requester domain.Requester, raw map[string]string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Report.Usecase.ListUsers")
	defer span.End()

	params, err := ValidateParams(roster.ListUsersParams, raw)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(requester); err != nil {
		return nil, err
	}
	limit, err := uc.boundLimit(params)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []Record{}, nil
	}

	users, err := uc.users.List(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, domain.StoreUnavailableError{Op: "list users", Err: err}
	}

	records := make([]Record, 0, len(users))
	for _, u := range users {
		rec, err := Project(ctx, userPayload(u), roster.UserListSchema, uc.format)
		if err != nil {
			span.RecordError(errors.Wrap(err, "user projection failed"))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ListCourses returns up to limit courses, ascending by id.
func (uc *ReportUsecase) ListCourses(ctx context.Context, requester domain.Requester, raw map[string]string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Report.Usecase.ListCourses")
	defer span.End()

	params, err := ValidateParams(roster.ListCoursesParams, raw)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(requester); err != nil {
		return nil, err
	}
	limit, err := uc.boundLimit(params)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []Record{}, nil
	}

	courses, err := uc.courses.List(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, domain.StoreUnavailableError{Op: "list courses", Err: err}
	}

	records := make([]Record, 0, len(courses))
	for _, c := range courses {
		rec, err := Project(ctx, coursePayload(c), roster.CourseListSchema, uc.format)
		if err != nil {
			span.RecordError(errors.Wrap(err, "course projection failed"))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

type userCourses struct {
	enrolled []map[string]any
	grades   []map[string]any
}

// ListUsersCourses returns up to limit users, each augmented with their
// enrolled courses (real categories only) and course grades. Per-user
// lookups run in parallel but results keep the user order; a failed lookup
// degrades that one user to empty lists instead of failing the page.
func (uc *ReportUsecase) ListUsersCourses(ctx context.Context, requester domain.Requester, raw map[string]string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "Report.Usecase.ListUsersCourses")
	defer span.End()

	params, err := ValidateParams(roster.ListUsersCoursesParams, raw)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(requester); err != nil {
		return nil, err
	}
	limit, err := uc.boundLimit(params)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []Record{}, nil
	}

	users, err := uc.users.List(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, domain.StoreUnavailableError{Op: "list users", Err: err}
	}

	results := make([]userCourses, len(users))
	sem := make(chan struct{}, fanoutWorkers)
	var wg sync.WaitGroup
	for i, u := range users {
		wg.Add(1)
		go func(i int, u domain.User) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			res, err := uc.fetchUserCourses(ctx, u.ID)
			if err != nil {
				slog.WarnContext(ctx, "course lookup failed, returning user without courses",
					slog.Int64("user", u.ID),
					slog.String("error", err.Error()),
					slog.String("module", "report"),
				)
				return
			}
			results[i] = res
		}(i, u)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(users))
	for i, u := range users {
		payload := userPayload(u)
		payload["enrolledcourses"] = emptyIfNil(results[i].enrolled)
		payload["grades"] = emptyIfNil(results[i].grades)

		rec, err := Project(ctx, payload, roster.UserCoursesSchema, uc.format)
		if err != nil {
			span.RecordError(errors.Wrap(err, "user courses projection failed"))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// fetchUserCourses fetches one user's memberships and grades. Courses
// without a real category (the hidden system course) are excluded. Grades
// come back in one batched query per user.
func (uc *ReportUsecase) fetchUserCourses(ctx context.Context, userID int64) (userCourses, error) {
	var out userCourses

	courses, err := uc.enrol.UserCourses(ctx, userID, true)
	if err != nil {
		return out, errors.Wrap(err, "enrollment lookup failed")
	}

	visible := make([]domain.Course, 0, len(courses))
	courseIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		if c.Category <= 0 {
			continue
		}
		visible = append(visible, c)
		courseIDs = append(courseIDs, c.ID)
	}
	if len(visible) == 0 {
		return out, nil
	}

	grades, err := uc.grades.CourseGrades(ctx, userID, courseIDs)
	if err != nil {
		return out, errors.Wrap(err, "grade lookup failed")
	}

	for _, c := range visible {
		out.enrolled = append(out.enrolled, map[string]any{
			"id":        c.ID,
			"fullname":  c.Fullname,
			"shortname": c.Shortname,
		})
		if grade, ok := grades[c.ID]; ok {
			out.grades = append(out.grades, map[string]any{
				"courseid":  c.ID,
				"shortname": c.Shortname,
				"grade":     grade,
			})
		}
	}
	return out, nil
}

func emptyIfNil(items []map[string]any) []map[string]any {
	if items == nil {
		return []map[string]any{}
	}
	return items
}

func userPayload(u domain.User) map[string]any {
	payload := map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"email":     u.Email,
	}
	if u.Fullname != "" {
		payload["fullname"] = u.Fullname
	}
	if u.Address != "" {
		payload["address"] = u.Address
	}
	if u.Phone1 != "" {
		payload["phone1"] = u.Phone1
	}
	if u.Phone2 != "" {
		payload["phone2"] = u.Phone2
	}
	return payload
}

func coursePayload(c domain.Course) map[string]any {
	payload := map[string]any{
		"id":        c.ID,
		"fullname":  c.Fullname,
		"shortname": c.Shortname,
		"category":  c.Category,
	}
	if c.IDNumber != "" {
		payload["idnumber"] = c.IDNumber
	}
	return payload
}
