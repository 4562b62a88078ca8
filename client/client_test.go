package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/roster"
)

func newTestService(t *testing.T, serviceHits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/service", func(w http.ResponseWriter, r *http.Request) {
		if serviceHits != nil {
			serviceHits.Add(1)
		}
		json.NewEncoder(w).Encode(roster.ServiceDocument())
	})
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		users := []roster.UserRecord{
			{ID: 1, Username: "ann", Firstname: "Ann", Lastname: "Archer", Email: "ann@example.com"},
		}
		if r.URL.Query().Get("limit") == "0" {
			users = nil
		}
		json.NewEncoder(w).Encode(users)
	})
	mux.HandleFunc("/api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]roster.CourseRecord{
			{ID: 10, Fullname: "Algebra I", Shortname: "ALG1", Category: 1},
		})
	})
	mux.HandleFunc("/api/v1/users/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]roster.UserCoursesRecord{
			{
				UserRecord:      roster.UserRecord{ID: 1, Username: "ann"},
				EnrolledCourses: []roster.EnrolledCourse{{ID: 10, Fullname: "Algebra I", Shortname: "ALG1"}},
				Grades:          []roster.GradeEntry{{CourseID: 10, Shortname: "ALG1", Grade: 75}},
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestServiceIsCached(t *testing.T) {
	var hits atomic.Int64
	server := newTestService(t, &hits)
	c := New(server.URL, "token-1")

	for i := 0; i < 3; i++ {
		doc, err := c.Service(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "roster", doc.Service)
		assert.Contains(t, doc.Functions, roster.FnListUsers)
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestListUsers(t *testing.T) {
	server := newTestService(t, nil)
	c := New(server.URL, "token-1")

	users, err := c.ListUsers(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ann", users[0].Username)
}

func TestListUsersZeroLimit(t *testing.T) {
	server := newTestService(t, nil)
	c := New(server.URL, "token-1")

	users, err := c.ListUsers(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsersUnauthorized(t *testing.T) {
	server := newTestService(t, nil)
	c := New(server.URL, "bad-token")

	_, err := c.ListUsers(context.Background(), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestListCourses(t *testing.T) {
	server := newTestService(t, nil)
	c := New(server.URL, "token-1")

	courses, err := c.ListCourses(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "ALG1", courses[0].Shortname)
}

func TestListUsersCourses(t *testing.T) {
	server := newTestService(t, nil)
	c := New(server.URL, "token-1")

	records, err := c.ListUsersCourses(context.Background(), -1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ann", records[0].Username)
	require.Len(t, records[0].EnrolledCourses, 1)
	assert.Equal(t, int64(10), records[0].EnrolledCourses[0].ID)
	require.Len(t, records[0].Grades, 1)
	assert.Equal(t, float64(75), records[0].Grades[0].Grade)
}
