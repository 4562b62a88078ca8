package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/roster"
	"github.com/campusops/roster/internal/domain"
)

func TestProjectKeepsSchemaOrder(t *testing.T) {
	schema := roster.Schema{
		{Name: "id", Kind: roster.KindInt},
		{Name: "shortname", Kind: roster.KindRaw},
		{Name: "fullname", Kind: roster.KindRaw},
	}
	payload := map[string]any{
		"fullname":  "Algebra I",
		"shortname": "ALG1",
		"id":        int64(7),
	}

	rec, err := Project(context.Background(), payload, schema, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"shortname":"ALG1","fullname":"Algebra I"}`, string(raw))
}

func TestProjectDropsUndeclaredFields(t *testing.T) {
	schema := roster.Schema{{Name: "id", Kind: roster.KindInt}}
	payload := map[string]any{
		"id":       int64(1),
		"password": "hunter2",
	}

	rec, err := Project(context.Background(), payload, schema, nil)
	require.NoError(t, err)
	assert.Len(t, rec, 1)
	assert.NotContains(t, rec, "password")
}

func TestProjectOptionalField(t *testing.T) {
	schema := roster.Schema{
		{Name: "id", Kind: roster.KindInt},
		{Name: "idnumber", Kind: roster.KindRaw, Optional: true},
	}

	rec, err := Project(context.Background(), map[string]any{"id": int64(1)}, schema, nil)
	require.NoError(t, err)
	assert.NotContains(t, rec, "idnumber")

	rec, err = Project(context.Background(), map[string]any{"id": int64(1), "idnumber": "EXT-1"}, schema, nil)
	require.NoError(t, err)
	assert.Equal(t, "EXT-1", rec["idnumber"].Value)
}

func TestProjectMissingRequiredField(t *testing.T) {
	schema := roster.Schema{{Name: "email", Kind: roster.KindText}}

	_, err := Project(context.Background(), map[string]any{}, schema, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjection))
}

func TestProjectMistypedField(t *testing.T) {
	schema := roster.Schema{{Name: "id", Kind: roster.KindInt}}

	_, err := Project(context.Background(), map[string]any{"id": "not a number"}, schema, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjection))
}

func TestProjectNumberAcceptsIntegers(t *testing.T) {
	schema := roster.Schema{{Name: "grade", Kind: roster.KindNumber}}

	rec, err := Project(context.Background(), map[string]any{"grade": int64(75)}, schema, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(75), rec["grade"].Value)
}

func TestProjectFormatsTextNotRaw(t *testing.T) {
	schema := roster.Schema{
		{Name: "firstname", Kind: roster.KindText},
		{Name: "phone1", Kind: roster.KindRaw},
	}
	upper := func(ctx context.Context, s string) string { return strings.ToUpper(s) }

	rec, err := Project(context.Background(), map[string]any{
		"firstname": "ann",
		"phone1":    "555-0101",
	}, schema, upper)
	require.NoError(t, err)
	assert.Equal(t, "ANN", rec["firstname"].Value)
	assert.Equal(t, "555-0101", rec["phone1"].Value)
}

func TestProjectNestedList(t *testing.T) {
	schema := roster.Schema{
		{Name: "grades", Kind: roster.KindList, Elem: roster.Schema{
			{Name: "courseid", Kind: roster.KindInt},
			{Name: "grade", Kind: roster.KindNumber},
		}},
	}
	payload := map[string]any{
		"grades": []map[string]any{
			{"courseid": int64(101), "grade": 75.5, "internal": "dropped"},
		},
	}

	rec, err := Project(context.Background(), payload, schema, nil)
	require.NoError(t, err)

	items := rec["grades"].Value.([]Record)
	require.Len(t, items, 1)
	assert.Equal(t, int64(101), items[0]["courseid"].Value)
	assert.Equal(t, 75.5, items[0]["grade"].Value)
	assert.NotContains(t, items[0], "internal")
}

func TestProjectEmptyList(t *testing.T) {
	schema := roster.Schema{
		{Name: "grades", Kind: roster.KindList, Elem: roster.Schema{
			{Name: "grade", Kind: roster.KindNumber},
		}},
	}

	rec, err := Project(context.Background(), map[string]any{"grades": []map[string]any{}}, schema, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"grades":[]}`, string(raw))
}
