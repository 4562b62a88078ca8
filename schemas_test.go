package roster

import "testing"

func TestServiceDocumentListsEveryFunction(t *testing.T) {
	doc := ServiceDocument()

	if doc.Service != "roster" || doc.Version != ServiceVersion {
		t.Fatalf("unexpected document header: %+v", doc)
	}

	for _, fn := range []string{FnListUsers, FnListCourses, FnListUsersCourses} {
		info, ok := doc.Functions[fn]
		if !ok {
			t.Fatalf("document missing function %q", fn)
		}
		if info.Method != "GET" || info.Path == "" {
			t.Fatalf("%s: unexpected binding %+v", fn, info)
		}
		if len(info.Params) != 1 || info.Params[0].Name != "limit" {
			t.Fatalf("%s: expected a single limit parameter, got %+v", fn, info.Params)
		}
		if info.Params[0].Default != int64(50) {
			t.Fatalf("%s: expected default limit 50, got %v", fn, info.Params[0].Default)
		}
	}
}

func TestSchemasShareUserFields(t *testing.T) {
	if len(UserCoursesSchema) != len(UserListSchema)+2 {
		t.Fatalf("user courses schema must extend the user schema by two list fields")
	}
	for i, field := range UserListSchema {
		if UserCoursesSchema[i].Name != field.Name {
			t.Fatalf("field %d diverged: %q vs %q", i, UserCoursesSchema[i].Name, field.Name)
		}
	}

	last := UserCoursesSchema[len(UserCoursesSchema)-1]
	if last.Name != "grades" || last.Kind != KindList || len(last.Elem) != 3 {
		t.Fatalf("unexpected grades field: %+v", last)
	}
}
