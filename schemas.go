package roster

// Function names as published in the service discovery document.
const (
	FnListUsers        = "roster_list_users"
	FnListCourses      = "roster_list_courses"
	FnListUsersCourses = "roster_list_users_courses"
)

const ServiceVersion = "1.0"

func limitParam() Param {
	return Param{
		Name:    "limit",
		Type:    ParamInt,
		Default: int64(50),
		Doc:     "maximum number of records to return, default 50",
	}
}

// Each operation declares its own parameter schema.
var (
	ListUsersParams        = []Param{limitParam()}
	ListCoursesParams      = []Param{limitParam()}
	ListUsersCoursesParams = []Param{limitParam()}
)

func userFields() Schema {
	return Schema{
		{Name: "id", Kind: KindInt},
		{Name: "username", Kind: KindText},
		{Name: "firstname", Kind: KindText},
		{Name: "lastname", Kind: KindText},
		{Name: "email", Kind: KindText},
		{Name: "fullname", Kind: KindText, Optional: true},
		{Name: "address", Kind: KindText, Optional: true},
		{Name: "phone1", Kind: KindRaw, Optional: true},
		{Name: "phone2", Kind: KindRaw, Optional: true},
	}
}

// UserListSchema is the output schema of roster_list_users.
var UserListSchema = userFields()

// CourseListSchema is the output schema of roster_list_courses.
var CourseListSchema = Schema{
	{Name: "id", Kind: KindInt},
	{Name: "fullname", Kind: KindRaw},
	{Name: "shortname", Kind: KindRaw},
	{Name: "category", Kind: KindInt},
	{Name: "idnumber", Kind: KindRaw, Optional: true},
}

// UserCoursesSchema is the output schema of roster_list_users_courses:
// the user fields augmented with enrolled courses and course grades.
var UserCoursesSchema = append(userFields(),
	Field{Name: "enrolledcourses", Kind: KindList, Elem: Schema{
		{Name: "id", Kind: KindInt},
		{Name: "fullname", Kind: KindText},
		{Name: "shortname", Kind: KindText},
	}},
	Field{Name: "grades", Kind: KindList, Elem: Schema{
		{Name: "courseid", Kind: KindInt},
		{Name: "shortname", Kind: KindText},
		{Name: "grade", Kind: KindNumber},
	}},
)

func paramInfos(params []Param) []ParamInfo {
	infos := make([]ParamInfo, 0, len(params))
	for _, p := range params {
		infos = append(infos, ParamInfo{
			Name:     p.Name,
			Type:     p.Type.String(),
			Default:  p.Default,
			Required: p.Required,
		})
	}
	return infos
}

// ServiceDocument describes the published functions, analogous to the
// platform's pre-built service registry.
func ServiceDocument() ServiceInfo {
	return ServiceInfo{
		Service: "roster",
		Version: ServiceVersion,
		Functions: map[string]FunctionInfo{
			FnListUsers: {
				Method:      "GET",
				Path:        "/api/v1/users",
				Params:      paramInfos(ListUsersParams),
				Description: "Returns a list of users",
			},
			FnListCourses: {
				Method:      "GET",
				Path:        "/api/v1/courses",
				Params:      paramInfos(ListCoursesParams),
				Description: "Returns a list of courses",
			},
			FnListUsersCourses: {
				Method:      "GET",
				Path:        "/api/v1/users/courses",
				Params:      paramInfos(ListUsersCoursesParams),
				Description: "Returns users with their enrolled courses and grades",
			},
		},
	}
}
