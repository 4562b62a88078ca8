package roster

// Kind declares how a projected field is typed and cleaned before return.
type Kind int

const (
	KindInt Kind = iota
	KindNumber
	KindText // passed through the text formatter
	KindRaw  // returned as stored
	KindList // nested records, described by Elem
)

// Field is one declared output field of an endpoint schema. Optional fields
// are omitted from the record when absent, never emitted as null.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	Elem     Schema // KindList only
}

// Schema is an ordered field list. A projected record contains exactly
// these fields, in this order.
type Schema []Field

// ParamType declares the wire type of a request parameter.
type ParamType int

const (
	ParamInt ParamType = iota
)

func (t ParamType) String() string {
	switch t {
	case ParamInt:
		return "int"
	default:
		return "unknown"
	}
}

// Param is one declared request parameter.
type Param struct {
	Name     string
	Type     ParamType
	Default  any
	Required bool
	Doc      string
}

// --- wire records, as decoded by the client ---

type UserRecord struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Fullname  string `json:"fullname,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone1    string `json:"phone1,omitempty"`
	Phone2    string `json:"phone2,omitempty"`
}

type CourseRecord struct {
	ID        int64  `json:"id"`
	Fullname  string `json:"fullname"`
	Shortname string `json:"shortname"`
	Category  int64  `json:"category"`
	IDNumber  string `json:"idnumber,omitempty"`
}

type EnrolledCourse struct {
	ID        int64  `json:"id"`
	Fullname  string `json:"fullname"`
	Shortname string `json:"shortname"`
}

type GradeEntry struct {
	CourseID  int64   `json:"courseid"`
	Shortname string  `json:"shortname"`
	Grade     float64 `json:"grade"`
}

type UserCoursesRecord struct {
	UserRecord
	EnrolledCourses []EnrolledCourse `json:"enrolledcourses"`
	Grades          []GradeEntry     `json:"grades"`
}

// --- service discovery ---

type ParamInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Default  any    `json:"default,omitempty"`
	Required bool   `json:"required"`
}

type FunctionInfo struct {
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Params      []ParamInfo `json:"params"`
	Description string      `json:"description"`
}

type ServiceInfo struct {
	Service   string                  `json:"service"`
	Version   string                  `json:"version"`
	Functions map[string]FunctionInfo `json:"functions"`
}
