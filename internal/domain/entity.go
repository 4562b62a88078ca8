package domain

// User is an immutable snapshot of one user row, alive for the duration of
// a single request.
type User struct {
	ID        int64
	Username  string
	Firstname string
	Lastname  string
	Email     string
	Fullname  string
	Address   string
	Phone1    string
	Phone2    string
}

// Course is an immutable snapshot of one course row. Category 0 marks a
// hidden system course that must never reach user-facing output.
type Course struct {
	ID        int64
	Fullname  string
	Shortname string
	Category  int64
	IDNumber  string
}

// Requester is the resolved identity a request executes under. It replaces
// the ambient current-user global of the original platform.
type Requester struct {
	UserID       int64
	Capabilities []string
}

// Has reports whether the requester holds the named capability.
func (r Requester) Has(capability string) bool {
	for _, c := range r.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
