package domain

const (
	// CapabilityViewUserDetails gates all three list operations.
	CapabilityViewUserDetails = "roster/user:viewdetails"
)

const (
	RequesterCtxKey = "roster-requester"
)
