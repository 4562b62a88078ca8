package domain

import "fmt"

// InvalidParameterError reports a request parameter that failed validation.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e InvalidParameterError) Error() string {
	if e.Name == "" {
		return "invalid parameter"
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Reason)
}

// Is enables errors.Is matching on InvalidParameterError.
func (e InvalidParameterError) Is(target error) bool {
	_, ok := target.(InvalidParameterError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidParameterError)
	return ok
}

// ErrInvalidParameter is the sentinel error for bad request parameters.
var ErrInvalidParameter = InvalidParameterError{}

// UnauthorizedError covers both a missing capability and failed context
// resolution. The message never distinguishes the two.
type UnauthorizedError struct {
	// Reason is for logs only, never for the caller.
	Reason string
}

func (e UnauthorizedError) Error() string {
	return "unauthorized"
}

func (e UnauthorizedError) Is(target error) bool {
	_, ok := target.(UnauthorizedError)
	if ok {
		return true
	}
	_, ok = target.(*UnauthorizedError)
	return ok
}

// ErrUnauthorized is the sentinel error for denied requests.
var ErrUnauthorized = UnauthorizedError{}

// StoreUnavailableError reports a failed backing store read. Transient, the
// caller may retry; this service never retries internally.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e StoreUnavailableError) Error() string {
	if e.Op == "" {
		return "backing store unavailable"
	}
	return fmt.Sprintf("backing store unavailable: %s", e.Op)
}

func (e StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e StoreUnavailableError) Is(target error) bool {
	_, ok := target.(StoreUnavailableError)
	if ok {
		return true
	}
	_, ok = target.(*StoreUnavailableError)
	return ok
}

// ErrStoreUnavailable is the sentinel error for store failures.
var ErrStoreUnavailable = StoreUnavailableError{}

// ProjectionError reports a record that does not satisfy its declared
// output schema. Always a programmer error, surfaced as a generic internal
// failure.
type ProjectionError struct {
	Field string
}

func (e ProjectionError) Error() string {
	if e.Field == "" {
		return "projection failed"
	}
	return fmt.Sprintf("projection failed: missing field %q", e.Field)
}

func (e ProjectionError) Is(target error) bool {
	_, ok := target.(ProjectionError)
	if ok {
		return true
	}
	_, ok = target.(*ProjectionError)
	return ok
}

// ErrProjection is the sentinel error for schema mismatches.
var ErrProjection = ProjectionError{}
