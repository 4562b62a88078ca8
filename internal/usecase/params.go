package usecase

import (
	"strconv"

	"github.com/campusops/roster"
	"github.com/campusops/roster/internal/domain"
)

// Params is a validated parameter bag.
type Params map[string]any

// Int returns the named parameter. Missing or mistyped values yield zero;
// validation has already run by the time this is called.
func (p Params) Int(name string) int64 {
	v, ok := p[name].(int64)
	if !ok {
		return 0
	}
	return v
}

// ValidateParams checks raw request values against a declared parameter
// schema: type-checks supplied values, applies defaults for omitted ones,
// and rejects parameters the schema does not declare.
func ValidateParams(decl []roster.Param, raw map[string]string) (Params, error) {
	declared := make(map[string]roster.Param, len(decl))
	for _, p := range decl {
		declared[p.Name] = p
	}

	for name := range raw {
		if _, ok := declared[name]; !ok {
			return nil, domain.InvalidParameterError{Name: name, Reason: "unexpected parameter"}
		}
	}

	params := make(Params, len(decl))
	for _, p := range decl {
		value, supplied := raw[p.Name]
		if !supplied {
			if p.Required {
				return nil, domain.InvalidParameterError{Name: p.Name, Reason: "required"}
			}
			if p.Default != nil {
				params[p.Name] = p.Default
			}
			continue
		}

		switch p.Type {
		case roster.ParamInt:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, domain.InvalidParameterError{Name: p.Name, Reason: "expected an integer"}
			}
			params[p.Name] = n
		default:
			return nil, domain.InvalidParameterError{Name: p.Name, Reason: "unsupported parameter type"}
		}
	}

	return params, nil
}
