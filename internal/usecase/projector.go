package usecase

import (
	"context"

	"github.com/campusops/roster"
	"github.com/campusops/roster/internal/domain"
	"github.com/campusops/roster/internal/utils"
)

// Record is one projected output record. Field order follows the schema.
type Record = utils.OrderedKVMap[any]

// TextFormatter cleans and formats a text field before it is returned.
type TextFormatter func(ctx context.Context, s string) string

// Project shapes a raw payload into a record containing exactly the fields
// the schema declares. Optional fields are dropped when absent; a missing
// required field is a schema/executor mismatch.
func Project(ctx context.Context, payload map[string]any, schema roster.Schema, format TextFormatter) (Record, error) {
	record := make(Record, len(schema))
	for _, field := range schema {
		raw, ok := payload[field.Name]
		if !ok {
			if field.Optional {
				continue
			}
			return nil, domain.ProjectionError{Field: field.Name}
		}

		value, err := projectValue(ctx, raw, field, format)
		if err != nil {
			return nil, err
		}
		record.Set(field.Name, value)
	}
	return record, nil
}

func projectValue(ctx context.Context, raw any, field roster.Field, format TextFormatter) (any, error) {
	switch field.Kind {
	case roster.KindInt:
		switch v := raw.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		}
	case roster.KindNumber:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int64:
			return float64(v), nil
		case int:
			return float64(v), nil
		}
	case roster.KindText:
		if v, ok := raw.(string); ok {
			if format != nil {
				return format(ctx, v), nil
			}
			return v, nil
		}
	case roster.KindRaw:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case roster.KindList:
		items, ok := raw.([]map[string]any)
		if !ok {
			return nil, domain.ProjectionError{Field: field.Name}
		}
		records := make([]Record, 0, len(items))
		for _, item := range items {
			rec, err := Project(ctx, item, field.Elem, format)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	}
	return nil, domain.ProjectionError{Field: field.Name}
}
