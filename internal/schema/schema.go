// Package schema declares flow input contracts as explicit, introspectable
// field definitions evaluated at the request boundary. A violation here is a
// caller error and never reaches the model.
package schema

import (
	"strings"

	"studytrack/internal/domain"
)

// Kind is the semantic type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindEnum
	KindStringList
)

// Field describes one input field: name, semantic type and bounds.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// String bounds (rune length after trimming).
	MinLen int
	MaxLen int

	// Numeric bounds, inclusive.
	Min float64
	Max float64

	// Enum membership.
	Allowed []string
}

// String declares a required-or-optional text field with length bounds.
func String(name string, required bool, minLen, maxLen int) Field {
	return Field{Name: name, Kind: KindString, Required: required, MinLen: minLen, MaxLen: maxLen}
}

// Int declares an integer field with an inclusive range.
func Int(name string, required bool, min, max int) Field {
	return Field{Name: name, Kind: KindInt, Required: required, Min: float64(min), Max: float64(max)}
}

// Float declares a float field with an inclusive range.
func Float(name string, required bool, min, max float64) Field {
	return Field{Name: name, Kind: KindFloat, Required: required, Min: min, Max: max}
}

// Enum declares a field whose value must be one of allowed.
func Enum(name string, required bool, allowed []string) Field {
	return Field{Name: name, Kind: KindEnum, Required: required, Allowed: allowed}
}

// StringList declares an optional list of strings, each bounded in length.
func StringList(name string, required bool, maxLen int) Field {
	return Field{Name: name, Kind: KindStringList, Required: required, MaxLen: maxLen}
}

// Schema is a named collection of field definitions for one flow.
type Schema struct {
	Flow   string
	Fields []Field
}

// New builds a schema for the named flow.
func New(flow string, fields ...Field) Schema {
	return Schema{Flow: flow, Fields: fields}
}

// Validate checks values against every field definition and returns all
// violations at once, or nil when the input is clean.
func (s Schema) Validate(values map[string]interface{}) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for _, f := range s.Fields {
		if ve := f.check(values[f.Name]); ve != nil {
			errs = append(errs, *ve)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f Field) check(value interface{}) *domain.ValidationError {
	switch f.Kind {
	case KindString:
		str, _ := value.(string)
		trimmed := strings.TrimSpace(str)
		if trimmed == "" {
			if f.Required {
				ve := domain.NewMissingFieldError(f.Name)
				return &ve
			}
			return nil
		}
		n := len([]rune(trimmed))
		if n < f.MinLen || (f.MaxLen > 0 && n > f.MaxLen) {
			ve := domain.NewOutOfRangeError(f.Name, n, f.MinLen, f.MaxLen)
			return &ve
		}

	case KindInt:
		n, ok := value.(int)
		if !ok {
			if f.Required {
				ve := domain.NewInvalidFormatError(f.Name, value)
				return &ve
			}
			return nil
		}
		if float64(n) < f.Min || float64(n) > f.Max {
			ve := domain.NewOutOfRangeError(f.Name, n, int(f.Min), int(f.Max))
			return &ve
		}

	case KindFloat:
		n, ok := value.(float64)
		if !ok {
			if f.Required {
				ve := domain.NewInvalidFormatError(f.Name, value)
				return &ve
			}
			return nil
		}
		if n < f.Min || n > f.Max {
			ve := domain.NewOutOfRangeError(f.Name, n, f.Min, f.Max)
			return &ve
		}

	case KindEnum:
		str, _ := value.(string)
		if str == "" {
			if f.Required {
				ve := domain.NewMissingFieldError(f.Name)
				return &ve
			}
			return nil
		}
		for _, a := range f.Allowed {
			if str == a {
				return nil
			}
		}
		ve := domain.NewInvalidEnumError(f.Name, str, f.Allowed)
		return &ve

	case KindStringList:
		list, _ := value.([]string)
		if len(list) == 0 {
			if f.Required {
				ve := domain.NewMissingFieldError(f.Name)
				return &ve
			}
			return nil
		}
		for _, item := range list {
			if f.MaxLen > 0 && len([]rune(item)) > f.MaxLen {
				ve := domain.NewOutOfRangeError(f.Name, item, 0, f.MaxLen)
				return &ve
			}
		}
	}
	return nil
}
