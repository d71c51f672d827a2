package schema

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/pkg/errors"
)

// FieldType enumerates the primitive types a configuration field can take.
type FieldType string

const (
	String  FieldType = "string"
	Integer FieldType = "integer"
)

// Field declares the constraints for one configuration key.
type Field struct {
	Type     FieldType
	Required bool
	// Default is applied when the key is absent. A required field never has
	// a default.
	Default   interface{}
	Enum      []string
	Pattern   string
	MinLength int
	Minimum   *int
}

// Schema is a closed declaration of permitted configuration fields. Keys not
// declared here are a hard validation error, not an extension point.
type Schema map[string]Field

// ValidationError reports the offending field and the violated constraint.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Constraint)
}

func violation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Constraint: fmt.Sprintf(format, args...)}
}

// Min returns a pointer suitable for Field.Minimum.
func Min(n int) *int {
	return &n
}

// Validate checks raw against the schema and returns a defaulted copy. Every
// optional field in the result is populated, either from the input or from
// its declared default. raw is never mutated. No partial result is returned
// on failure.
func (s Schema) Validate(raw map[string]interface{}) (map[string]interface{}, error) {
	for _, key := range sortedKeys(raw) {
		if _, declared := s[key]; !declared {
			return nil, violation(key, "unknown field")
		}
	}

	out := map[string]interface{}{}
	for _, key := range sortedFields(s) {
		field := s[key]
		value, given := raw[key]
		if !given {
			if field.Required {
				return nil, violation(key, "required field is missing")
			}
			if field.Default != nil {
				out[key] = field.Default
			}
			continue
		}

		checked, err := field.check(key, value)
		if err != nil {
			return nil, err
		}
		out[key] = checked
	}

	return out, nil
}

func (f Field) check(key string, value interface{}) (interface{}, error) {
	switch f.Type {
	case String:
		str, ok := value.(string)
		if !ok {
			return nil, violation(key, "must be a string, got %T", value)
		}
		return str, f.checkString(key, str)
	case Integer:
		n, ok := toInt(value)
		if !ok {
			return nil, violation(key, "must be an integer, got %T", value)
		}
		if f.Minimum != nil && n < *f.Minimum {
			return nil, violation(key, "must be at least %d, got %d", *f.Minimum, n)
		}
		return n, nil
	}
	return nil, errors.Errorf("unhandled field type %q in schema for %q", f.Type, key)
}

func (f Field) checkString(key, str string) error {
	if f.MinLength > 0 && len(str) < f.MinLength {
		return violation(key, "must be at least %d characters long", f.MinLength)
	}
	if len(f.Enum) > 0 {
		if !contains(f.Enum, str) {
			return violation(key, "must be one of %v, got %q", f.Enum, str)
		}
	}
	if f.Pattern != "" {
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return errors.Wrapf(err, "invalid pattern in schema for %q", key)
		}
		if !re.MatchString(str) {
			return violation(key, "must match pattern %q", f.Pattern)
		}
	}
	return nil
}

// toInt normalizes the integer representations produced by the yaml and json
// decoders.
func toInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFields(s Schema) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
