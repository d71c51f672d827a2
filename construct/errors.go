package construct

import (
	"fmt"
)

// MissingDependencyError is returned when a construct requires a collaborator
// that was never declared, e.g. a database without a network. It is surfaced
// before any resource is declared.
type MissingDependencyError struct {
	Construct  string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("construct %q requires a %s, but none was declared", e.Construct, e.Dependency)
}

// UnsupportedValueError reports a value that passed schema validation but has
// no entry in an internal mapping table. Reaching it means the schema and the
// table disagree, which is a bug, so callers must fail loudly rather than
// fall back to a default.
type UnsupportedValueError struct {
	Field string
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("[bug] no mapping for %s %q", e.Field, e.Value)
}
