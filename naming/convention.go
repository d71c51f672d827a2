package naming

import (
	"strings"
)

// DefaultIdentifier is the resource identifier used when a construct's
// configuration does not name the resource explicitly.
func DefaultIdentifier(stackID, constructID string) string {
	return stackID + "-" + constructID
}

// SafeDatabaseName derives a logical database name from a resource identifier.
// Engine identifier rules reject separators, so hyphens and underscores are
// stripped. The derivation is idempotent.
func SafeDatabaseName(identifier string) string {
	name := strings.Replace(identifier, "-", "", -1)
	return strings.Replace(name, "_", "", -1)
}

func LogicalName(id string) string {
	// Convert a construct id into something valid as a cfn logical name or
	// we'll end up with errors like "Template format error: Resource name my-db is non alphanumeric"
	return strings.Title(SafeDatabaseName(id))
}
