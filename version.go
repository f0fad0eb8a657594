package ready

import (
	"fmt"
	"strings"

	v1 "github.com/WelcomerTeam/Sandwich-Ready/v1"
	v2 "github.com/WelcomerTeam/Sandwich-Ready/v2"
)

// SchemaVersion selects which Ready schema a document is decoded against.
type SchemaVersion string

const (
	// SchemaV1 is the exhaustive schema: every field is required and
	// identifiers are plain strings.
	SchemaV1 SchemaVersion = v1.SchemaName
	// SchemaV2 is the pruned production schema with defaults and enums.
	SchemaV2 SchemaVersion = v2.SchemaName
)

// SchemaVersions lists every known schema, oldest first.
var SchemaVersions = []SchemaVersion{SchemaV1, SchemaV2}

func (v SchemaVersion) Valid() bool {
	return v == SchemaV1 || v == SchemaV2
}

func (v SchemaVersion) String() string {
	return string(v)
}

// ParseSchemaVersion accepts "v1", "V1" or "1" and their v2 counterparts.
func ParseSchemaVersion(s string) (SchemaVersion, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(normalized, "v") {
		normalized = "v" + normalized
	}

	version := SchemaVersion(normalized)
	if !version.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSchema, s)
	}

	return version, nil
}
