package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Result is the structured outcome of envelope validation. IsValid is true
// iff the error list is empty. An unsupported but well-formed version is an
// error, so MigrationNeeded (defined as IsValid && !IsSupported) can never
// be true under the current rule ordering; the formula is kept verbatim
// pending a product decision rather than reclassifying unsupported versions
// as warnings.
type Result struct {
	IsValid         bool     `json:"isValid"`
	SchemaVersion   *string  `json:"schemaVersion"`
	IsSupported     bool     `json:"isSupported"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	MigrationNeeded bool     `json:"migrationNeeded"`
}

// arraySections are the document fields that must be arrays when present.
var arraySections = []string{
	"work", "education", "skills", "languages",
	"certifications", "projects", "interests", "references",
}

// ValidateEnvelope validates a decoded JSON value as a versioned envelope.
// It never panics or returns a Go error; every outcome is a structured
// Result. The first three rules (object shape, extensions presence, version
// declaration) short-circuit the remaining structural checks.
func ValidateEnvelope(data any) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}

	root, ok := data.(map[string]any)
	if !ok {
		result.Errors = append(result.Errors, "Invalid data: expected object")
		return result
	}

	extensions, ok := root["extensions"].(map[string]any)
	if !ok {
		result.Errors = append(result.Errors, "Missing extensions object")
		return result
	}

	version, ok := extensions["schemaVersion"].(string)
	if !ok || version == "" {
		result.Errors = append(result.Errors, "Missing schemaVersion")
		return result
	}
	result.SchemaVersion = &version

	result.IsSupported = IsSupportedVersion(version)
	if !result.IsSupported {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Unsupported schemaVersion %q; supported versions: %s",
			version, strings.Join(SupportedSchemaVersions, ", ")))
	}

	if _, ok := root["basics"]; !ok {
		result.Errors = append(result.Errors, "Missing basics section")
	}

	for _, section := range arraySections {
		value, present := root[section]
		if !present {
			continue
		}
		if _, isArray := value.([]any); !isArray {
			result.Errors = append(result.Errors, fmt.Sprintf("Field %q must be an array", section))
		}
	}

	if _, ok := extensions["visibility"].(map[string]any); !ok {
		result.Warnings = append(result.Warnings, "Missing visibility state; defaults will be applied")
	}
	if _, ok := extensions["backup"].(map[string]any); !ok {
		result.Warnings = append(result.Warnings, "Missing backup metadata; defaults will be applied")
	}

	result.IsValid = len(result.Errors) == 0
	result.MigrationNeeded = result.IsValid && !result.IsSupported
	return result
}

// ValidateEnvelopeBytes decodes raw JSON and validates it. Malformed JSON
// is reported the same way as a non-object value.
func ValidateEnvelopeBytes(data []byte) Result {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Result{
			Errors:   []string{"Invalid data: expected object"},
			Warnings: []string{},
		}
	}
	return ValidateEnvelope(decoded)
}

// IsExtendedFormat is a cheap structural predicate used to branch import
// behavior before full validation: the payload is extended when it carries
// a non-empty extensions.schemaVersion string.
func IsExtendedFormat(data []byte) bool {
	version := gjson.GetBytes(data, "extensions.schemaVersion")
	return version.Type == gjson.String && version.String() != ""
}
