// Package schemas provides schema versioning, envelope construction, and
// validation for documents at rest.
package schemas

// CurrentSchemaVersion is stamped into every newly built envelope.
const CurrentSchemaVersion = "1.2.0"

// ExtendedSchemaRef identifies the extended document schema.
const ExtendedSchemaRef = "https://resume-studio.dev/schemas/extended/v1"

// SupportedSchemaVersions is the explicit allow-list of envelope versions.
// Only exact string matches are accepted as supported.
var SupportedSchemaVersions = []string{"1.0.0", "1.1.0", "1.2.0"}

// IsSupportedVersion reports whether version is in the allow-list.
func IsSupportedVersion(version string) bool {
	for _, v := range SupportedSchemaVersions {
		if v == version {
			return true
		}
	}
	return false
}
