package tabular

import (
	"regexp"
	"strings"
)

// headerNormalizations maps known column header variants (lowercased,
// trimmed) to canonical field identifiers. It covers every section of the
// recognized foreign export: profile, positions, education, skills,
// languages, and certifications.
var headerNormalizations = map[string]string{
	// Profile
	"first name":         "firstName",
	"firstname":          "firstName",
	"last name":          "lastName",
	"lastname":           "lastName",
	"maiden name":        "maidenName",
	"headline":           "headline",
	"summary":            "summary",
	"industry":           "industry",
	"address":            "address",
	"zip code":           "zipCode",
	"birth date":         "birthDate",
	"geo location":       "geoLocation",
	"geolocation":        "geoLocation",
	"email address":      "emailAddress",
	"email":              "emailAddress",
	"twitter handles":    "twitterHandles",
	"websites":           "websites",
	"instant messengers": "instantMessengers",

	// Positions
	"company name": "companyName",
	"companyname":  "companyName",
	"company":      "companyName",
	"title":        "title",
	"job title":    "title",
	"description":  "description",
	"location":     "location",
	"started on":   "startedOn",
	"start date":   "startedOn",
	"finished on":  "finishedOn",
	"end date":     "finishedOn",

	// Education
	"school name":    "schoolName",
	"school":         "schoolName",
	"institution":    "schoolName",
	"degree name":    "degreeName",
	"degree":         "degreeName",
	"field of study": "fieldOfStudy",
	"notes":          "notes",
	"activities":     "activities",

	// Skills
	"name":              "name",
	"skill name":        "name",
	"endorsement count": "endorsementCount",
	"endorsements":      "endorsementCount",

	// Languages
	"proficiency": "proficiency",

	// Certifications
	"authority":            "authority",
	"issuing organization": "authority",
	"url":                  "url",
	"license number":       "licenseNumber",
}

var nonWordOrSpace = regexp.MustCompile(`[^\w\s]`)

// CanonicalFieldName maps a raw column header onto a canonical field
// identifier. Known variants (case and spacing differences, synonyms) use
// the curated table; anything else falls back to a deterministic
// camel-casing transform so that every header produces some identifier,
// never an error.
func CanonicalFieldName(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	if canonical, ok := headerNormalizations[key]; ok {
		return canonical
	}
	return camelCaseHeader(header)
}

// camelCaseHeader strips non-word, non-space characters and joins the
// remaining space-separated words into a single lower-initial camel-cased
// identifier.
func camelCaseHeader(header string) string {
	cleaned := nonWordOrSpace.ReplaceAllString(header, "")
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(strings.ToLower(word[1:]))
	}
	return sb.String()
}
