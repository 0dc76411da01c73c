// Package types provides type definitions for the profile document and its
// versioned envelope used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section name constants for the fixed set of document sections.
const (
	SectionProfiles       = "profiles"
	SectionWork           = "work"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionLanguages      = "languages"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionInterests      = "interests"
	SectionReferences     = "references"
)

// SectionNames lists every known section key in display order.
var SectionNames = []string{
	SectionProfiles,
	SectionWork,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionCertifications,
	SectionProjects,
	SectionInterests,
	SectionReferences,
}

// Document is the canonical in-memory profile record. Every section key is
// always present in the serialized form, even when the section is empty.
type Document struct {
	Basics         Basics              `json:"basics"`
	Work           []WorkItem          `json:"work"`
	Education      []EducationItem     `json:"education"`
	Skills         []SkillItem         `json:"skills"`
	Languages      []LanguageItem      `json:"languages"`
	Certifications []CertificationItem `json:"certifications"`
	Projects       []ProjectItem       `json:"projects"`
	Interests      []InterestItem      `json:"interests"`
	References     []ReferenceItem     `json:"references"`

	SectionVisibility SectionVisibility `json:"sectionVisibility"`

	// Opaque side-channel data. Carried verbatim; never normalized.
	NonConforming *NonConformingData `json:"nonConformingData,omitempty"`
	Meta          map[string]any     `json:"meta,omitempty"`
}

// Basics is the singleton profile section.
type Basics struct {
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Website  string        `json:"website"`
	Summary  string        `json:"summary"`
	Location Location      `json:"location"`
	Icon     *Icon         `json:"icon,omitempty"`
	Profiles []ProfileItem `json:"profiles"`
}

// Location is the structured address block within basics.
type Location struct {
	Address     string `json:"address"`
	City        string `json:"city"`
	Region      string `json:"region"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

// Icon is the profile picture configuration. Size is always a single numeric
// value; the legacy width/height pair representation is collapsed during
// normalization.
type Icon struct {
	Image    string         `json:"image,omitempty"`
	Size     int            `json:"size"`
	Position map[string]any `json:"position,omitempty"`
}

// DefaultIconSize is used when a legacy icon carries neither width nor height.
const DefaultIconSize = 128

// ProfileItem is one social profile entry under basics.
type ProfileItem struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Visible  bool   `json:"visible"`
}

// WorkItem is one employment entry.
type WorkItem struct {
	Company    string    `json:"company"`
	Position   string    `json:"position"`
	Website    string    `json:"website,omitempty"`
	Location   string    `json:"location,omitempty"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Summary    string    `json:"summary"`
	Highlights []SubItem `json:"highlights"`
	Visible    bool      `json:"visible"`
}

// EducationItem is one education entry.
type EducationItem struct {
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Summary     string    `json:"summary,omitempty"`
	Courses     []SubItem `json:"courses"`
	Visible     bool      `json:"visible"`
}

// SkillItem is one skill entry with a qualitative level.
type SkillItem struct {
	Name     string    `json:"name"`
	Level    string    `json:"level"`
	Keywords []SubItem `json:"keywords"`
	Visible  bool      `json:"visible"`
}

// LanguageItem is one language entry.
type LanguageItem struct {
	Name    string `json:"name"`
	Fluency string `json:"fluency"`
	Visible bool   `json:"visible"`
}

// CertificationItem is one certification or award entry. Only the issue date
// is tracked; certification expiry is not part of the document model.
type CertificationItem struct {
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	URL     string `json:"url,omitempty"`
	Visible bool   `json:"visible"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Roles       []SubItem `json:"roles"`
	Visible     bool      `json:"visible"`
}

// InterestItem is one interest entry.
type InterestItem struct {
	Name     string    `json:"name"`
	Keywords []SubItem `json:"keywords"`
	Visible  bool      `json:"visible"`
}

// ReferenceItem is one reference entry.
type ReferenceItem struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Visible bool   `json:"visible"`
}

// SectionVisibility maps section names to their visibility. After
// normalization every known section key is present.
type SectionVisibility map[string]bool

// DefaultSectionVisibility returns an all-visible map covering every known
// section. Callers receive a fresh copy; the result is safe to mutate.
func DefaultSectionVisibility() SectionVisibility {
	sv := make(SectionVisibility, len(SectionNames))
	for _, name := range SectionNames {
		sv[name] = true
	}
	return sv
}

// NewDocument returns an empty document with every section present and all
// sections visible.
func NewDocument() *Document {
	return &Document{
		Basics: Basics{
			Profiles: []ProfileItem{},
		},
		Work:              []WorkItem{},
		Education:         []EducationItem{},
		Skills:            []SkillItem{},
		Languages:         []LanguageItem{},
		Certifications:    []CertificationItem{},
		Projects:          []ProjectItem{},
		Interests:         []InterestItem{},
		References:        []ReferenceItem{},
		SectionVisibility: DefaultSectionVisibility(),
	}
}
