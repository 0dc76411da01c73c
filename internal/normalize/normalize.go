package normalize

import (
	"encoding/json"

	"github.com/jonathan/resume-studio/internal/types"
)

// Options configures a Normalizer. The section visibility defaults are
// copied at construction; callers cannot mutate a normalizer after building
// it.
type Options struct {
	// SectionVisibilityDefaults seeds the reconstructed sectionVisibility
	// map. Nil means all known sections visible.
	SectionVisibilityDefaults types.SectionVisibility
}

// Normalizer shapes arbitrary document-like input into a canonical
// Document. It is safe for concurrent use; each call operates on freshly
// constructed output and never mutates its input.
type Normalizer struct {
	visibilityDefaults types.SectionVisibility
}

// New builds a Normalizer from options.
func New(opts Options) *Normalizer {
	defaults := opts.SectionVisibilityDefaults
	if defaults == nil {
		defaults = types.DefaultSectionVisibility()
	}
	copied := make(types.SectionVisibility, len(defaults))
	for k, v := range defaults {
		copied[k] = v
	}
	return &Normalizer{visibilityDefaults: copied}
}

// Document normalizes input using default options. See Normalizer.Normalize.
func Document(input any) (*types.Document, error) {
	return New(Options{}).Normalize(input)
}

// Bytes decodes raw JSON and normalizes it using default options.
func Bytes(data []byte) (*types.Document, error) {
	return New(Options{}).NormalizeBytes(data)
}

// NormalizeBytes decodes raw JSON and normalizes the result.
func (n *Normalizer) NormalizeBytes(data []byte) (*types.Document, error) {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &InvalidInputError{Message: "content is not valid JSON"}
	}
	return n.Normalize(input)
}

// Normalize produces a fully-shaped Document from an arbitrary decoded JSON
// value. Every required object and array is guaranteed present, every item
// carries an explicit visible flag (only a literal false survives as
// hidden), the legacy icon size shape is migrated, and the section
// visibility map is rebuilt over the configured defaults. Opaque
// side-channel data (nonConformingData, meta) passes through unchanged. The
// function is idempotent and never mutates its input.
func (n *Normalizer) Normalize(input any) (*types.Document, error) {
	raw := asMap(input)
	if raw == nil {
		return nil, &InvalidInputError{Message: "expected a document object"}
	}

	doc := types.NewDocument()

	n.normalizeBasics(doc, asMap(raw["basics"]))
	n.normalizeSections(doc, raw)
	n.normalizeSectionVisibility(doc, asMap(raw["sectionVisibility"]))

	if nc := asMap(raw["nonConformingData"]); nc != nil {
		doc.NonConforming = decodeNonConforming(nc)
	}
	if meta := asMap(raw["meta"]); meta != nil {
		doc.Meta = deepCopyMap(meta)
	}

	return doc, nil
}

// normalizeBasics fills the basics singleton, defaulting every leaf field
// and shaping the location sub-object, icon, and profile items.
func (n *Normalizer) normalizeBasics(doc *types.Document, basics map[string]any) {
	doc.Basics.Name = asString(basics["name"])
	doc.Basics.Label = asString(basics["label"])
	doc.Basics.Email = asString(basics["email"])
	doc.Basics.Phone = asString(basics["phone"])
	doc.Basics.Website = asString(basics["website"])
	doc.Basics.Summary = asString(basics["summary"])

	location := asMap(basics["location"])
	doc.Basics.Location = types.Location{
		Address:     asString(location["address"]),
		City:        asString(location["city"]),
		Region:      asString(location["region"]),
		PostalCode:  asString(location["postalCode"]),
		CountryCode: asString(location["countryCode"]),
	}

	doc.Basics.Icon = migrateIcon(basics["icon"])

	profiles := asSlice(basics["profiles"])
	doc.Basics.Profiles = make([]types.ProfileItem, 0, len(profiles))
	for _, entry := range profiles {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Basics.Profiles = append(doc.Basics.Profiles, types.ProfileItem{
			Network:  asString(item["network"]),
			Username: asString(item["username"]),
			URL:      asString(item["url"]),
			Visible:  itemVisible(item),
		})
	}
}

// normalizeSections rebuilds every section array. Absent or non-array
// section values default to empty sequences.
func (n *Normalizer) normalizeSections(doc *types.Document, raw map[string]any) {
	for _, entry := range asSlice(raw["work"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Work = append(doc.Work, types.WorkItem{
			Company:    asString(item["company"]),
			Position:   asString(item["position"]),
			Website:    asString(item["website"]),
			Location:   asString(item["location"]),
			StartDate:  asString(item["startDate"]),
			EndDate:    asString(item["endDate"]),
			Summary:    asString(item["summary"]),
			Highlights: subItemsFrom(item["highlights"]),
			Visible:    itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["education"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Education = append(doc.Education, types.EducationItem{
			Institution: asString(item["institution"]),
			Degree:      asString(item["degree"]),
			Field:       asString(item["field"]),
			StartDate:   asString(item["startDate"]),
			EndDate:     asString(item["endDate"]),
			Summary:     asString(item["summary"]),
			Courses:     subItemsFrom(item["courses"]),
			Visible:     itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["skills"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Skills = append(doc.Skills, types.SkillItem{
			Name:     asString(item["name"]),
			Level:    asString(item["level"]),
			Keywords: subItemsFrom(item["keywords"]),
			Visible:  itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["languages"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Languages = append(doc.Languages, types.LanguageItem{
			Name:    asString(item["name"]),
			Fluency: asString(item["fluency"]),
			Visible: itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["certifications"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Certifications = append(doc.Certifications, types.CertificationItem{
			Name:    asString(item["name"]),
			Issuer:  asString(item["issuer"]),
			Date:    asString(item["date"]),
			URL:     asString(item["url"]),
			Visible: itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["projects"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Projects = append(doc.Projects, types.ProjectItem{
			Name:        asString(item["name"]),
			Description: asString(item["description"]),
			Website:     asString(item["website"]),
			StartDate:   asString(item["startDate"]),
			EndDate:     asString(item["endDate"]),
			Roles:       subItemsFrom(item["roles"]),
			Visible:     itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["interests"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.Interests = append(doc.Interests, types.InterestItem{
			Name:     asString(item["name"]),
			Keywords: subItemsFrom(item["keywords"]),
			Visible:  itemVisible(item),
		})
	}

	for _, entry := range asSlice(raw["references"]) {
		item := asMap(entry)
		if item == nil {
			continue
		}
		doc.References = append(doc.References, types.ReferenceItem{
			Name:    asString(item["name"]),
			Summary: asString(item["summary"]),
			Visible: itemVisible(item),
		})
	}
}

// normalizeSectionVisibility overlays any caller-provided partial map onto
// the configured defaults so every known section key is present.
func (n *Normalizer) normalizeSectionVisibility(doc *types.Document, provided map[string]any) {
	sv := make(types.SectionVisibility, len(n.visibilityDefaults))
	for k, v := range n.visibilityDefaults {
		sv[k] = v
	}
	for key, value := range provided {
		if flag, ok := value.(bool); ok {
			sv[key] = flag
		}
	}
	doc.SectionVisibility = sv
}

// decodeNonConforming re-decodes the opaque bucket without imposing any
// normalization on its contents.
func decodeNonConforming(raw map[string]any) *types.NonConformingData {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var bucket types.NonConformingData
	if err := json.Unmarshal(data, &bucket); err != nil {
		return nil
	}
	return &bucket
}
